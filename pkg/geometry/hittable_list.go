package geometry

import (
	"github.com/jmelas/go-pathsampler/pkg/core"
	"github.com/jmelas/go-pathsampler/pkg/material"
)

// HittableList aggregates scene objects behind the Hittable interface. Used
// for direct light sampling: PdfValue and Random treat the members as one
// combined distribution, each member equally likely.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (hl *HittableList) Add(object Hittable) {
	hl.Objects = append(hl.Objects, object)
}

// Hit returns the closest intersection among all objects within [tMin, tMax]
func (hl *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	var closest *material.SurfaceInteraction
	closestT := tMax

	for _, object := range hl.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestT); isHit {
			closest = hit
			closestT = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all member bounding boxes
func (hl *HittableList) BoundingBox() AABB {
	if len(hl.Objects) == 0 {
		return AABB{}
	}

	bbox := hl.Objects[0].BoundingBox()
	for _, object := range hl.Objects[1:] {
		bbox = bbox.Union(object.BoundingBox())
	}
	return bbox
}

// PdfValue returns the average of the members' densities toward the given
// direction, matching Random's uniform choice of member
func (hl *HittableList) PdfValue(origin, direction core.Vec3) float64 {
	if len(hl.Objects) == 0 {
		return 0.0
	}

	weight := 1.0 / float64(len(hl.Objects))
	sum := 0.0
	for _, object := range hl.Objects {
		sum += weight * object.PdfValue(origin, direction)
	}
	return sum
}

// Random picks a member uniformly and delegates direction sampling to it
func (hl *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(hl.Objects) == 0 {
		return core.NewVec3(0, 0, 1)
	}

	index := int(sampler.Get1D() * float64(len(hl.Objects)))
	if index >= len(hl.Objects) {
		index = len(hl.Objects) - 1
	}
	return hl.Objects[index].Random(origin, sampler)
}
