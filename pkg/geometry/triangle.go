package geometry

import (
	"math"

	"github.com/jmelas/go-pathsampler/pkg/core"
	"github.com/jmelas/go-pathsampler/pkg/material"
)

// Triangle represents a single triangle defined by three vertices, optionally
// carrying per-vertex shading normals and alpha/bump textures. Triangles are
// built once at mesh-construction time and immutable afterwards; materials
// and textures are shared references managed by the owning mesh or scene.
type Triangle struct {
	A, B, C    core.Vec3         // The three vertices
	NA, NB, NC core.Vec3         // Per-vertex shading normals (optional)
	Material   material.Material // Material of the triangle

	AlphaMask *material.AlphaTexture // Optional cutout mask
	BumpMap   *material.BumpTexture  // Optional normal perturbation

	normalsProvided bool
	edge1, edge2    core.Vec3 // Cached edges B-A and C-A
	normal          core.Vec3 // Cached unit geometric normal
	area            float64   // Cached surface area
	bbox            AABB      // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices with a flat
// geometric normal
func NewTriangle(a, b, c core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{A: a, B: b, C: c, Material: mat}
	t.precompute()
	return t
}

// NewTriangleWithNormals creates a new triangle with per-vertex shading
// normals, interpolated barycentrically at hit points
func NewTriangleWithNormals(a, b, c, na, nb, nc core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{
		A: a, B: b, C: c,
		NA: na.Normalize(), NB: nb.Normalize(), NC: nc.Normalize(),
		Material:        mat,
		normalsProvided: true,
	}
	t.precompute()
	return t
}

// precompute caches edges, geometric normal, area and bounding box
func (t *Triangle) precompute() {
	t.edge1 = t.B.Subtract(t.A)
	t.edge2 = t.C.Subtract(t.A)

	crossProduct := t.edge1.Cross(t.edge2)
	t.area = crossProduct.Length() / 2
	t.normal = crossProduct.Normalize()

	// Pad so planar triangles still form a usable slab interval
	t.bbox = NewAABBFromPoints(t.A, t.B, t.C).Pad(1e-4)
}

// Area returns the triangle's surface area
func (t *Triangle) Area() float64 {
	return t.area
}

// GeometricNormal returns the unit normal of the triangle's plane
func (t *Triangle) GeometricNormal() core.Vec3 {
	return t.normal
}

// Hit tests if a ray intersects the triangle using the Möller-Trumbore
// algorithm. Degenerate (zero-area) triangles never report a hit.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	const epsilon = 1e-8

	if t.area == 0 {
		return nil, false
	}

	// Calculate determinant
	h := ray.Direction.Cross(t.edge2)
	a := t.edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.A)
	u := f * s.Dot(h)

	// Check if intersection is outside triangle
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(t.edge1)
	v := f * ray.Direction.Dot(q)

	// Check if intersection is outside triangle
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	// Calculate t parameter
	tParam := f * t.edge2.Dot(q)

	// Check if intersection is within valid range
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	hitPoint := ray.At(tParam)
	uv := core.NewVec2(u, v)

	// Alpha mask: transparent texels turn the intersection into a miss
	if t.AlphaMask != nil && !t.AlphaMask.Opaque(uv, hitPoint) {
		return nil, false
	}

	// Shading normal: barycentric blend of vertex normals when provided,
	// flat geometric normal otherwise
	shadingNormal := t.normal
	if t.normalsProvided {
		w := 1.0 - u - v
		shadingNormal = t.NA.Multiply(w).
			Add(t.NB.Multiply(u)).
			Add(t.NC.Multiply(v)).
			Normalize()
	}
	if t.BumpMap != nil {
		shadingNormal = t.BumpMap.Perturb(shadingNormal, uv, hitPoint, t.edge1, t.edge2)
	}

	hit := &material.SurfaceInteraction{
		Point:    hitPoint,
		T:        tParam,
		UV:       uv,
		Material: t.Material,
	}
	hit.SetFaceNormal(ray, shadingNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() AABB {
	return t.bbox
}

// PdfValue returns the solid-angle density of sampling the given direction
// from origin, converting the triangle's uniform area density with the
// distance²/cos(θ) Jacobian. Returns 0 if the direction misses the triangle.
func (t *Triangle) PdfValue(origin, direction core.Vec3) float64 {
	hit, isHit := t.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1))
	if !isHit {
		return 0.0
	}

	dirLength := direction.Length()
	if dirLength == 0 || t.area == 0 {
		return 0.0
	}

	// Distance and cosine measured with the actual (possibly non-unit)
	// direction, so the two length factors cancel consistently
	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / dirLength
	if cosine < 1e-8 {
		return 0.0
	}

	return distanceSquared / (cosine * t.area)
}

// Random returns a unit direction from origin toward a point sampled
// uniformly over the triangle's area. The square-root warp makes the
// barycentric mapping area-preserving.
func (t *Triangle) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	u := sampler.Get2D()

	su := math.Sqrt(u.X)
	b0 := 1.0 - su
	b1 := u.Y * su

	point := t.A.Multiply(b0).
		Add(t.B.Multiply(b1)).
		Add(t.C.Multiply(1.0 - b0 - b1))

	return point.Subtract(origin).Normalize()
}
