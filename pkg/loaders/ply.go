package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jmelas/go-pathsampler/pkg/core"
	"github.com/jmelas/go-pathsampler/pkg/geometry"
	"github.com/jmelas/go-pathsampler/pkg/material"
)

// PLYData contains the raw data loaded from an ASCII PLY file
type PLYData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Normals  []core.Vec3 // Per-vertex normals - empty if not present
	Faces    []int       // Triangle indices (3 per triangle)
}

// plyHeader holds the parts of the header this loader cares about
type plyHeader struct {
	format      string
	vertexCount int
	faceCount   int
	vertexProps []string
}

// LoadPLY loads an ASCII PLY mesh file and returns vertex and face data.
// Quad faces are split into two triangles.
func LoadPLY(filename string) (*PLYData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	header, err := parsePLYHeader(scanner)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}
	if header.format != "ascii" {
		return nil, fmt.Errorf("unsupported PLY format: %s", header.format)
	}

	data, err := readASCIIData(scanner, header)
	if err != nil {
		return nil, fmt.Errorf("failed to read PLY data: %w", err)
	}
	return data, nil
}

// parsePLYHeader consumes header lines up to and including "end_header"
func parsePLYHeader(scanner *bufio.Scanner) (*plyHeader, error) {
	header := &plyHeader{}

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "ply" {
		return nil, fmt.Errorf("missing PLY magic line")
	}

	currentElement := ""
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "format":
			if len(fields) < 2 {
				return nil, fmt.Errorf("malformed format line: %q", line)
			}
			header.format = fields[1]
		case "element":
			if len(fields) < 3 {
				return nil, fmt.Errorf("malformed element line: %q", line)
			}
			currentElement = fields[1]
			count, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("bad element count in %q: %w", line, err)
			}
			switch currentElement {
			case "vertex":
				header.vertexCount = count
			case "face":
				header.faceCount = count
			}
		case "property":
			if currentElement == "vertex" && len(fields) >= 3 {
				header.vertexProps = append(header.vertexProps, fields[len(fields)-1])
			}
		case "comment":
			// Skip
		case "end_header":
			return header, nil
		}
	}
	return nil, fmt.Errorf("unexpected end of file in header")
}

// readASCIIData reads vertex and face rows following the header
func readASCIIData(scanner *bufio.Scanner, header *plyHeader) (*PLYData, error) {
	data := &PLYData{
		Vertices: make([]core.Vec3, 0, header.vertexCount),
	}

	// Locate position and normal columns
	propIndex := make(map[string]int, len(header.vertexProps))
	for i, name := range header.vertexProps {
		propIndex[name] = i
	}
	for _, required := range []string{"x", "y", "z"} {
		if _, ok := propIndex[required]; !ok {
			return nil, fmt.Errorf("vertex element missing %q property", required)
		}
	}
	_, hasNX := propIndex["nx"]
	_, hasNY := propIndex["ny"]
	_, hasNZ := propIndex["nz"]
	hasNormals := hasNX && hasNY && hasNZ

	for i := 0; i < header.vertexCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file at vertex %d", i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < len(header.vertexProps) {
			return nil, fmt.Errorf("vertex %d has %d values, want %d", i, len(fields), len(header.vertexProps))
		}

		values := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("bad vertex value %q: %w", f, err)
			}
			values[j] = v
		}

		data.Vertices = append(data.Vertices, core.NewVec3(
			values[propIndex["x"]], values[propIndex["y"]], values[propIndex["z"]]))
		if hasNormals {
			data.Normals = append(data.Normals, core.NewVec3(
				values[propIndex["nx"]], values[propIndex["ny"]], values[propIndex["nz"]]))
		}
	}

	for i := 0; i < header.faceCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file at face %d", i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			return nil, fmt.Errorf("empty face row %d", i)
		}

		count, err := strconv.Atoi(fields[0])
		if err != nil || len(fields) < count+1 {
			return nil, fmt.Errorf("malformed face row %d: %q", i, scanner.Text())
		}

		indices := make([]int, count)
		for j := 0; j < count; j++ {
			idx, err := strconv.Atoi(fields[j+1])
			if err != nil {
				return nil, fmt.Errorf("bad face index %q: %w", fields[j+1], err)
			}
			if idx < 0 || idx >= len(data.Vertices) {
				return nil, fmt.Errorf("face index %d out of range", idx)
			}
			indices[j] = idx
		}

		// Fan-triangulate faces with more than three vertices
		for j := 1; j+1 < count; j++ {
			data.Faces = append(data.Faces, indices[0], indices[j], indices[j+1])
		}
	}

	return data, nil
}

// BuildTriangles converts loaded PLY data into triangles sharing one
// material. Vertex normals are carried over when the file provides them.
func BuildTriangles(data *PLYData, mat material.Material) []*geometry.Triangle {
	triangles := make([]*geometry.Triangle, 0, len(data.Faces)/3)

	for i := 0; i+2 < len(data.Faces); i += 3 {
		i0, i1, i2 := data.Faces[i], data.Faces[i+1], data.Faces[i+2]
		if len(data.Normals) == len(data.Vertices) {
			triangles = append(triangles, geometry.NewTriangleWithNormals(
				data.Vertices[i0], data.Vertices[i1], data.Vertices[i2],
				data.Normals[i0], data.Normals[i1], data.Normals[i2], mat))
		} else {
			triangles = append(triangles, geometry.NewTriangle(
				data.Vertices[i0], data.Vertices[i1], data.Vertices[i2], mat))
		}
	}

	return triangles
}
