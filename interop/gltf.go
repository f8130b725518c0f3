// Package interop converts between tetramath's value types and the math and asset types used by other libraries:
// glTF documents (github.com/qmuntal/gltf), mathgl, golang.org/x/image/math/f32, and gonum.
package interop

import (
	"errors"
	"fmt"
	"sort"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/solarlune/tetramath"
	"github.com/solarlune/tetramath/math32"
)

// ErrUnsupportedAccessor is returned when an animation sampler's accessor doesn't hold the float data a rotation track needs.
var ErrUnsupportedAccessor = errors.New("interop: unsupported accessor data for a rotation track")

// NodeTransform is the local transform of a glTF node.
type NodeTransform struct {
	Name     string
	Position tetramath.Vector3
	Scale    tetramath.Vector3
	Rotation tetramath.Quaternion
}

// Matrix returns the transform as a single Matrix4; scale is applied first, then rotation, then translation.
func (transform NodeTransform) Matrix() tetramath.Matrix4 {
	return tetramath.NewMatrix4Scale(transform.Scale.X, transform.Scale.Y, transform.Scale.Z).
		Mult(transform.Rotation.ToMatrix4()).
		Mult(tetramath.NewMatrix4Translate(transform.Position.X, transform.Position.Y, transform.Position.Z))
}

// NodeMatrix returns the glTF node's local matrix. glTF stores matrices column-major for column vectors, which flattens
// to the same 16 values as a row-major Matrix4 for row vectors, so the values are copied over as-is. A node without a
// matrix has one composed from its translation, rotation, and scale instead.
func NodeMatrix(node *gltf.Node) tetramath.Matrix4 {

	mtData := nodeMatrixFloats(node)

	matrix := tetramath.NewMatrix4()
	matrix.SetRow(0, tetramath.NewVector4(float32(mtData[0]), float32(mtData[1]), float32(mtData[2]), float32(mtData[3])))
	matrix.SetRow(1, tetramath.NewVector4(float32(mtData[4]), float32(mtData[5]), float32(mtData[6]), float32(mtData[7])))
	matrix.SetRow(2, tetramath.NewVector4(float32(mtData[8]), float32(mtData[9]), float32(mtData[10]), float32(mtData[11])))
	matrix.SetRow(3, tetramath.NewVector4(float32(mtData[12]), float32(mtData[13]), float32(mtData[14]), float32(mtData[15])))

	if !matrix.IsIdentity() {
		return matrix
	}

	return trsTransform(node).Matrix()

}

// NodeTransformOf returns the node's local transform. If the node specifies a matrix, it's decomposed; otherwise the
// translation, rotation, and scale properties are used directly.
func NodeTransformOf(node *gltf.Node) NodeTransform {

	if !hasMatrix(node) {
		return trsTransform(node)
	}

	p, s, r := NodeMatrix(node).Decompose()

	return NodeTransform{
		Name:     node.Name,
		Position: p,
		Scale:    s,
		Rotation: tetramath.FromRotationMatrix(r),
	}

}

var identityFloats = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// A node built in code rather than decoded may leave its properties zeroed; those read as the glTF defaults.
func nodeMatrixFloats(node *gltf.Node) [16]float64 {
	if node.Matrix == [16]float64{} {
		return identityFloats
	}
	return node.Matrix
}

func hasMatrix(node *gltf.Node) bool {
	return nodeMatrixFloats(node) != identityFloats
}

func trsTransform(node *gltf.Node) NodeTransform {

	t := node.Translation

	s := node.Scale
	if s == [3]float64{} {
		s = [3]float64{1, 1, 1}
	}

	// glTF rotations are stored as [x, y, z, w], the same order as Quaternion's fields.
	r := node.Rotation
	if r == [4]float64{} {
		r = [4]float64{0, 0, 0, 1}
	}

	return NodeTransform{
		Name:     node.Name,
		Position: tetramath.NewVector3(float32(t[0]), float32(t[1]), float32(t[2])),
		Scale:    tetramath.NewVector3(float32(s[0]), float32(s[1]), float32(s[2])),
		Rotation: tetramath.NewQuaternion(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3])),
	}

}

// NodeRotation returns the node's local rotation.
func NodeRotation(node *gltf.Node) tetramath.Quaternion {
	return NodeTransformOf(node).Rotation
}

// SetNodeRotation sets the node's rotation property. A node's matrix overrides its TRS properties, so if the node
// has one, the matrix's rotation block is replaced instead, keeping its translation and scale.
func SetNodeRotation(node *gltf.Node, rotation tetramath.Quaternion) {

	if !hasMatrix(node) {
		node.Rotation = [4]float64{float64(rotation.X), float64(rotation.Y), float64(rotation.Z), float64(rotation.W)}
		return
	}

	transform := NodeTransformOf(node)
	transform.Rotation = rotation
	floats := transform.Matrix().ToFloats()
	for i, f := range floats {
		node.Matrix[i] = float64(f)
	}

}

// RotationTrack is the rotation channel of a glTF animation targeting a single node.
type RotationTrack struct {
	Animation     string
	Node          string
	Interpolation gltf.Interpolation
	Times         []float32
	// Rotations holds one keyframe per time. Cubic spline tracks hold three per time instead: the in-tangent, the
	// value, and the out-tangent.
	Rotations []tetramath.Quaternion
}

// Length returns the time of the last keyframe in the track.
func (track *RotationTrack) Length() float32 {
	if len(track.Times) == 0 {
		return 0
	}
	return track.Times[len(track.Times)-1]
}

func (track *RotationTrack) keyframe(index int) tetramath.Quaternion {
	if track.Interpolation == gltf.InterpolationCubicSpline {
		return track.Rotations[index*3+1]
	}
	return track.Rotations[index]
}

// Sample returns the track's rotation at the given time, clamped to the track's first and last keyframes.
func (track *RotationTrack) Sample(time float32) tetramath.Quaternion {

	if len(track.Times) == 0 {
		return tetramath.QuaternionIdentity
	}

	if time <= track.Times[0] {
		return track.keyframe(0)
	}

	last := len(track.Times) - 1
	if time >= track.Times[last] {
		return track.keyframe(last)
	}

	// next is the first keyframe after time; it's at least 1 since time > Times[0].
	next := sort.Search(len(track.Times), func(i int) bool { return track.Times[i] > time })
	prev := next - 1

	dt := track.Times[next] - track.Times[prev]
	percent := (time - track.Times[prev]) / dt

	switch track.Interpolation {

	case gltf.InterpolationStep:
		return track.keyframe(prev)

	case gltf.InterpolationCubicSpline:
		v1 := track.Rotations[prev*3+1]
		out1 := track.Rotations[prev*3+2].Scale(dt)
		v2 := track.Rotations[next*3+1]
		in2 := track.Rotations[next*3].Scale(dt)
		q := tetramath.NewQuaternion(
			math32.Hermite(v1.X, out1.X, v2.X, in2.X, percent),
			math32.Hermite(v1.Y, out1.Y, v2.Y, in2.Y, percent),
			math32.Hermite(v1.Z, out1.Z, v2.Z, in2.Z, percent),
			math32.Hermite(v1.W, out1.W, v2.W, in2.W, percent),
		)
		return q.Unit()

	default:
		return track.keyframe(prev).Slerp(track.keyframe(next), percent)

	}

}

// RotationTracks reads every rotation channel out of the document's animations.
func RotationTracks(doc *gltf.Document) ([]RotationTrack, error) {

	tracks := []RotationTrack{}

	for _, gltfAnim := range doc.Animations {

		for _, channel := range gltfAnim.Channels {

			if channel.Target.Path != gltf.TRSRotation {
				continue
			}

			if channel.Sampler < 0 || channel.Sampler >= len(gltfAnim.Samplers) {
				return nil, fmt.Errorf("interop: rotation channel of %q references missing sampler %d", gltfAnim.Name, channel.Sampler)
			}

			sampler := gltfAnim.Samplers[channel.Sampler]

			nodeName := "root"
			if channel.Target.Node != nil {
				nodeName = doc.Nodes[*channel.Target.Node].Name
			}

			id, err := modeler.ReadAccessor(doc, doc.Accessors[sampler.Input], nil)
			if err != nil {
				return nil, fmt.Errorf("interop: reading keyframe times of %q: %w", gltfAnim.Name, err)
			}

			inputData, ok := id.([]float32)
			if !ok {
				return nil, fmt.Errorf("%w: times of %q are %T", ErrUnsupportedAccessor, gltfAnim.Name, id)
			}

			od, err := modeler.ReadAccessor(doc, doc.Accessors[sampler.Output], nil)
			if err != nil {
				return nil, fmt.Errorf("interop: reading rotations of %q: %w", gltfAnim.Name, err)
			}

			outputData, ok := od.([][4]float32)
			if !ok {
				return nil, fmt.Errorf("%w: rotations of %q are %T", ErrUnsupportedAccessor, gltfAnim.Name, od)
			}

			perKey := 1
			if sampler.Interpolation == gltf.InterpolationCubicSpline {
				perKey = 3
			}
			if len(outputData) != len(inputData)*perKey {
				return nil, fmt.Errorf("%w: %q has %d times but %d rotations", ErrUnsupportedAccessor, gltfAnim.Name, len(inputData), len(outputData))
			}

			track := RotationTrack{
				Animation:     gltfAnim.Name,
				Node:          nodeName,
				Interpolation: sampler.Interpolation,
				Times:         inputData,
				Rotations:     make([]tetramath.Quaternion, 0, len(outputData)),
			}

			for _, p := range outputData {
				track.Rotations = append(track.Rotations, tetramath.NewQuaternion(p[0], p[1], p[2], p[3]))
			}

			tracks = append(tracks, track)

		}

	}

	return tracks, nil

}

// Scene is the transform data of a loaded glTF document: every node's local transform and every rotation track.
type Scene struct {
	Nodes  []NodeTransform
	Tracks []RotationTrack
}

// LoadGLTFFile loads a .gltf or .glb file from the filepath given, returning the transforms and rotation tracks it contains.
func LoadGLTFFile(path string) (*Scene, error) {

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}

	scene := &Scene{}

	for _, node := range doc.Nodes {
		scene.Nodes = append(scene.Nodes, NodeTransformOf(node))
	}

	scene.Tracks, err = RotationTracks(doc)
	if err != nil {
		return nil, err
	}

	return scene, nil

}
