package tetramath

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minParallelChunk is the smallest number of elements handed to a single worker.
const minParallelChunk = 1024

// TransformQuaternionsParallel is TransformQuaternions split across worker goroutines. Each destination index receives the
// rotation of the same source index, with no ordering between elements. A workers value of 0 or less uses runtime.GOMAXPROCS(0).
// dest must not overlap source at a different offset.
func TransformQuaternionsParallel(source []Vector3, rotation Quaternion, dest []Vector3, workers int) error {
	return transformParallel(source, dest, workers, func(v Vector3) Vector3 {
		return TransformQuaternion(v, rotation)
	})
}

// TransformMatricesParallel is TransformMatrices split across worker goroutines; see TransformQuaternionsParallel.
func TransformMatricesParallel(source []Vector3, matrix Matrix4, dest []Vector3, workers int) error {
	return transformParallel(source, dest, workers, func(v Vector3) Vector3 {
		return TransformMatrix(v, matrix)
	})
}

func transformParallel(source, dest []Vector3, workers int, transform func(Vector3) Vector3) error {

	if err := checkRange(len(source), 0, len(dest), 0, len(source)); err != nil {
		return err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunk := (len(source) + workers - 1) / workers
	if chunk < minParallelChunk {
		chunk = minParallelChunk
	}

	var group errgroup.Group
	group.SetLimit(workers)

	for start := 0; start < len(source); start += chunk {
		start, end := start, min(start+chunk, len(source))
		group.Go(func() error {
			return transformRange(source, start, dest, start, end-start, transform)
		})
	}

	return group.Wait()

}
