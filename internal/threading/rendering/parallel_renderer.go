package rendering

import (
	"followcam/internal/threading/core"
)

// Segment is a projected line in screen pixels.
type Segment struct {
	X0, Y0 float32
	X1, Y1 float32
}

// ParallelRenderer projects independent batches of geometry on a worker pool.
type ParallelRenderer struct {
	workerPool *core.WorkerPool
}

// NewParallelRenderer creates a new parallel renderer
func NewParallelRenderer() *ParallelRenderer {
	return &ParallelRenderer{
		workerPool: core.CreateDefaultWorkerPool(),
	}
}

// ProjectBatches calls projectFunc once per batch and concatenates the
// segments in batch order, so output does not depend on scheduling.
// projectFunc appends to dst and returns it.
func (pr *ParallelRenderer) ProjectBatches(numBatches int, projectFunc func(batch int, dst []Segment) []Segment) []Segment {
	if numBatches <= 0 {
		return nil
	}

	// Very small workloads: process inline to avoid synchronization overhead
	if numBatches <= 2 || pr.workerPool == nil {
		var out []Segment
		for batch := 0; batch < numBatches; batch++ {
			out = projectFunc(batch, out)
		}
		return out
	}

	// Each batch owns its slot, so the workers never share a slice.
	perBatch := make([][]Segment, numBatches)
	pr.workerPool.ParallelFor(0, numBatches, func(batch int) {
		perBatch[batch] = projectFunc(batch, nil)
	})

	total := 0
	for _, segments := range perBatch {
		total += len(segments)
	}
	out := make([]Segment, 0, total)
	for _, segments := range perBatch {
		out = append(out, segments...)
	}
	return out
}

// GetNumWorkers reports the size of the underlying pool.
func (pr *ParallelRenderer) GetNumWorkers() int {
	if pr.workerPool == nil {
		return 0
	}
	return pr.workerPool.GetNumWorkers()
}

// Stop shuts down the parallel renderer
func (pr *ParallelRenderer) Stop() {
	if pr.workerPool != nil {
		pr.workerPool.Stop()
	}
}
