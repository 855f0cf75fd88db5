package krige

import (
	"runtime"
	"sync"

	"simplekrige/internal/models"
	"simplekrige/pkg/spatial"
)

// Grid describes a rectangular lattice of prediction targets, swept in
// row-major order (y outer, x inner).
type Grid struct {
	MinX, MaxX float64
	MinY, MaxY float64
	Nx, Ny     int
}

// Targets expands the grid into its ordered target locations.
func (g Grid) Targets() spatial.Locations {
	targets := make(spatial.Locations, 0, g.Nx*g.Ny)
	for j := 0; j < g.Ny; j++ {
		y := g.MinY
		if g.Ny > 1 {
			y += float64(j) * (g.MaxY - g.MinY) / float64(g.Ny-1)
		}
		for i := 0; i < g.Nx; i++ {
			x := g.MinX
			if g.Nx > 1 {
				x += float64(i) * (g.MaxX - g.MinX) / float64(g.Nx-1)
			}
			targets = append(targets, spatial.Location{X: x, Y: y})
		}
	}
	return targets
}

// ProgressCallback reports grid-sweep progress. It receives the number
// of completed targets and the total.
type ProgressCallback func(completed, total int)

// PredictGrid runs an independent prediction for every target on the
// grid, fanned across workers goroutines (NumCPU when workers <= 0).
// Each prediction is a full solve over the same observation set, so the
// calls share no state and need no coordination beyond slicing the
// target range per worker. Results preserve grid order.
//
// The sweep is all-or-nothing: a solve can only fail through the
// observation covariance matrix, which every target shares, so a
// failure for one target is a failure for all and no partial results
// are returned. Progress, if non-nil, is invoked as targets complete.
func (e *Engine) PredictGrid(obs []spatial.Observation, g Grid, workers int, progress ProgressCallback) ([]models.GridPrediction, error) {
	targets := g.Targets()
	total := len(targets)
	if total == 0 {
		return nil, nil
	}
	out := make([]models.GridPrediction, total)
	errs := make([]error, total)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > total {
		workers = total
	}

	var completed int
	var progressMu sync.Mutex

	var wg sync.WaitGroup
	perWorker := (total + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * perWorker
		end := start + perWorker
		if end > total {
			end = total
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				res, err := e.Predict(obs, targets[i])
				out[i] = models.GridPrediction{Target: targets[i], Result: res}
				errs[i] = err

				if progress != nil {
					progressMu.Lock()
					completed++
					progress(completed, total)
					progressMu.Unlock()
				}
			}
		}(start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
