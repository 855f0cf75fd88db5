package models

import (
	"simplekrige/pkg/spatial"
)

// Result holds the outcome of a single kriging prediction.
type Result struct {
	// Prediction is the simple-kriging predictor of the process value at
	// the target location.
	Prediction float64

	// MSPE is the mean-squared prediction error (kriging variance) of the
	// predictor. Non-negative; clamped to zero when roundoff drives it
	// slightly negative.
	MSPE float64

	// Unstable reports that the computed MSPE was negative beyond
	// numerical tolerance, indicating a severely ill-conditioned
	// covariance matrix. The clamped MSPE should not be trusted.
	Unstable bool
}

// GridPrediction pairs a target location with its prediction result,
// used when sweeping a grid of targets.
type GridPrediction struct {
	Target spatial.Location
	Result Result
}
