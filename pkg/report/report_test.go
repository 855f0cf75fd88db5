package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"simplekrige/internal/models"
	"simplekrige/pkg/kernel"
	"simplekrige/pkg/spatial"
)

func TestParameters(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Parameters(1.5, kernel.Parameters{Sill: 5, Range: 0.25, Smoothness: 0.5, Nugget: 0.1})

	out := buf.String()
	assert.Contains(t, out, "Covariance parameters:")
	assert.Contains(t, out, "Sill:")
	assert.Contains(t, out, "5.0000")
	assert.Contains(t, out, "0.2500")
}

func TestObservations(t *testing.T) {
	var buf bytes.Buffer
	obs := []spatial.Observation{
		{Loc: spatial.Location{X: 0, Y: 0}, Value: 2.0},
		{Loc: spatial.Location{X: 1, Y: 0}, Value: 4.0},
	}
	New(&buf).Observations(obs)

	out := buf.String()
	assert.Contains(t, out, "Observations (2):")
	assert.Contains(t, out, "2.0000")
	assert.Contains(t, out, "4.0000")
	// Summary line: mean 3, min separation 1.
	assert.Contains(t, out, "Sample mean: 3.0000")
	assert.Contains(t, out, "min separation: 1.0000")
}

func TestResult(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Result(spatial.Location{X: 0.5, Y: 0.5}, models.Result{Prediction: 0.36, MSPE: 4.95})
	assert.Contains(t, buf.String(), "prediction 0.360000")
	assert.NotContains(t, buf.String(), "unstable")

	buf.Reset()
	r.Result(spatial.Location{}, models.Result{Unstable: true})
	assert.Contains(t, buf.String(), "[unstable solve]")
}

func TestResults(t *testing.T) {
	var buf bytes.Buffer
	preds := []models.GridPrediction{
		{Target: spatial.Location{X: 0, Y: 0}, Result: models.Result{Prediction: 1, MSPE: 0.5}},
		{Target: spatial.Location{X: 1, Y: 0}, Result: models.Result{Prediction: 2, MSPE: 0.25}},
	}
	New(&buf).Results(preds)

	out := buf.String()
	assert.Contains(t, out, "Predictions (2):")
	assert.Contains(t, out, "1.000000")
	assert.Contains(t, out, "0.250000")
	assert.Equal(t, 2, strings.Count(out, "\n")-3, "one row per prediction")
}
