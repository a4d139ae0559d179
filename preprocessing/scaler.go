// Package preprocessing provides feature scaling for the prediction
// pipeline.
package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/launchlens/launchlens/core/model"
	"github.com/launchlens/launchlens/pkg/errors"
)

// StandardScaler transforms features to zero mean and unit variance. It is
// fit exactly once on the training corpus and reused read-only for every
// subsequent transform, including the live prediction path.
type StandardScaler struct {
	model.BaseEstimator

	// Mean holds the per-feature mean of the training data.
	Mean []float64

	// Scale holds the per-feature standard deviation of the training data.
	Scale []float64

	// NFeatures is the number of features the scaler was fit on.
	NFeatures int
}

// minStdDev is the threshold below which a feature is considered
// degenerate. Standardizing below it would amplify noise or divide by zero.
const minStdDev = 1e-8

// NewStandardScaler creates an unfitted StandardScaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit computes the per-feature mean and standard deviation of X.
//
// A feature with near-zero variance cannot be standardized; Fit returns a
// DegenerateFeatureError instead of silently substituting a scale, so that
// startup aborts rather than serving NaN predictions.
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewValueError("StandardScaler.Fit", "empty data")
	}

	s.NFeatures = c
	s.Mean = make([]float64, c)
	s.Scale = make([]float64, c)

	for j := 0; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			sum += X.At(i, j)
		}
		s.Mean[j] = sum / float64(r)
	}

	for j := 0; j < c; j++ {
		sumSquares := 0.0
		for i := 0; i < r; i++ {
			diff := X.At(i, j) - s.Mean[j]
			sumSquares += diff * diff
		}
		variance := sumSquares / float64(r)
		s.Scale[j] = math.Sqrt(variance)

		if math.Abs(s.Scale[j]) < minStdDev {
			return errors.NewDegenerateFeatureError("StandardScaler.Fit", j, s.Scale[j])
		}
	}

	s.SetFitted()
	return nil
}

// Transform standardizes X using the fitted statistics.
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.Transform", s.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, (X.At(i, j)-s.Mean[j])/s.Scale[j])
		}
	}

	return result, nil
}

// FitTransform fits the scaler on X and returns the standardized X.
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// TransformVector standardizes a single sample given as a slice. This is the
// hot path for live predictions, which arrive one record at a time.
func (s *StandardScaler) TransformVector(x []float64) ([]float64, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "TransformVector")
	}
	if len(x) != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.TransformVector", s.NFeatures, len(x), 1)
	}

	scaled := make([]float64, len(x))
	for j, v := range x {
		scaled[j] = (v - s.Mean[j]) / s.Scale[j]
	}
	return scaled, nil
}

// String returns a short description of the scaler.
func (s *StandardScaler) String() string {
	if !s.IsFitted() {
		return "StandardScaler(unfitted)"
	}
	return fmt.Sprintf("StandardScaler(n_features=%d)", s.NFeatures)
}
