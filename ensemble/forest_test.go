package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/launchlens/launchlens/dataset"
)

func trainingData(t *testing.T) (*mat.Dense, *mat.Dense) {
	t.Helper()
	X, y, err := dataset.NewGenerator(42).Generate(300)
	require.NoError(t, err)

	yCol := mat.NewDense(len(y), 1, nil)
	for i, label := range y {
		yCol.Set(i, 0, float64(label))
	}
	return X, yCol
}

func TestRandomForest_FitPredict(t *testing.T) {
	X, y := trainingData(t)

	rf := NewRandomForestClassifier(
		WithNEstimators(20),
		WithMaxDepth(10),
		WithSeed(42),
	)
	require.NoError(t, rf.Fit(X, y))
	assert.Equal(t, 3, rf.NClasses())

	preds, err := rf.Predict(X)
	require.NoError(t, err)

	// The tiers are widely separated, so training accuracy should be high.
	r, _ := preds.Dims()
	correct := 0
	for i := 0; i < r; i++ {
		if preds.At(i, 0) == y.At(i, 0) {
			correct++
		}
	}
	assert.Greater(t, float64(correct)/float64(r), 0.95)
}

func TestRandomForest_ProbabilitiesSumToOne(t *testing.T) {
	X, y := trainingData(t)

	rf := NewRandomForestClassifier(WithNEstimators(10), WithMaxDepth(10), WithSeed(42))
	require.NoError(t, rf.Fit(X, y))

	proba, err := rf.PredictProba(X)
	require.NoError(t, err)

	r, c := proba.Dims()
	require.Equal(t, 3, c)
	for i := 0; i < r; i++ {
		sum := 0.0
		for k := 0; k < c; k++ {
			p := proba.At(i, k)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestRandomForest_Deterministic(t *testing.T) {
	X, y := trainingData(t)
	probe := []float64{500000, 10, 50000000, 25000, 15}

	fit := func() []float64 {
		rf := NewRandomForestClassifier(WithNEstimators(10), WithMaxDepth(10), WithSeed(42))
		require.NoError(t, rf.Fit(X, y))
		proba, err := rf.PredictProbaVector(probe)
		require.NoError(t, err)
		return proba
	}

	assert.Equal(t, fit(), fit())
}

func TestRandomForest_NotFitted(t *testing.T) {
	rf := NewRandomForestClassifier()
	_, err := rf.PredictProbaVector([]float64{1, 2, 3, 4, 5})
	assert.Error(t, err)
	_, err = rf.FeatureImportances()
	assert.Error(t, err)
}

func TestRandomForest_FeatureImportancesNormalized(t *testing.T) {
	X, y := trainingData(t)

	rf := NewRandomForestClassifier(WithNEstimators(10), WithMaxDepth(10), WithSeed(42))
	require.NoError(t, rf.Fit(X, y))

	imp, err := rf.FeatureImportances()
	require.NoError(t, err)
	require.Len(t, imp, dataset.NumFeatures)

	sum := 0.0
	for _, v := range imp {
		assert.GreaterOrEqual(t, v, 0.0)
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestArgmax_TieBreaksLow(t *testing.T) {
	assert.Equal(t, 0, Argmax([]float64{0.4, 0.4, 0.2}))
	assert.Equal(t, 2, Argmax([]float64{0.1, 0.2, 0.7}))
	assert.Equal(t, 1, Argmax([]float64{0.2, 0.5, 0.3}))
}
