// Package ensemble implements a random forest classifier: bootstrap-bagged
// decision trees with per-split feature subsampling and averaged class
// probabilities.
package ensemble

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/launchlens/launchlens/core/model"
	"github.com/launchlens/launchlens/pkg/errors"
	"github.com/launchlens/launchlens/tree"
)

// RandomForestClassifier trains an ensemble of CART trees. Every source of
// randomness (bootstrap resampling, feature subsampling) is derived from the
// configured seed, so identical seeds produce identical forests.
type RandomForestClassifier struct {
	model.BaseEstimator

	nEstimators int
	maxDepth    int
	maxFeatures int
	seed        uint64

	nFeatures int
	nClasses  int
	trees     []*tree.DecisionTreeClassifier
}

// ForestOption configures a RandomForestClassifier.
type ForestOption func(*RandomForestClassifier)

// WithNEstimators sets the number of trees.
func WithNEstimators(n int) ForestOption {
	return func(rf *RandomForestClassifier) {
		rf.nEstimators = n
	}
}

// WithMaxDepth limits the depth of each tree. Zero means unlimited.
func WithMaxDepth(depth int) ForestOption {
	return func(rf *RandomForestClassifier) {
		rf.maxDepth = depth
	}
}

// WithMaxFeatures sets how many features each split considers. Zero selects
// sqrt(n_features).
func WithMaxFeatures(n int) ForestOption {
	return func(rf *RandomForestClassifier) {
		rf.maxFeatures = n
	}
}

// WithSeed sets the base random seed for the forest.
func WithSeed(seed uint64) ForestOption {
	return func(rf *RandomForestClassifier) {
		rf.seed = seed
	}
}

// NewRandomForestClassifier creates a forest with the given options.
// Defaults: 100 trees, unlimited depth, sqrt feature subsampling, seed 42.
func NewRandomForestClassifier(opts ...ForestOption) *RandomForestClassifier {
	rf := &RandomForestClassifier{
		nEstimators: 100,
		seed:        42,
	}
	for _, opt := range opts {
		opt(rf)
	}
	return rf
}

// Fit trains the ensemble on X and integer class labels y (one column).
// Each tree sees a bootstrap resample of the rows.
func (rf *RandomForestClassifier) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewValueError("RandomForestClassifier.Fit", "empty data")
	}
	if ry != r {
		return errors.NewDimensionError("RandomForestClassifier.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("RandomForestClassifier.Fit", "y must be a column vector")
	}

	rf.nFeatures = c

	maxFeatures := rf.maxFeatures
	if maxFeatures <= 0 {
		maxFeatures = int(math.Sqrt(float64(c)))
		if maxFeatures < 1 {
			maxFeatures = 1
		}
	}

	rng := rand.New(rand.NewPCG(rf.seed, rf.seed))

	rf.trees = make([]*tree.DecisionTreeClassifier, rf.nEstimators)
	rf.nClasses = 0

	bootX := mat.NewDense(r, c, nil)
	bootY := mat.NewDense(r, 1, nil)

	for t := 0; t < rf.nEstimators; t++ {
		for i := 0; i < r; i++ {
			src := rng.IntN(r)
			for j := 0; j < c; j++ {
				bootX.Set(i, j, X.At(src, j))
			}
			bootY.Set(i, 0, y.At(src, 0))
		}

		dt := tree.NewDecisionTreeClassifier(
			tree.WithCriterion("gini"),
			tree.WithMaxDepth(rf.maxDepth),
			tree.WithMaxFeatures(maxFeatures),
			tree.WithSeed(rf.seed+uint64(t)+1),
		)
		if err := dt.Fit(bootX, bootY); err != nil {
			return errors.Wrapf(err, "training tree %d", t)
		}
		rf.trees[t] = dt
		if dt.NClasses() > rf.nClasses {
			rf.nClasses = dt.NClasses()
		}
	}

	rf.SetFitted()
	return nil
}

// PredictProba returns the per-class probability for each row of X,
// averaged over all trees.
func (rf *RandomForestClassifier) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if !rf.IsFitted() {
		return nil, errors.NewNotFittedError("RandomForestClassifier", "PredictProba")
	}

	r, c := X.Dims()
	if c != rf.nFeatures {
		return nil, errors.NewDimensionError("RandomForestClassifier.PredictProba", rf.nFeatures, c, 1)
	}

	result := mat.NewDense(r, rf.nClasses, nil)
	x := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x[j] = X.At(i, j)
		}
		proba, err := rf.predictVector(x)
		if err != nil {
			return nil, err
		}
		for k, p := range proba {
			result.Set(i, k, p)
		}
	}
	return result, nil
}

// PredictProbaVector classifies a single sample.
func (rf *RandomForestClassifier) PredictProbaVector(x []float64) ([]float64, error) {
	if !rf.IsFitted() {
		return nil, errors.NewNotFittedError("RandomForestClassifier", "PredictProbaVector")
	}
	if len(x) != rf.nFeatures {
		return nil, errors.NewDimensionError("RandomForestClassifier.PredictProbaVector", rf.nFeatures, len(x), 1)
	}
	return rf.predictVector(x)
}

func (rf *RandomForestClassifier) predictVector(x []float64) ([]float64, error) {
	avg := make([]float64, rf.nClasses)
	for _, dt := range rf.trees {
		proba, err := dt.PredictProbaVector(x)
		if err != nil {
			return nil, err
		}
		for k, p := range proba {
			avg[k] += p
		}
	}
	for k := range avg {
		avg[k] /= float64(len(rf.trees))
	}
	return avg, nil
}

// Predict returns the argmax class for each row of X as a column vector.
// Ties break toward the lowest class index.
func (rf *RandomForestClassifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	proba, err := rf.PredictProba(X)
	if err != nil {
		return nil, err
	}

	r, _ := proba.Dims()
	result := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		result.Set(i, 0, float64(Argmax(rowOf(proba, i, rf.nClasses))))
	}
	return result, nil
}

// NClasses returns the number of classes seen during Fit.
func (rf *RandomForestClassifier) NClasses() int { return rf.nClasses }

// FeatureImportances averages the per-tree impurity-decrease importances
// and renormalizes them to sum to 1.
func (rf *RandomForestClassifier) FeatureImportances() ([]float64, error) {
	if !rf.IsFitted() {
		return nil, errors.NewNotFittedError("RandomForestClassifier", "FeatureImportances")
	}

	sum := make([]float64, rf.nFeatures)
	for _, dt := range rf.trees {
		for j, imp := range dt.FeatureImportances() {
			sum[j] += imp
		}
	}

	total := 0.0
	for _, v := range sum {
		total += v
	}
	if total == 0 {
		return sum, nil
	}
	for j := range sum {
		sum[j] /= total
	}
	return sum, nil
}

// Argmax returns the index of the largest value, preferring the lowest
// index on exact ties.
func Argmax(values []float64) int {
	best := 0
	for k := 1; k < len(values); k++ {
		if values[k] > values[best] {
			best = k
		}
	}
	return best
}

func rowOf(m mat.Matrix, i, c int) []float64 {
	row := make([]float64, c)
	for k := 0; k < c; k++ {
		row[k] = m.At(i, k)
	}
	return row
}
