// Package tree implements a CART decision tree classifier. It is the base
// learner for the ensemble package; the split search follows the classic
// exhaustive midpoint scan over sorted feature values.
package tree

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/launchlens/launchlens/core/model"
	"github.com/launchlens/launchlens/pkg/errors"
)

// DecisionTreeClassifier is a binary-split classification tree.
type DecisionTreeClassifier struct {
	model.BaseEstimator

	criterion      string
	maxDepth       int
	minSamplesLeaf int
	maxFeatures    int
	seed           uint64

	nFeatures   int
	nClasses    int
	root        *node
	importances []float64

	rng *rand.Rand
}

// node is a tree node. Leaves carry a class probability distribution;
// internal nodes route on feature <= threshold.
type node struct {
	feature   int
	threshold float64
	left      *node
	right     *node
	proba     []float64
}

func (n *node) isLeaf() bool { return n.left == nil }

// NewDecisionTreeClassifier creates a tree with the given options.
// Defaults: gini criterion, unlimited depth, one sample per leaf, all
// features considered at each split.
func NewDecisionTreeClassifier(opts ...Option) *DecisionTreeClassifier {
	dt := &DecisionTreeClassifier{
		criterion:      "gini",
		minSamplesLeaf: 1,
	}
	for _, opt := range opts {
		opt(dt)
	}
	return dt
}

// Fit grows the tree on X and integer class labels y (one column).
func (dt *DecisionTreeClassifier) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewValueError("DecisionTreeClassifier.Fit", "empty data")
	}
	if ry != r {
		return errors.NewDimensionError("DecisionTreeClassifier.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("DecisionTreeClassifier.Fit", "y must be a column vector")
	}
	if dt.criterion != "gini" && dt.criterion != "entropy" {
		return errors.NewValueError("DecisionTreeClassifier.Fit", "unknown criterion "+dt.criterion)
	}

	// Copy into slices once; the split search sorts per feature repeatedly
	// and mat.Matrix access is too slow for that inner loop.
	xs := make([][]float64, r)
	ys := make([]int, r)
	nClasses := 0
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		for j := 0; j < c; j++ {
			row[j] = X.At(i, j)
		}
		xs[i] = row
		ys[i] = int(y.At(i, 0))
		if ys[i] < 0 {
			return errors.NewValueError("DecisionTreeClassifier.Fit", "negative class label")
		}
		if ys[i]+1 > nClasses {
			nClasses = ys[i] + 1
		}
	}

	dt.nFeatures = c
	dt.nClasses = nClasses
	dt.importances = make([]float64, c)
	dt.rng = rand.New(rand.NewPCG(dt.seed, dt.seed))

	indices := make([]int, r)
	for i := range indices {
		indices[i] = i
	}
	dt.root = dt.grow(xs, ys, indices, 0)

	// Importances are accumulated as weighted impurity decreases; normalize
	// so they sum to 1 for a non-trivial tree.
	total := 0.0
	for _, imp := range dt.importances {
		total += imp
	}
	if total > 0 {
		for j := range dt.importances {
			dt.importances[j] /= total
		}
	}

	dt.SetFitted()
	return nil
}

// grow recursively builds the subtree over the given sample indices.
func (dt *DecisionTreeClassifier) grow(xs [][]float64, ys, indices []int, depth int) *node {
	counts := make([]float64, dt.nClasses)
	for _, i := range indices {
		counts[ys[i]]++
	}

	n := float64(len(indices))
	impurity := dt.impurity(counts, n)

	if impurity == 0 ||
		(dt.maxDepth > 0 && depth >= dt.maxDepth) ||
		len(indices) < 2*dt.minSamplesLeaf {
		return leafNode(counts, n)
	}

	feature, threshold, gain := dt.bestSplit(xs, ys, indices, impurity)
	if gain <= 0 {
		return leafNode(counts, n)
	}

	var left, right []int
	for _, i := range indices {
		if xs[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return leafNode(counts, n)
	}

	dt.importances[feature] += n * gain

	return &node{
		feature:   feature,
		threshold: threshold,
		left:      dt.grow(xs, ys, left, depth+1),
		right:     dt.grow(xs, ys, right, depth+1),
	}
}

func leafNode(counts []float64, n float64) *node {
	proba := make([]float64, len(counts))
	for k, c := range counts {
		proba[k] = c / n
	}
	return &node{proba: proba}
}

// bestSplit scans candidate features for the split with the largest
// impurity decrease. Thresholds are midpoints between adjacent distinct
// sorted values.
func (dt *DecisionTreeClassifier) bestSplit(xs [][]float64, ys, indices []int, parentImpurity float64) (int, float64, float64) {
	bestFeature := -1
	bestThreshold := 0.0
	bestGain := 0.0

	n := len(indices)
	features := dt.candidateFeatures()

	type sample struct {
		value float64
		class int
	}
	sorted := make([]sample, n)

	leftCounts := make([]float64, dt.nClasses)
	rightCounts := make([]float64, dt.nClasses)

	for _, j := range features {
		for i, idx := range indices {
			sorted[i] = sample{value: xs[idx][j], class: ys[idx]}
		}
		sort.Slice(sorted, func(a, b int) bool { return sorted[a].value < sorted[b].value })

		for k := range leftCounts {
			leftCounts[k] = 0
			rightCounts[k] = 0
		}
		for _, s := range sorted {
			rightCounts[s.class]++
		}

		for i := 1; i < n; i++ {
			cls := sorted[i-1].class
			leftCounts[cls]++
			rightCounts[cls]--

			if sorted[i].value == sorted[i-1].value {
				continue
			}
			if i < dt.minSamplesLeaf || n-i < dt.minSamplesLeaf {
				continue
			}

			nl, nr := float64(i), float64(n-i)
			weighted := (nl*dt.impurity(leftCounts, nl) + nr*dt.impurity(rightCounts, nr)) / float64(n)
			gain := parentImpurity - weighted
			if gain > bestGain {
				bestGain = gain
				bestFeature = j
				bestThreshold = (sorted[i-1].value + sorted[i].value) / 2
			}
		}
	}

	if bestFeature < 0 {
		return -1, 0, 0
	}
	return bestFeature, bestThreshold, bestGain
}

// candidateFeatures returns the features to consider at one split. When
// maxFeatures is set below nFeatures, a random subset is drawn.
func (dt *DecisionTreeClassifier) candidateFeatures() []int {
	if dt.maxFeatures <= 0 || dt.maxFeatures >= dt.nFeatures {
		all := make([]int, dt.nFeatures)
		for j := range all {
			all[j] = j
		}
		return all
	}
	return dt.rng.Perm(dt.nFeatures)[:dt.maxFeatures]
}

// impurity computes the node impurity from class counts.
func (dt *DecisionTreeClassifier) impurity(counts []float64, n float64) float64 {
	if n == 0 {
		return 0
	}
	if dt.criterion == "entropy" {
		h := 0.0
		for _, c := range counts {
			if c == 0 {
				continue
			}
			p := c / n
			h -= p * math.Log2(p)
		}
		return h
	}
	// gini
	g := 1.0
	for _, c := range counts {
		p := c / n
		g -= p * p
	}
	return g
}

// Predict returns the majority class for each row of X as a column vector.
// Ties break toward the lowest class index.
func (dt *DecisionTreeClassifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	proba, err := dt.PredictProba(X)
	if err != nil {
		return nil, err
	}

	r, _ := proba.Dims()
	result := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		best, bestP := 0, proba.At(i, 0)
		for k := 1; k < dt.nClasses; k++ {
			if p := proba.At(i, k); p > bestP {
				best, bestP = k, p
			}
		}
		result.Set(i, 0, float64(best))
	}
	return result, nil
}

// PredictProba returns the per-class probability distribution for each row
// of X, one row per sample, one column per class.
func (dt *DecisionTreeClassifier) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if !dt.IsFitted() {
		return nil, errors.NewNotFittedError("DecisionTreeClassifier", "PredictProba")
	}

	r, c := X.Dims()
	if c != dt.nFeatures {
		return nil, errors.NewDimensionError("DecisionTreeClassifier.PredictProba", dt.nFeatures, c, 1)
	}

	result := mat.NewDense(r, dt.nClasses, nil)
	x := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x[j] = X.At(i, j)
		}
		proba := dt.predictVector(x)
		for k, p := range proba {
			result.Set(i, k, p)
		}
	}
	return result, nil
}

// PredictProbaVector classifies a single sample.
func (dt *DecisionTreeClassifier) PredictProbaVector(x []float64) ([]float64, error) {
	if !dt.IsFitted() {
		return nil, errors.NewNotFittedError("DecisionTreeClassifier", "PredictProbaVector")
	}
	if len(x) != dt.nFeatures {
		return nil, errors.NewDimensionError("DecisionTreeClassifier.PredictProbaVector", dt.nFeatures, len(x), 1)
	}
	return dt.predictVector(x), nil
}

func (dt *DecisionTreeClassifier) predictVector(x []float64) []float64 {
	n := dt.root
	for !n.isLeaf() {
		if x[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.proba
}

// NClasses returns the number of classes seen during Fit.
func (dt *DecisionTreeClassifier) NClasses() int { return dt.nClasses }

// FeatureImportances returns the normalized impurity-decrease importance of
// each feature. The slice sums to 1 unless the tree is a single leaf.
func (dt *DecisionTreeClassifier) FeatureImportances() []float64 {
	out := make([]float64, len(dt.importances))
	copy(out, dt.importances)
	return out
}
