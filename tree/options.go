package tree

// Option is a function that configures a DecisionTreeClassifier.
type Option func(*DecisionTreeClassifier)

// WithCriterion sets the split quality criterion ("gini" or "entropy").
func WithCriterion(criterion string) Option {
	return func(dt *DecisionTreeClassifier) {
		dt.criterion = criterion
	}
}

// WithMaxDepth limits the depth of the tree. Zero means unlimited.
func WithMaxDepth(depth int) Option {
	return func(dt *DecisionTreeClassifier) {
		dt.maxDepth = depth
	}
}

// WithMinSamplesLeaf sets the minimum number of samples required at a leaf.
func WithMinSamplesLeaf(n int) Option {
	return func(dt *DecisionTreeClassifier) {
		dt.minSamplesLeaf = n
	}
}

// WithMaxFeatures limits how many features are considered at each split.
// Zero means all features. Subsampling requires a seed for determinism.
func WithMaxFeatures(n int) Option {
	return func(dt *DecisionTreeClassifier) {
		dt.maxFeatures = n
	}
}

// WithSeed sets the seed for per-split feature subsampling.
func WithSeed(seed uint64) Option {
	return func(dt *DecisionTreeClassifier) {
		dt.seed = seed
	}
}
