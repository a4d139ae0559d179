// Package dataset generates the synthetic training corpus that defines what
// Low, Moderate and High startup potential mean numerically. The tier ranges
// below are the ground truth for the whole pipeline: the classifier's
// decision boundaries and the benchmark profiles all derive from them.
package dataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/launchlens/launchlens/pkg/errors"
)

// NumFeatures is the width of every sample vector, in the fixed order
// [funding, team_size, market_size, revenue, growth_rate].
const NumFeatures = 5

// Class labels in ascending order of potential.
const (
	ClassLow = iota
	ClassModerate
	ClassHigh
)

// DefaultSize is the nominal corpus size. Samples are drawn per tier with
// integer division, so the generated corpus holds 3*(DefaultSize/3) rows.
const DefaultSize = 1000

// tierRange holds the uniform sampling bounds for one tier.
type tierRange struct {
	class  int
	bounds [NumFeatures][2]float64
}

// Tier boundaries. These constants are load-bearing: changing them changes
// the meaning of every prediction.
var tiers = []tierRange{
	{
		class: ClassHigh,
		bounds: [NumFeatures][2]float64{
			{1_000_000, 10_000_000}, // funding
			{20, 100},               // team size
			{50_000_000, 500_000_000},
			{100_000, 1_000_000},
			{15, 50},
		},
	},
	{
		class: ClassModerate,
		bounds: [NumFeatures][2]float64{
			{100_000, 1_000_000},
			{5, 20},
			{10_000_000, 50_000_000},
			{10_000, 100_000},
			{5, 15},
		},
	},
	{
		class: ClassLow,
		bounds: [NumFeatures][2]float64{
			{10_000, 100_000},
			{1, 5},
			{1_000_000, 10_000_000},
			{0, 10_000},
			{-5, 5},
		},
	},
}

// Generator produces labeled synthetic startup samples from an explicit
// seeded source, so runs are reproducible byte for byte.
type Generator struct {
	seed uint64
}

// NewGenerator creates a generator for the given seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{seed: seed}
}

// Generate draws n/3 samples per tier, concatenates them and shuffles the
// result so training sees no block structure. It returns the feature matrix
// and the class label of each row.
func (g *Generator) Generate(n int) (*mat.Dense, []int, error) {
	perTier := n / 3
	if perTier < 1 {
		return nil, nil, errors.NewValueError("Generator.Generate", "need at least 3 samples")
	}
	total := perTier * len(tiers)

	rng := rand.New(rand.NewPCG(g.seed, g.seed))

	X := mat.NewDense(total, NumFeatures, nil)
	y := make([]int, total)

	row := 0
	for _, tier := range tiers {
		for i := 0; i < perTier; i++ {
			for j, b := range tier.bounds {
				X.Set(row, j, b[0]+rng.Float64()*(b[1]-b[0]))
			}
			y[row] = tier.class
			row++
		}
	}

	// Seeded Fisher-Yates over rows and labels together.
	for i := total - 1; i > 0; i-- {
		k := rng.IntN(i + 1)
		if k == i {
			continue
		}
		for j := 0; j < NumFeatures; j++ {
			vi, vk := X.At(i, j), X.At(k, j)
			X.Set(i, j, vk)
			X.Set(k, j, vi)
		}
		y[i], y[k] = y[k], y[i]
	}

	return X, y, nil
}
