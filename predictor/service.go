package predictor

import (
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/launchlens/launchlens/dataset"
	"github.com/launchlens/launchlens/ensemble"
	"github.com/launchlens/launchlens/pkg/errors"
	"github.com/launchlens/launchlens/pkg/log"
	"github.com/launchlens/launchlens/preprocessing"
)

// Forest hyperparameters. The corpus tiers are wide apart, so a moderate
// ensemble is already stable; these match the reference configuration.
const (
	numTrees     = 100
	treeMaxDepth = 10

	// DefaultSeed makes predictions reproducible across runs.
	DefaultSeed = 42
)

// Service owns the fitted scaler and classifier and turns a FeatureRecord
// into a PredictionResult. Construct one per process and share it: training
// happens once (either via an explicit Train call or lazily on the first
// Predict), and the fitted state is read-only afterward, so concurrent
// Predict calls are safe.
type Service struct {
	seed         uint64
	trainingSize int
	logger       zerolog.Logger

	mu      sync.Mutex
	trained bool
	scaler  *preprocessing.StandardScaler
	forest  *ensemble.RandomForestClassifier
}

// NewService creates an untrained prediction service.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		seed:         DefaultSeed,
		trainingSize: dataset.DefaultSize,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Train generates the synthetic corpus, fits the scaler and the forest, and
// marks the service ready. Calling Train again is a no-op.
func (s *Service) Train() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trainLocked()
}

func (s *Service) trainLocked() error {
	if s.trained {
		return nil
	}

	start := time.Now()

	X, y, err := dataset.NewGenerator(s.seed).Generate(s.trainingSize)
	if err != nil {
		return errors.Wrap(err, "generating training corpus")
	}
	r, c := X.Dims()

	scaler := preprocessing.NewStandardScaler()
	XScaled, err := scaler.FitTransform(X)
	if err != nil {
		return errors.Wrap(err, "fitting scaler")
	}

	yCol := mat.NewDense(len(y), 1, nil)
	for i, label := range y {
		yCol.Set(i, 0, float64(label))
	}

	forest := ensemble.NewRandomForestClassifier(
		ensemble.WithNEstimators(numTrees),
		ensemble.WithMaxDepth(treeMaxDepth),
		ensemble.WithSeed(s.seed),
	)
	if err := forest.Fit(XScaled, yCol); err != nil {
		return errors.Wrap(err, "training forest")
	}

	s.scaler = scaler
	s.forest = forest
	s.trained = true

	s.logger.Info().
		Str(log.ModelNameKey, "RandomForestClassifier").
		Str(log.OperationKey, "fit").
		Int(log.SamplesKey, r).
		Int(log.FeaturesKey, c).
		Uint64(log.SeedKey, s.seed).
		Int64(log.DurationMSKey, time.Since(start).Milliseconds()).
		Msg("prediction model trained")

	return nil
}

// ensureTrained trains lazily on first use. The guard makes initialization
// single-writer; once trained, callers read fitted state without the lock.
func (s *Service) ensureTrained() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.trained {
		return nil
	}
	return s.trainLocked()
}

// Predict scores one feature record. The record is assumed to have passed
// the caller's range validation.
func (s *Service) Predict(rec FeatureRecord) (PredictionResult, error) {
	if err := s.ensureTrained(); err != nil {
		return PredictionResult{}, err
	}

	scaled, err := s.scaler.TransformVector(rec.Vector())
	if err != nil {
		return PredictionResult{}, errors.Wrap(err, "scaling features")
	}

	proba, err := s.forest.PredictProbaVector(scaled)
	if err != nil {
		return PredictionResult{}, errors.Wrap(err, "classifying features")
	}

	pLow, pMod, pHigh := proba[dataset.ClassLow], proba[dataset.ClassModerate], proba[dataset.ClassHigh]

	// Success score is the probability-weighted blend of tier midpoints.
	score := pLow*0 + pMod*50 + pHigh*100
	confidence := 100 * math.Max(pLow, math.Max(pMod, pHigh))
	label := Label(ensemble.Argmax(proba))

	result := PredictionResult{
		SuccessScore: round2(score),
		Label:        label,
		Confidence:   round2(confidence),
		Probabilities: Probabilities{
			Low:      round2(pLow * 100),
			Moderate: round2(pMod * 100),
			High:     round2(pHigh * 100),
		},
	}

	s.logger.Debug().
		Str(log.ModelNameKey, "RandomForestClassifier").
		Str(log.OperationKey, "predict").
		Float64("success_score", result.SuccessScore).
		Stringer("label", result.Label).
		Msg("prediction served")

	return result, nil
}

// FeatureImportance returns each feature's share of the model's decisions
// as percentages summing to 100, keyed by display name. A model without
// importances reports an equal 20% per feature.
func (s *Service) FeatureImportance() (map[string]float64, error) {
	if err := s.ensureTrained(); err != nil {
		return nil, err
	}

	imp, err := s.forest.FeatureImportances()
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, v := range imp {
		total += v
	}

	result := make(map[string]float64, len(FeatureNames))
	if total == 0 {
		for _, name := range FeatureNames {
			result[name] = 100.0 / float64(len(FeatureNames))
		}
		return result, nil
	}
	for j, name := range FeatureNames {
		result[name] = imp[j] / total * 100
	}
	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
