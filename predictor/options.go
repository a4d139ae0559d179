package predictor

import "github.com/rs/zerolog"

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithSeed sets the seed used for corpus generation and forest training.
func WithSeed(seed uint64) ServiceOption {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithTrainingSize sets the nominal synthetic corpus size.
func WithTrainingSize(n int) ServiceOption {
	return func(s *Service) {
		s.trainingSize = n
	}
}

// WithLogger sets the logger used for training and prediction events.
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}
