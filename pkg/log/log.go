// Package log configures zerolog for launchlens and defines the standard
// attribute keys used for structured logging of model operations. Using the
// same keys everywhere keeps training and inference logs filterable.
package log

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Standard attribute keys for model and operation context.
const (
	// ModelNameKey identifies the model type, e.g. "RandomForestClassifier".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed.
	// Standard values: "fit", "predict", "transform", "generate".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation,
	// e.g. "ensemble", "preprocessing", "dataset".
	ComponentKey = "ml.component"

	// SamplesKey is the number of samples (rows) being processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) being processed.
	FeaturesKey = "data.features"

	// SeedKey is the random seed used for a deterministic operation.
	SeedKey = "ml.seed"

	// DurationMSKey is the elapsed wall time of an operation in milliseconds.
	DurationMSKey = "duration.ms"
)

// Setup returns a zerolog.Logger configured with the given level and format.
// Format "console" writes human-readable output; anything else writes JSON.
// Unknown levels fall back to info.
func Setup(level, format string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var logger zerolog.Logger
	if format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	return logger.Level(ToLevel(level))
}

// ToLevel converts a level string to a zerolog level, defaulting to info.
func ToLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Nop returns a disabled logger for callers that do not want log output,
// such as tests and library consumers that inject their own logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
