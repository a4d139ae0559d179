// Command launchlens predicts a startup's success potential from five
// business metrics and renders the analysis as a report or export file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/launchlens/launchlens/advisory"
	"github.com/launchlens/launchlens/analytics"
	"github.com/launchlens/launchlens/export"
	"github.com/launchlens/launchlens/internal/config"
	"github.com/launchlens/launchlens/pkg/log"
	"github.com/launchlens/launchlens/predictor"
	"github.com/launchlens/launchlens/validate"
)

var args struct {
	configPath string
	funding    float64
	teamSize   float64
	marketSize float64
	revenue    float64
	growthRate float64
	format     string
	out        string
}

var rootCmd = &cobra.Command{
	Use:   "launchlens",
	Short: "Estimate a startup's success potential from five business metrics",
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict success potential and print the analysis report",
	RunE:  runPredict,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Predict success potential and write the result to a file",
	RunE:  runExport,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&args.configPath, "config", "", "path to config file (optional)")
	pf.Float64Var(&args.funding, "funding", 0, "total funding in dollars")
	pf.Float64Var(&args.teamSize, "team-size", 0, "number of team members")
	pf.Float64Var(&args.marketSize, "market-size", 0, "total addressable market in dollars")
	pf.Float64Var(&args.revenue, "revenue", 0, "monthly revenue in dollars")
	pf.Float64Var(&args.growthRate, "growth-rate", 0, "monthly growth rate in percent")

	exportCmd.Flags().StringVar(&args.format, "format", "json", "export format: csv, json or report")
	exportCmd.Flags().StringVar(&args.out, "out", "", "output file path (default stdout)")

	rootCmd.AddCommand(predictCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveRecord merges flag values over config defaults and validates the
// result. Validation failures are surfaced verbatim.
func resolveRecord(cmd *cobra.Command, cfg *config.Config) (predictor.FeatureRecord, error) {
	rec := predictor.FeatureRecord{
		Funding:    cfg.Defaults.Funding,
		TeamSize:   cfg.Defaults.TeamSize,
		MarketSize: cfg.Defaults.MarketSize,
		Revenue:    cfg.Defaults.Revenue,
		GrowthRate: cfg.Defaults.GrowthRate,
	}

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("funding") {
		rec.Funding = args.funding
	}
	if flags.Changed("team-size") {
		rec.TeamSize = args.teamSize
	}
	if flags.Changed("market-size") {
		rec.MarketSize = args.marketSize
	}
	if flags.Changed("revenue") {
		rec.Revenue = args.revenue
	}
	if flags.Changed("growth-rate") {
		rec.GrowthRate = args.growthRate
	}

	if err := validate.Metrics(rec.Funding, rec.TeamSize, rec.MarketSize, rec.Revenue, rec.GrowthRate); err != nil {
		return predictor.FeatureRecord{}, err
	}
	return rec, nil
}

// analyze loads config, trains the service and produces the full analysis
// for the resolved record.
func analyze(cmd *cobra.Command) (predictor.FeatureRecord, predictor.PredictionResult, analytics.InsightBundle, error) {
	var zero predictor.FeatureRecord

	cfg, err := config.Load(args.configPath)
	if err != nil {
		return zero, predictor.PredictionResult{}, analytics.InsightBundle{}, err
	}

	logger := log.Setup(cfg.Logging.Level, cfg.Logging.Format)

	rec, err := resolveRecord(cmd, cfg)
	if err != nil {
		return zero, predictor.PredictionResult{}, analytics.InsightBundle{}, err
	}

	svc := predictor.NewService(
		predictor.WithSeed(cfg.Model.Seed),
		predictor.WithTrainingSize(cfg.Model.TrainingSize),
		predictor.WithLogger(logger),
	)
	if err := svc.Train(); err != nil {
		return zero, predictor.PredictionResult{}, analytics.InsightBundle{}, err
	}

	result, err := svc.Predict(rec)
	if err != nil {
		return zero, predictor.PredictionResult{}, analytics.InsightBundle{}, err
	}

	bundle := analytics.GenerateInsights(rec, result.Label, result.SuccessScore)
	return rec, result, bundle, nil
}

func runPredict(cmd *cobra.Command, _ []string) error {
	rec, result, bundle, err := analyze(cmd)
	if err != nil {
		return err
	}

	fmt.Println(export.Report(rec, result, &bundle, time.Now()))

	fmt.Println("\nSUGGESTIONS:")
	for _, s := range advisory.Suggestions(result.Label, rec) {
		fmt.Printf("  - %s\n", s)
	}

	runway := analytics.CalculateRunway(rec)
	if runway.Indefinite {
		fmt.Printf("\nRunway: indefinite (cash flow positive, net +%s/month)\n",
			export.FormatCurrency(runway.MonthlyNet))
	} else {
		fmt.Printf("\nRunway: %.1f months (%s, burn %s/month)\n",
			runway.Months, runway.Status, export.FormatCurrency(runway.MonthlyBurn))
	}
	return nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	rec, result, bundle, err := analyze(cmd)
	if err != nil {
		return err
	}

	var content string
	switch args.format {
	case "csv":
		content, err = export.CSV(rec, result, time.Now())
	case "json":
		content, err = export.JSON(rec, result, &bundle, time.Now())
	case "report":
		content = export.Report(rec, result, &bundle, time.Now())
	default:
		return fmt.Errorf("unknown export format %q (want csv, json or report)", args.format)
	}
	if err != nil {
		return err
	}

	if args.out == "" {
		fmt.Println(content)
		return nil
	}
	return os.WriteFile(args.out, []byte(content), 0o644)
}
