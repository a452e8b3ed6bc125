package main

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"github.com/wendi-lab/ecommerce-brazil-by-wendi/dashboard"
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/datasource"
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/filters"
	"github.com/wendi-lab/ecommerce-brazil-by-wendi/schema"
)

var log = logging.MustGetLogger("log")

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Brazil e-commerce order analytics",
	Long:  "Loads the order dataset, derives the configured filtered view and prints every rollup, ranking and segment summary the dashboard renders.",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.json", "config file path")
}

// InitLogger receives the log level to be set in go-logging as a string.
// If the level string is not valid an error is returned.
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	config, err := InitConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := InitLogger(config.LogLevel); err != nil {
		return err
	}

	log.Debugf("Config: %+v", config)

	raw, notice := datasource.LoadWithFallback(datasource.Source{
		URL:  config.DataURL,
		Path: config.DataPath,
	})

	table, err := schema.Normalize(raw)
	if err != nil {
		return err
	}

	session := dashboard.NewSession(table, dashboard.Options{
		CorrelationMinOrders: config.CorrelationMinOrders,
		RankingMinOrders:     config.RankingMinOrders,
		RankSize:             config.RankSize,
		MemoizeAggregations:  config.MemoizeAggregations,
	})

	snapshot := session.Run(filterSpec(config))
	if notice != "" {
		snapshot.Notices = append(snapshot.Notices, notice)
	}

	printSnapshot(snapshot)
	return nil
}

func filterSpec(config *Config) filters.Spec {
	spec := filters.Spec{
		Year:        filters.AnyYear(),
		State:       filters.Any(),
		Category:    filters.Any(),
		TimePeriods: config.TimePeriods,
	}
	if config.Year != 0 {
		spec.Year = filters.Year(config.Year)
	}
	if config.State != "" {
		spec.State = filters.Exact(config.State)
	}
	if config.Category != "" {
		spec.Category = filters.Exact(config.Category)
	}
	return spec
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
