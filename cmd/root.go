package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kilianp07/billpay/app"
	"github.com/kilianp07/billpay/config"
	"github.com/kilianp07/billpay/infra/logger"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputCSV  = "csv"
)

var (
	cfgPath string
	output  string
)

var rootCmd = &cobra.Command{
	Use:          "billpay",
	Short:        "Check whether bills can be paid",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", outputText, "output format: text, json or csv")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newService() (*app.Service, *config.Config, error) {
	switch output {
	case outputText, outputJSON, outputCSV:
	default:
		return nil, nil, fmt.Errorf("unknown output format %q", output)
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, nil, err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
