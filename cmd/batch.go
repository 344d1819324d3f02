package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/billpay/app"
	"github.com/kilianp07/billpay/core/report"
	"github.com/kilianp07/billpay/infra/metrics"
	"github.com/kilianp07/billpay/pkg/export"
)

var metricsAddr string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Check every request listed in the configuration file",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address until interrupted")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cfg, err := newService()
	if err != nil {
		return err
	}
	if len(cfg.Requests) == 0 {
		return fmt.Errorf("no requests in configuration")
	}
	errCh := make(chan error, 1)
	if metricsAddr != "" {
		go func() { errCh <- metrics.StartPromServer(ctx, metricsAddr) }()
	}

	receipts, rep, err := svc.PayBatch(ctx, cfg.Requests)
	if perr := printBatch(cmd, receipts, rep); perr != nil {
		return perr
	}
	if err != nil {
		return err
	}
	if metricsAddr == "" {
		return nil
	}
	return <-errCh
}

func printBatch(cmd *cobra.Command, receipts []app.Receipt, rep report.Report) error {
	out := cmd.OutOrStdout()
	switch output {
	case outputJSON:
		return export.WriteJSON(out, receipts)
	case outputCSV:
		return export.WriteCSV(out, receipts)
	}
	for _, r := range receipts {
		if _, err := fmt.Fprintln(out, r.Message); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "%d/%d paid, shortfall %.0f, mean coverage %.2f\n",
		rep.Paid, rep.Total, rep.TotalShortfall, rep.MeanCoverage)
	return err
}

