package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/billpay/app"
	"github.com/kilianp07/billpay/core/model"
	"github.com/kilianp07/billpay/pkg/export"
)

var payReq model.PaymentRequest

var payCmd = &cobra.Command{
	Use:   "pay",
	Short: "Check a single bill",
	RunE:  runPay,
}

func init() {
	payCmd.Flags().StringVar(&payReq.Category, "category", "", "bill category (e.g. Mobile, Internet)")
	payCmd.Flags().IntVar(&payReq.AmountAvailable, "available", 0, "money available")
	payCmd.Flags().IntVar(&payReq.AmountOwed, "owed", 0, "amount owed on the bill")
	_ = payCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(payCmd)
}

func runPay(cmd *cobra.Command, args []string) error {
	svc, _, err := newService()
	if err != nil {
		return err
	}
	rcpt, err := svc.Pay(cmd.Context(), payReq)
	if err != nil {
		return err
	}
	switch output {
	case outputJSON:
		return printJSON(cmd.OutOrStdout(), rcpt)
	case outputCSV:
		return export.WriteCSV(cmd.OutOrStdout(), []app.Receipt{rcpt})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), rcpt.Message)
	return err
}
