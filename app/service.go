package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/kilianp07/billpay/config"
	"github.com/kilianp07/billpay/core/billing"
	"github.com/kilianp07/billpay/core/format"
	coremetrics "github.com/kilianp07/billpay/core/metrics"
	"github.com/kilianp07/billpay/core/model"
	"github.com/kilianp07/billpay/core/report"
	"github.com/kilianp07/billpay/infra/logger"
	_ "github.com/kilianp07/billpay/infra/metrics"
)

// Receipt is the result of one payment check.
type Receipt struct {
	ID       string           `json:"id"`
	Category string           `json:"category"`
	Paid     bool             `json:"paid"`
	Message  string           `json:"message"`
	Record   model.BillRecord `json:"record"`
	Time     time.Time        `json:"time"`
}

// Outcome returns the structured category/paid pair of the receipt.
func (r Receipt) Outcome() model.Outcome {
	return model.Outcome{Category: r.Category, Paid: r.Paid}
}

// Service checks bill payments and records the results.
type Service struct {
	factory  *billing.Factory
	sink     coremetrics.MetricsSink
	log      logger.Logger
	validate *validator.Validate
	now      func() time.Time
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	f, err := billing.NewFactoryFromConfig(cfg.Billing)
	if err != nil {
		return nil, fmt.Errorf("bill factory: %w", err)
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	return NewService(f, sink, logger.New("service")), nil
}

// NewService wires a Service from its parts. Nil sink and logger are
// replaced by no-op implementations.
func NewService(f *billing.Factory, sink coremetrics.MetricsSink, log logger.Logger) *Service {
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Service{
		factory:  f,
		sink:     sink,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Categories lists the bill categories the service accepts.
func (s *Service) Categories() []string {
	return s.factory.Categories()
}

// Pay checks a single request. An unknown category is returned as an error
// wrapping billing.ErrUnknownCategory.
func (s *Service) Pay(ctx context.Context, req model.PaymentRequest) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	if err := s.validate.Struct(req); err != nil {
		return Receipt{}, fmt.Errorf("invalid request: %w", err)
	}
	b, err := s.factory.ProcessBill(req.Category, req.Record())
	if err != nil {
		s.log.Warnf("process bill: %v", err)
		return Receipt{}, err
	}
	rcpt := Receipt{
		ID:       uuid.NewString(),
		Category: b.Category(),
		Paid:     b.IsPaid(),
		Message:  format.Message(b),
		Record:   req.Record(),
		Time:     s.now(),
	}
	s.log.Infow("bill evaluated", map[string]any{
		"receipt_id": rcpt.ID,
		"category":   rcpt.Category,
		"paid":       rcpt.Paid,
	})
	if err := s.sink.RecordEvaluation([]coremetrics.Evaluation{evaluation(rcpt)}); err != nil {
		s.log.Errorf("record evaluation: %v", err)
	}
	return rcpt, nil
}

// PayBatch checks requests in order and stops at the first failure. The
// receipts produced before the failure are returned with the error.
func (s *Service) PayBatch(ctx context.Context, reqs []model.PaymentRequest) ([]Receipt, report.Report, error) {
	receipts := make([]Receipt, 0, len(reqs))
	for i, req := range reqs {
		rcpt, err := s.Pay(ctx, req)
		if err != nil {
			return receipts, summarize(receipts), fmt.Errorf("request %d: %w", i, err)
		}
		receipts = append(receipts, rcpt)
	}
	rep := summarize(receipts)
	s.log.Debugw("batch done", map[string]any{"total": rep.Total, "paid": rep.Paid})
	return receipts, rep, nil
}

func summarize(receipts []Receipt) report.Report {
	lines := make([]report.Line, len(receipts))
	for i, r := range receipts {
		lines[i] = report.Line{Category: r.Category, Record: r.Record, Paid: r.Paid}
	}
	return report.Summarize(lines)
}

func evaluation(r Receipt) coremetrics.Evaluation {
	return coremetrics.Evaluation{
		ReceiptID: r.ID,
		Category:  r.Category,
		Record:    r.Record,
		Paid:      r.Paid,
		Time:      r.Time,
	}
}
