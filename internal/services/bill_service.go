package services

import (
	"context"
	"fmt"

	"bills/internal/core"
	applog "bills/internal/log"
	"bills/internal/metrics"
	"bills/internal/store"
)

// BillService validates input, runs store operations and records their
// outcome in logs and metrics.
type BillService struct {
	store   store.Store
	metrics *metrics.Metrics
	logger  *applog.Logger
}

func NewBillService(s store.Store, m *metrics.Metrics, logger *applog.Logger) *BillService {
	if m == nil {
		m = metrics.New()
	}
	if logger == nil {
		logger = applog.Discard()
	}
	return &BillService{
		store:   s,
		metrics: m,
		logger:  logger.WithComponent(applog.ComponentService),
	}
}

// AddBill validates and stores the bill, replacing any bill with the same name.
func (s *BillService) AddBill(ctx context.Context, b core.Bill) error {
	fields := applog.NewFields().WithBill(b.Name, b.Amount)
	if err := b.Validate(); err != nil {
		return s.fail(ctx, applog.OpAdd, applog.ErrorTypeValidation, err, fields)
	}
	if err := s.store.Add(ctx, b); err != nil {
		return s.fail(ctx, applog.OpAdd, applog.ErrorTypeDatabase, err, fields)
	}

	s.done(ctx, applog.OpAdd, applog.OutcomeOK, fields)
	return nil
}

func (s *BillService) ListBills(ctx context.Context) ([]core.Bill, error) {
	bills, err := s.store.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, applog.OpList, applog.ErrorTypeDatabase, err, applog.NewFields())
	}
	s.metrics.ObserveOperation(applog.OpList, applog.OutcomeOK)
	s.logger.DebugContext(ctx, "Bills listed", applog.FieldCount, len(bills))
	return bills, nil
}

// RemoveBill reports whether a bill with that name existed.
func (s *BillService) RemoveBill(ctx context.Context, name string) (bool, error) {
	fields := applog.NewFields().WithBillName(name)
	ok, err := s.store.Remove(ctx, name)
	if err != nil {
		return false, s.fail(ctx, applog.OpRemove, applog.ErrorTypeDatabase, err, fields)
	}
	s.done(ctx, applog.OpRemove, outcome(ok), fields)
	return ok, nil
}

// UpdateBill reports whether a bill with that name existed and was changed.
// A non-finite amount is rejected before the store is touched.
func (s *BillService) UpdateBill(ctx context.Context, name string, amount float64) (bool, error) {
	fields := applog.NewFields().WithBill(name, amount)
	if !core.IsFinite(amount) {
		return false, s.fail(ctx, applog.OpUpdate, applog.ErrorTypeValidation, core.ErrInvalidAmount, fields)
	}
	ok, err := s.store.Update(ctx, name, amount)
	if err != nil {
		return false, s.fail(ctx, applog.OpUpdate, applog.ErrorTypeDatabase, err, fields)
	}
	s.done(ctx, applog.OpUpdate, outcome(ok), fields)
	return ok, nil
}

func (s *BillService) done(ctx context.Context, op, result string, fields applog.LogFields) {
	s.metrics.ObserveOperation(op, result)
	s.refreshStored(ctx)
	s.logger.WithFields(fields.WithOperation(op).WithOutcome(result)).
		InfoContext(ctx, "Bill operation completed")
}

func (s *BillService) fail(ctx context.Context, op, errType string, err error, fields applog.LogFields) error {
	s.metrics.ObserveOperation(op, applog.OutcomeFailed)
	s.logger.WithFields(fields.WithOperation(op).WithOutcome(applog.OutcomeFailed)).
		ErrorTyped(ctx, errType, "Bill operation failed", err)
	return fmt.Errorf("%s bill: %w", op, err)
}

func (s *BillService) refreshStored(ctx context.Context) {
	n, err := s.store.Len(ctx)
	if err != nil {
		s.logger.WithFields(applog.NewFields().WithError(err)).WarnContext(ctx, "Failed to count bills")
		return
	}
	s.metrics.SetStored(n)
}

func outcome(found bool) string {
	if found {
		return applog.OutcomeOK
	}
	return applog.OutcomeNotFound
}
