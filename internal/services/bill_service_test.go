package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"reflect"
	"strings"
	"testing"

	"bills/internal/core"
	applog "bills/internal/log"
	"bills/internal/metrics"
	"bills/internal/store/memory"
)

var errDriver = errors.New("driver failure")

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Add(context.Context, core.Bill) error { return errDriver }
func (brokenStore) List(context.Context) ([]core.Bill, error) {
	return nil, errDriver
}
func (brokenStore) Remove(context.Context, string) (bool, error) { return false, errDriver }
func (brokenStore) Update(context.Context, string, float64) (bool, error) {
	return false, errDriver
}
func (brokenStore) Len(context.Context) (int, error) { return 0, errDriver }

func counts(t *testing.T, m *metrics.Metrics) map[string]float64 {
	t.Helper()
	snap, err := m.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	out := make(map[string]float64, len(snap))
	for _, oc := range snap {
		out[oc.Operation+"/"+oc.Outcome] = oc.Count
	}
	return out
}

func mustFound(t *testing.T, ok bool, err error, want bool) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok != want {
		t.Fatalf("found = %v, want %v", ok, want)
	}
}

func TestNewBillServiceDefaults(t *testing.T) {
	svc := NewBillService(memory.New(), nil, nil)
	if svc == nil || svc.metrics == nil || svc.logger == nil {
		t.Fatalf("NewBillService left defaults unset: %+v", svc)
	}
}

func TestBillService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	m := metrics.New()
	svc := NewBillService(memory.New(), m, nil)

	for _, b := range []core.Bill{{Name: "Internet", Amount: 60}, {Name: "Rent", Amount: 900}} {
		if err := svc.AddBill(ctx, b); err != nil {
			t.Fatalf("AddBill(%v) error = %v", b, err)
		}
	}

	ok, err := svc.UpdateBill(ctx, "Rent", 950)
	mustFound(t, ok, err, true)
	ok, err = svc.UpdateBill(ctx, "Gym", 40)
	mustFound(t, ok, err, false)
	ok, err = svc.RemoveBill(ctx, "Internet")
	mustFound(t, ok, err, true)
	ok, err = svc.RemoveBill(ctx, "Internet")
	mustFound(t, ok, err, false)

	bills, err := svc.ListBills(ctx)
	if err != nil {
		t.Fatalf("ListBills() error = %v", err)
	}
	if want := []core.Bill{{Name: "Rent", Amount: 950}}; !reflect.DeepEqual(bills, want) {
		t.Errorf("ListBills() = %v, want %v", bills, want)
	}

	want := map[string]float64{
		"add/ok":           2,
		"list/ok":          1,
		"remove/not_found": 1,
		"remove/ok":        1,
		"update/not_found": 1,
		"update/ok":        1,
	}
	if got := counts(t, m); !reflect.DeepEqual(got, want) {
		t.Errorf("counts = %v, want %v", got, want)
	}
}

func TestBillService_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		call    func(ctx context.Context, svc *BillService) error
		op      string
		wantErr error
	}{
		{
			name:    "empty name",
			call:    func(ctx context.Context, svc *BillService) error { return svc.AddBill(ctx, core.Bill{Name: " ", Amount: 1}) },
			op:      applog.OpAdd,
			wantErr: core.ErrEmptyName,
		},
		{
			name:    "NaN on add",
			call:    func(ctx context.Context, svc *BillService) error { return svc.AddBill(ctx, core.Bill{Name: "Gym", Amount: math.NaN()}) },
			op:      applog.OpAdd,
			wantErr: core.ErrInvalidAmount,
		},
		{
			name: "infinity on update",
			call: func(ctx context.Context, svc *BillService) error {
				_, err := svc.UpdateBill(ctx, "Rent", math.Inf(1))
				return err
			},
			op:      applog.OpUpdate,
			wantErr: core.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			m := metrics.New()
			s := memory.NewWithBills(core.Bill{Name: "Rent", Amount: 900})
			var buf bytes.Buffer
			logger := applog.New(applog.Config{Level: slog.LevelInfo, Format: applog.FormatText, Writer: &buf})
			svc := NewBillService(s, m, logger)

			err := tt.call(ctx, svc)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}

			bills, _ := s.List(ctx)
			if want := []core.Bill{{Name: "Rent", Amount: 900}}; !reflect.DeepEqual(bills, want) {
				t.Errorf("store changed to %v", bills)
			}
			if got := counts(t, m)[tt.op+"/failed"]; got != 1 {
				t.Errorf("%s/failed = %v, want 1", tt.op, got)
			}

			for _, want := range []string{
				"level=ERROR",
				applog.FieldComponent + "=" + applog.ComponentService,
				applog.FieldOperation + "=" + tt.op,
				applog.FieldOutcome + "=" + applog.OutcomeFailed,
				applog.FieldErrorType + "=" + applog.ErrorTypeValidation,
			} {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("log %q missing %q", buf.String(), want)
				}
			}
		})
	}
}

func TestBillService_WrapsStoreErrors(t *testing.T) {
	ctx := context.Background()
	m := metrics.New()
	svc := NewBillService(brokenStore{}, m, nil)

	if err := svc.AddBill(ctx, core.Bill{Name: "Rent", Amount: 1}); !errors.Is(err, errDriver) {
		t.Errorf("AddBill error = %v, want %v", err, errDriver)
	}
	if _, err := svc.ListBills(ctx); !errors.Is(err, errDriver) {
		t.Errorf("ListBills error = %v, want %v", err, errDriver)
	}
	if ok, err := svc.RemoveBill(ctx, "Rent"); ok || !errors.Is(err, errDriver) {
		t.Errorf("RemoveBill = %v, %v; want false, %v", ok, err, errDriver)
	}
	if ok, err := svc.UpdateBill(ctx, "Rent", 2); ok || !errors.Is(err, errDriver) {
		t.Errorf("UpdateBill = %v, %v; want false, %v", ok, err, errDriver)
	}

	got := counts(t, m)
	for _, op := range []string{"add", "list", "remove", "update"} {
		if got[op+"/failed"] != 1 {
			t.Errorf("%s/failed = %v, want 1", op, got[op+"/failed"])
		}
	}
}
