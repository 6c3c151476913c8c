package memory

import (
	"context"
	"reflect"
	"testing"

	"bills/internal/core"
	"bills/internal/store"
	"bills/internal/store/storetest"
)

func TestMemoryStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store { return New() })
}

func TestNewWithBillsSeedsAndDedupes(t *testing.T) {
	s := NewWithBills(
		core.Bill{Name: "Internet", Amount: 60},
		core.Bill{Name: "Rent", Amount: 800},
		core.Bill{Name: "Internet", Amount: 65},
	)
	got, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []core.Bill{{Name: "Internet", Amount: 65}, {Name: "Rent", Amount: 800}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}
