package usecase_test

import (
	"github.com/innovshop/marketplace/internal/usecase"

	"context"
	"sync"
	"testing"

	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/pkg/lock"
	testhelpers "github.com/innovshop/marketplace/internal/test"
)

func TestCreateLotsOnePerSellerGroup(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	orders.GetByIDFn = func(ctx context.Context, id int64) (*model.Order, error) {
		return &model.Order{
			ID:        1,
			Reference: "ORD-2025-00010",
			Items: []model.OrderItem{
				itemFor(1, int64Ptr(3), "10.00"),
				itemFor(2, int64Ptr(3), "5.00"),
				itemFor(3, int64Ptr(9), "2.00"),
				itemFor(4, nil, "1.00"),
			},
		}, nil
	}
	lots := &testhelpers.LotRepositoryStub{}

	created, err := usecase.NewLotUseCase(orders, lots, lock.NewKeyed(), testhelpers.DiscardLogger()).CreateLots(context.Background(), 1)
	if err != nil {
		t.Fatalf("create lots returned error: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("expected 3 lots, got %d", len(created))
	}
	for _, lot := range created {
		if lot.Status != model.LotStatusConfirmed {
			t.Fatalf("lot %d created in status %q", lot.ID, lot.Status)
		}
		if lot.OrderID != 1 {
			t.Fatalf("lot %d bound to order %d", lot.ID, lot.OrderID)
		}
	}
	if created[0].SellerID == nil || *created[0].SellerID != 3 {
		t.Fatalf("first lot should belong to seller 3")
	}
	if created[2].SellerID != nil {
		t.Fatalf("platform lot must have no seller")
	}
}

func TestCreateLotsIdempotent(t *testing.T) {
	lots := &testhelpers.LotRepositoryStub{
		Lots: []model.SellerLot{{ID: 8, OrderID: 2, Status: model.LotStatusShipped}},
	}
	orders := &testhelpers.OrderRepositoryStub{}
	orders.GetByIDFn = func(ctx context.Context, id int64) (*model.Order, error) {
		t.Fatalf("order must not be reloaded when lots exist")
		return nil, nil
	}

	created, err := usecase.NewLotUseCase(orders, lots, lock.NewKeyed(), testhelpers.DiscardLogger()).CreateLots(context.Background(), 2)
	if err != nil {
		t.Fatalf("create lots returned error: %v", err)
	}
	if len(created) != 1 || created[0].ID != 8 {
		t.Fatalf("expected the existing lot back, got %+v", created)
	}
	if len(lots.Lots) != 1 {
		t.Fatalf("no new lots may be created, have %d", len(lots.Lots))
	}
}

func TestCreateLotsConcurrentCallsCreateOnce(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	orders.GetByIDFn = func(ctx context.Context, id int64) (*model.Order, error) {
		return &model.Order{
			ID:        5,
			Reference: "ORD-2025-00050",
			Items: []model.OrderItem{
				itemFor(1, int64Ptr(3), "10.00"),
				itemFor(2, nil, "4.00"),
			},
		}, nil
	}
	lots := &testhelpers.LotRepositoryStub{}
	uc := usecase.NewLotUseCase(orders, lots, lock.NewKeyed(), testhelpers.DiscardLogger())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := uc.CreateLots(context.Background(), 5)
			if err != nil {
				t.Errorf("create lots returned error: %v", err)
			}
			if len(got) != 2 {
				t.Errorf("expected 2 lots per call, got %d", len(got))
			}
		}()
	}
	wg.Wait()

	if len(lots.Lots) != 2 {
		t.Fatalf("concurrent calls created %d lots, want 2", len(lots.Lots))
	}
}
