package usecase_test

import (
	"github.com/innovshop/marketplace/internal/usecase"

	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/pkg/lock"
	testhelpers "github.com/innovshop/marketplace/internal/test"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func itemFor(id int64, sellerID *int64, total string) model.OrderItem {
	return model.OrderItem{
		ID:        id,
		SellerID:  sellerID,
		UnitPrice: decimal.RequireFromString(total),
		Quantity:  1,
		TotalLine: decimal.RequireFromString(total),
	}
}

func newSplitter(orders *testhelpers.OrderRepositoryStub) *usecase.SplitterUseCase {
	return usecase.NewSplitterUseCase(orders, lock.NewKeyed(), testhelpers.DiscardLogger())
}

func TestSplitBySellerSingleSellerUnchanged(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	orders := &testhelpers.OrderRepositoryStub{}
	orders.Created = append(orders.Created, &model.Order{
		ID:        1,
		Reference: "ORD-2025-AAA",
		CreatedAt: created,
		Items: []model.OrderItem{
			itemFor(1, int64Ptr(7), "20.00"),
			itemFor(2, int64Ptr(7), "15.00"),
		},
	})

	result, err := newSplitter(orders).SplitBySeller(context.Background(), 1)
	if err != nil {
		t.Fatalf("split returned error: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected the untouched order back, got %d orders", len(result))
	}
	if result[0].Reference != "ORD-2025-AAA" {
		t.Fatalf("reference changed to %q", result[0].Reference)
	}
	if orders.ReplacedID != 0 {
		t.Fatalf("single-seller order must not be replaced")
	}
}

func TestSplitBySellerEmptyOrderUnchanged(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	orders.Created = append(orders.Created, &model.Order{ID: 3, Reference: "ORD-2025-EMPTY"})

	result, err := newSplitter(orders).SplitBySeller(context.Background(), 3)
	if err != nil {
		t.Fatalf("split returned error: %v", err)
	}
	if len(result) != 1 || result[0].Reference != "ORD-2025-EMPTY" {
		t.Fatalf("expected the empty order back unchanged, got %+v", result)
	}
}

func TestSplitBySellerThreeGroups(t *testing.T) {
	created := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
	original := &model.Order{
		ID:          1,
		UserID:      5,
		Reference:   "ORD-2025-00001",
		Status:      model.OrderStatusConfirmed,
		TotalAmount: decimal.RequireFromString("100.00"),
		Delivery:    model.DeliveryAddress{City: "Paris", Street: "1 rue de Rivoli"},
		CreatedAt:   created,
		Items: []model.OrderItem{
			itemFor(11, int64Ptr(1), "50.00"),
			itemFor(12, int64Ptr(2), "40.00"),
			itemFor(13, nil, "10.00"),
		},
	}
	orders := &testhelpers.OrderRepositoryStub{}
	orders.GetByIDFn = func(ctx context.Context, id int64) (*model.Order, error) { return original, nil }
	orders.ReferenceExistsFn = func(ctx context.Context, ref string) (bool, error) { return false, nil }

	result, err := newSplitter(orders).SplitBySeller(context.Background(), 1)
	if err != nil {
		t.Fatalf("split returned error: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(result))
	}
	if orders.ReplacedID != 1 {
		t.Fatalf("expected original order 1 to be replaced, got %d", orders.ReplacedID)
	}

	wantRefs := []string{"ORD-2025-00001-1", "ORD-2025-00001-2", "ORD-2025-00001-3"}
	wantTotals := []string{"50.00", "40.00", "10.00"}
	total := decimal.Zero
	for i, o := range result {
		if o.Reference != wantRefs[i] {
			t.Fatalf("order %d reference = %q, want %q", i, o.Reference, wantRefs[i])
		}
		if o.TotalAmount.StringFixed(2) != wantTotals[i] {
			t.Fatalf("order %s total = %s, want %s", o.Reference, o.TotalAmount.StringFixed(2), wantTotals[i])
		}
		if !o.CreatedAt.Equal(created) {
			t.Fatalf("order %s did not keep the original creation time", o.Reference)
		}
		if o.UserID != 5 || o.Status != model.OrderStatusConfirmed || o.Delivery.City != "Paris" {
			t.Fatalf("order %s lost non-item fields: %+v", o.Reference, o)
		}
		if len(o.Items) != 1 {
			t.Fatalf("order %s has %d items, want 1", o.Reference, len(o.Items))
		}
		total = total.Add(o.TotalAmount)
	}
	if total.StringFixed(2) != "100.00" {
		t.Fatalf("split totals sum to %s, want 100.00", total.StringFixed(2))
	}

	if result[2].Items[0].SellerID != nil {
		t.Fatalf("third order should hold the platform item")
	}
}

func TestSplitBySellerGroupsMultipleItemsPerSeller(t *testing.T) {
	original := &model.Order{
		ID:        2,
		Reference: "ORD-2025-00002",
		Items: []model.OrderItem{
			itemFor(21, int64Ptr(1), "10.00"),
			itemFor(22, int64Ptr(2), "5.00"),
			itemFor(23, int64Ptr(1), "7.50"),
		},
	}
	orders := &testhelpers.OrderRepositoryStub{}
	orders.GetByIDFn = func(ctx context.Context, id int64) (*model.Order, error) { return original, nil }

	result, err := newSplitter(orders).SplitBySeller(context.Background(), 2)
	if err != nil {
		t.Fatalf("split returned error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(result))
	}
	if len(result[0].Items) != 2 || result[0].TotalAmount.StringFixed(2) != "17.50" {
		t.Fatalf("seller 1 group wrong: %d items, total %s", len(result[0].Items), result[0].TotalAmount.StringFixed(2))
	}
	if len(result[1].Items) != 1 || result[1].TotalAmount.StringFixed(2) != "5.00" {
		t.Fatalf("seller 2 group wrong: %d items, total %s", len(result[1].Items), result[1].TotalAmount.StringFixed(2))
	}
}

func TestSplitBySellerReferenceCollision(t *testing.T) {
	original := &model.Order{
		ID:        4,
		Reference: "ORD-2025-00004",
		Items: []model.OrderItem{
			itemFor(41, int64Ptr(1), "10.00"),
			itemFor(42, int64Ptr(2), "20.00"),
		},
	}
	orders := &testhelpers.OrderRepositoryStub{}
	orders.GetByIDFn = func(ctx context.Context, id int64) (*model.Order, error) { return original, nil }
	orders.ReferenceExistsFn = func(ctx context.Context, ref string) (bool, error) {
		return ref == "ORD-2025-00004-1", nil
	}

	uc := newSplitter(orders)
	fixed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	uc.SetSplitterNow(func() time.Time { return fixed })

	result, err := uc.SplitBySeller(context.Background(), 4)
	if err != nil {
		t.Fatalf("split returned error: %v", err)
	}
	wantRef := fmt.Sprintf("ORD-2025-00004-1-%d", fixed.Unix())
	if result[0].Reference != wantRef {
		t.Fatalf("colliding reference = %q, want %q", result[0].Reference, wantRef)
	}
	if result[1].Reference != "ORD-2025-00004-2" {
		t.Fatalf("non-colliding reference changed: %q", result[1].Reference)
	}
}

func TestSplitBySellerItemsFollowNewOrders(t *testing.T) {
	original := &model.Order{
		ID:        6,
		Reference: "ORD-2025-00006",
		Items: []model.OrderItem{
			itemFor(61, int64Ptr(1), "1.00"),
			itemFor(62, int64Ptr(2), "2.00"),
		},
	}
	orders := &testhelpers.OrderRepositoryStub{}
	orders.GetByIDFn = func(ctx context.Context, id int64) (*model.Order, error) { return original, nil }

	result, err := newSplitter(orders).SplitBySeller(context.Background(), 6)
	if err != nil {
		t.Fatalf("split returned error: %v", err)
	}
	for _, o := range result {
		for _, item := range o.Items {
			if item.OrderID != o.ID {
				t.Fatalf("item %d still points at order %d instead of %d", item.ID, item.OrderID, o.ID)
			}
		}
	}
	if len(orders.Replacements) != 2 {
		t.Fatalf("expected 2 replacement orders, got %d", len(orders.Replacements))
	}
	if len(orders.Replacements[0].ItemIDs) != 1 || orders.Replacements[0].ItemIDs[0] != 61 {
		t.Fatalf("first replacement should own item 61: %+v", orders.Replacements[0].ItemIDs)
	}
}
