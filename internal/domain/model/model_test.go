package model

import "testing"

func TestOrderItemSellerKey(t *testing.T) {
	sellerID := int64(9)
	item := OrderItem{SellerID: &sellerID}
	if got := item.SellerKey(); got != 9 {
		t.Fatalf("expected key 9, got %d", got)
	}

	platform := OrderItem{}
	if got := platform.SellerKey(); got != PlatformSellerKey {
		t.Fatalf("expected platform key, got %d", got)
	}
}

func TestSellerLotSellerKey(t *testing.T) {
	sellerID := int64(4)
	lot := SellerLot{SellerID: &sellerID}
	if got := lot.SellerKey(); got != 4 {
		t.Fatalf("expected key 4, got %d", got)
	}

	platform := SellerLot{}
	if got := platform.SellerKey(); got != PlatformSellerKey {
		t.Fatalf("expected platform key, got %d", got)
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		if !ValidOrderStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if ValidOrderStatus("pending") {
		t.Fatal("expected unknown status to be invalid")
	}
}

func TestValidLotStatus(t *testing.T) {
	for _, s := range []LotStatus{LotStatusConfirmed, LotStatusShipped, LotStatusDelivered, LotStatusCancelled} {
		if !ValidLotStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if ValidLotStatus("returned") {
		t.Fatal("expected unknown status to be invalid")
	}
}

func TestValidSellerStatus(t *testing.T) {
	for _, s := range []SellerStatus{SellerStatusPending, SellerStatusApproved, SellerStatusSuspended, SellerStatusRejected} {
		if !ValidSellerStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if ValidSellerStatus("closed") {
		t.Fatal("expected unknown status to be invalid")
	}
}

func TestSellerIsApproved(t *testing.T) {
	var missing *Seller
	if missing.IsApproved() {
		t.Fatal("nil seller must not be approved")
	}
	if (&Seller{Status: SellerStatusPending}).IsApproved() {
		t.Fatal("pending seller must not be approved")
	}
	if !(&Seller{Status: SellerStatusApproved}).IsApproved() {
		t.Fatal("approved seller must be approved")
	}
}
