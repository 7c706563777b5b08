package usecase_test

import (
	"github.com/innovshop/marketplace/internal/usecase"

	"context"
	"errors"
	"testing"

	domainErrors "github.com/innovshop/marketplace/internal/domain/errors"
	"github.com/innovshop/marketplace/internal/domain/model"
	testhelpers "github.com/innovshop/marketplace/internal/test"
)

type sellerFixture struct {
	uc       *usecase.SellerUseCase
	sellers  *testhelpers.SellerRepositoryStub
	users    *testhelpers.UserRepositoryStub
	products *testhelpers.ProductRepositoryStub
	notifier *testhelpers.NotifierStub
}

func newSellerFixture() *sellerFixture {
	f := &sellerFixture{
		sellers:  testhelpers.NewSellerRepositoryStub(),
		users:    testhelpers.NewUserRepositoryStub(),
		products: testhelpers.NewProductRepositoryStub(),
		notifier: &testhelpers.NotifierStub{},
	}
	f.uc = usecase.NewSellerUseCase(f.sellers, f.users, f.products, f.notifier, testhelpers.DiscardLogger())
	return f
}

func TestApplyCreatesPendingSellerAndGrantsRole(t *testing.T) {
	f := newSellerFixture()
	f.users.Add(model.NewUser(5, "shop@example.com", []model.Role{model.RoleBuyer}))

	seller, err := f.uc.Apply(context.Background(), 5, &model.Seller{ShopName: "Atelier", Slug: "atelier"})
	if err != nil {
		t.Fatalf("apply returned error: %v", err)
	}
	if seller.Status != model.SellerStatusPending {
		t.Fatalf("new seller status = %q, want pending", seller.Status)
	}
	if seller.UserID != 5 {
		t.Fatalf("seller not bound to applying user")
	}

	roles := f.users.RoleUpdates[5]
	if len(roles) != 1 || roles[0] != model.RoleSeller {
		t.Fatalf("stored roles after apply = %v, want [ROLE_SELLER]", roles)
	}
}

func TestChangeStatusApprovalNotifies(t *testing.T) {
	f := newSellerFixture()
	f.users.Add(model.NewUser(5, "shop@example.com", []model.Role{model.RoleSeller}))
	f.sellers.Add(&model.Seller{ID: 1, UserID: 5, Status: model.SellerStatusPending})

	seller, err := f.uc.ChangeStatus(context.Background(), 1, model.SellerStatusApproved)
	if err != nil {
		t.Fatalf("approve returned error: %v", err)
	}
	if seller.Status != model.SellerStatusApproved {
		t.Fatalf("status = %q, want approved", seller.Status)
	}
	if len(f.notifier.SellerApprovals) != 1 || f.notifier.SellerApprovals[0] != 1 {
		t.Fatalf("approval notification not sent: %v", f.notifier.SellerApprovals)
	}
}

func TestChangeStatusApprovalNotificationFailureIsSwallowed(t *testing.T) {
	f := newSellerFixture()
	f.notifier.Fail = true
	f.users.Add(model.NewUser(5, "shop@example.com", nil))
	f.sellers.Add(&model.Seller{ID: 1, UserID: 5, Status: model.SellerStatusPending})

	if _, err := f.uc.ChangeStatus(context.Background(), 1, model.SellerStatusApproved); err != nil {
		t.Fatalf("failed notification must not fail the status change: %v", err)
	}
}

func TestChangeStatusSuspensionUnpublishesAndRevokesRole(t *testing.T) {
	f := newSellerFixture()
	f.users.Add(model.NewUser(5, "shop@example.com", []model.Role{model.RoleSeller}))
	f.sellers.Add(&model.Seller{ID: 1, UserID: 5, Status: model.SellerStatusApproved})
	f.products.Products[3] = &model.Product{ID: 3, SellerID: int64Ptr(1), IsPublished: true}

	if _, err := f.uc.ChangeStatus(context.Background(), 1, model.SellerStatusSuspended); err != nil {
		t.Fatalf("suspend returned error: %v", err)
	}

	if len(f.products.PublishedCalls) != 1 || f.products.PublishedCalls[0].Published {
		t.Fatalf("catalog must be unpublished on suspension: %+v", f.products.PublishedCalls)
	}
	if f.products.Products[3].IsPublished {
		t.Fatalf("product still published after suspension")
	}
	if roles := f.users.RoleUpdates[5]; len(roles) != 0 {
		t.Fatalf("seller role must be revoked, stored roles = %v", roles)
	}
}

func TestChangeStatusReactivationRepublishes(t *testing.T) {
	f := newSellerFixture()
	f.users.Add(model.NewUser(5, "shop@example.com", nil))
	f.sellers.Add(&model.Seller{ID: 1, UserID: 5, Status: model.SellerStatusSuspended})

	if _, err := f.uc.ChangeStatus(context.Background(), 1, model.SellerStatusApproved); err != nil {
		t.Fatalf("reactivate returned error: %v", err)
	}
	if len(f.products.PublishedCalls) != 1 || !f.products.PublishedCalls[0].Published {
		t.Fatalf("catalog must be republished on reactivation: %+v", f.products.PublishedCalls)
	}
}

func TestChangeStatusNoOpAndInvalid(t *testing.T) {
	f := newSellerFixture()
	f.users.Add(model.NewUser(5, "shop@example.com", nil))
	f.sellers.Add(&model.Seller{ID: 1, UserID: 5, Status: model.SellerStatusApproved})

	if _, err := f.uc.ChangeStatus(context.Background(), 1, model.SellerStatusApproved); err != nil {
		t.Fatalf("same-status change returned error: %v", err)
	}
	if len(f.users.RoleUpdates) != 0 || len(f.notifier.SellerApprovals) != 0 {
		t.Fatalf("same-status change must have no side effects")
	}

	if _, err := f.uc.ChangeStatus(context.Background(), 1, "banished"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("unknown status must be rejected, got %v", err)
	}
}

func TestChangeStatusAdminKeepsAllRolesOnApproval(t *testing.T) {
	f := newSellerFixture()
	f.users.Add(model.NewUser(5, "admin@example.com", []model.Role{model.RoleAdmin, model.RoleBuyer}))
	f.sellers.Add(&model.Seller{ID: 1, UserID: 5, Status: model.SellerStatusPending})

	if _, err := f.uc.ChangeStatus(context.Background(), 1, model.SellerStatusApproved); err != nil {
		t.Fatalf("approve returned error: %v", err)
	}

	roles := f.users.RoleUpdates[5]
	want := map[model.Role]bool{model.RoleAdmin: false, model.RoleBuyer: false, model.RoleSeller: false}
	for _, r := range roles {
		want[r] = true
	}
	for role, seen := range want {
		if !seen {
			t.Fatalf("admin lost role %s on approval: %v", role, roles)
		}
	}
}
