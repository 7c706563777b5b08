package model

import (
	"reflect"
	"testing"
)

func TestDeriveEffectiveRoles(t *testing.T) {
	cases := []struct {
		name string
		raw  []Role
		want []Role
	}{
		{"empty defaults to buyer", nil, []Role{RoleBuyer}},
		{"plain buyer", []Role{RoleBuyer}, []Role{RoleBuyer}},
		{"seller loses buyer", []Role{RoleSeller, RoleBuyer}, []Role{RoleSeller}},
		{"seller only", []Role{RoleSeller}, []Role{RoleSeller}},
		{"admin gains buyer", []Role{RoleAdmin}, []Role{RoleAdmin, RoleBuyer}},
		{"admin seller keeps everything", []Role{RoleAdmin, RoleSeller}, []Role{RoleAdmin, RoleSeller, RoleBuyer}},
		{"admin seller buyer deduped", []Role{RoleAdmin, RoleSeller, RoleBuyer, RoleBuyer}, []Role{RoleAdmin, RoleSeller, RoleBuyer}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveEffectiveRoles(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("DeriveEffectiveRoles(%v) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestDeriveEffectiveRolesDoesNotMutateInput(t *testing.T) {
	raw := []Role{RoleSeller, RoleBuyer}
	_ = DeriveEffectiveRoles(raw)
	if !reflect.DeepEqual(raw, []Role{RoleSeller, RoleBuyer}) {
		t.Fatalf("input slice mutated: %v", raw)
	}
}

func TestGrantSellerRole(t *testing.T) {
	if got := GrantSellerRole([]Role{RoleBuyer}); !reflect.DeepEqual(got, []Role{RoleSeller}) {
		t.Fatalf("buyer -> seller grant = %v", got)
	}
	if got := GrantSellerRole([]Role{RoleAdmin, RoleBuyer}); !reflect.DeepEqual(got, []Role{RoleAdmin, RoleBuyer, RoleSeller}) {
		t.Fatalf("admin grant = %v", got)
	}
	if got := GrantSellerRole([]Role{RoleSeller}); !reflect.DeepEqual(got, []Role{RoleSeller}) {
		t.Fatalf("repeated grant = %v", got)
	}
}

func TestRevokeSellerRole(t *testing.T) {
	if got := RevokeSellerRole([]Role{RoleSeller}); len(got) != 0 {
		t.Fatalf("revoke = %v, want empty", got)
	}
	if got := RevokeSellerRole([]Role{RoleAdmin, RoleSeller}); !reflect.DeepEqual(got, []Role{RoleAdmin}) {
		t.Fatalf("admin revoke = %v", got)
	}
	// An empty stored list falls back to buyer at derivation time.
	if got := DeriveEffectiveRoles(RevokeSellerRole([]Role{RoleSeller})); !reflect.DeepEqual(got, []Role{RoleBuyer}) {
		t.Fatalf("derived after revoke = %v", got)
	}
}

func TestUserEffectiveRoles(t *testing.T) {
	u := NewUser(1, "x@example.com", []Role{RoleSeller})
	if got := u.EffectiveRoles(); !reflect.DeepEqual(got, []Role{RoleSeller}) {
		t.Fatalf("effective roles = %v", got)
	}
	if u.IsAdmin() {
		t.Fatalf("seller is not admin")
	}
	u.SetRawRoles([]Role{RoleAdmin})
	if !u.IsAdmin() {
		t.Fatalf("admin flag lost")
	}
}
