package model

// Role names a coarse-grained permission group.
type Role string

const (
	RoleBuyer  Role = "ROLE_USER"
	RoleSeller Role = "ROLE_SELLER"
	RoleAdmin  Role = "ROLE_ADMIN"
)

func hasRole(roles []Role, r Role) bool {
	for _, have := range roles {
		if have == r {
			return true
		}
	}
	return false
}

func withoutRole(roles []Role, r Role) []Role {
	out := make([]Role, 0, len(roles))
	for _, have := range roles {
		if have != r {
			out = append(out, have)
		}
	}
	return out
}

// DeriveEffectiveRoles computes the roles a user acts with from the stored
// role list. Precedence:
//   - admin always carries the buyer role as well;
//   - a seller who is not admin never carries the buyer role;
//   - a user with no special role defaults to buyer.
func DeriveEffectiveRoles(raw []Role) []Role {
	roles := append([]Role(nil), raw...)

	switch {
	case hasRole(roles, RoleAdmin):
		if !hasRole(roles, RoleBuyer) {
			roles = append(roles, RoleBuyer)
		}
	case hasRole(roles, RoleSeller):
		roles = withoutRole(roles, RoleBuyer)
	case len(roles) == 0:
		roles = append(roles, RoleBuyer)
	}

	return dedupeRoles(roles)
}

// GrantSellerRole adds the seller role to a stored role list. Non-admins lose
// the buyer role in the process; admins keep everything.
func GrantSellerRole(raw []Role) []Role {
	roles := append([]Role(nil), raw...)
	if !hasRole(roles, RoleSeller) {
		roles = append(roles, RoleSeller)
	}
	if !hasRole(roles, RoleAdmin) {
		roles = withoutRole(roles, RoleBuyer)
	}
	return dedupeRoles(roles)
}

// RevokeSellerRole removes the seller role from a stored role list. The buyer
// role is not re-added here: an empty list falls back to buyer on derivation.
func RevokeSellerRole(raw []Role) []Role {
	return dedupeRoles(withoutRole(append([]Role(nil), raw...), RoleSeller))
}

func dedupeRoles(roles []Role) []Role {
	seen := make(map[Role]struct{}, len(roles))
	out := make([]Role, 0, len(roles))
	for _, r := range roles {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
