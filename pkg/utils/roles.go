package utils

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// DefaultAdminEmail is the placeholder identity policy: one fixed address
// gets full mutation rights, everyone else is a plain member.
const DefaultAdminEmail = "fabiana@email.com"

// ResolveRole maps a login email to a capability level. adminEmail may be
// empty, in which case the default address applies. Every mutating service
// operation consults the role this returns; nothing else grants admin.
func ResolveRole(email, adminEmail string) string {
	if adminEmail == "" {
		adminEmail = DefaultAdminEmail
	}
	if email == adminEmail {
		return RoleAdmin
	}
	return RoleMember
}
