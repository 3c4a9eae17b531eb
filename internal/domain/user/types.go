package user

type Role string

const (
	// RoleTrainer owns drafts and may edit them.
	RoleTrainer Role = "trainer"
	// RoleManager reviews submissions and issues verdicts.
	RoleManager Role = "manager"
	// RoleIntegration is the extension-facing role used by the component editor.
	RoleIntegration Role = "integration"
	RoleAdmin       Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleTrainer, RoleManager, RoleIntegration, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanReview reports whether the role may close review rounds.
func (r Role) CanReview() bool {
	return r == RoleManager || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
