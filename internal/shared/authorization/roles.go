package authorization

// Role is the access level of an authenticated identity.
// Technicians handle tickets; read_only accounts can only consult them.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnicien Role = "technicien"
	RoleReadOnly   Role = "read_only"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsReadOnly() bool {
	return r == RoleReadOnly
}

// CanWrite reports whether the role may create or modify records.
func (r Role) CanWrite() bool {
	return r == RoleAdmin || r == RoleTechnicien
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleTechnicien || r == RoleReadOnly
}

// ParseRole returns the role for s, defaulting to technicien for unknown
// values, matching the legacy account default.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleTechnicien
}

// CanEditComment gates comment edits: only the author or an admin may rewrite
// a comment's content.
func CanEditComment(editorID uint, editorRole Role, authorID uint) bool {
	if editorRole.IsAdmin() {
		return true
	}
	return editorID == authorID
}
