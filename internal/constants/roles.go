package constants

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// VARole mirrors the Postgres ENUM 'va_role'
type VARole string

const (
	RoleOwner  VARole = "owner"
	RoleAdmin  VARole = "admin"
	RolePilot  VARole = "pilot"
	RoleMember VARole = "member"
)

// String is convenient for fmt and logs.
func (r VARole) String() string { return string(r) }

// IsStaff reports whether the role may review reports and manage tours.
func (r VARole) IsStaff() bool {
	return r == RoleOwner || r == RoleAdmin
}

// ParseRole normalizes a role string at the boundary. Legacy clients send
// mixed casing ("Owner", "ADMIN"); internally only the lowercase enum exists.
func ParseRole(s string) (VARole, error) {
	switch VARole(strings.ToLower(strings.TrimSpace(s))) {
	case RoleOwner:
		return RoleOwner, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RolePilot:
		return RolePilot, nil
	case RoleMember:
		return RoleMember, nil
	}
	return "", fmt.Errorf("unknown va role: %q", s)
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *VARole) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = VARole(v)
	case []byte:
		*r = VARole(v)
	default:
		return fmt.Errorf("VARole: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r VARole) Value() (driver.Value, error) { return string(r), nil }
