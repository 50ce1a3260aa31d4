// AngelaMos | 2026
// entity.go

package user

// User is one portal account stored in the "users" collection. Passwords
// are kept in plaintext, faithful to the toy credential model both portals
// shipped with.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (u User) EntityID() string {
	return u.ID
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// The gym portal uses admin, member and user (front desk staff). The
// appointment portal adds teacher and student.
const (
	RoleAdmin   = "admin"
	RoleMember  = "member"
	RoleUser    = "user"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleMember, RoleUser, RoleTeacher, RoleStudent:
		return true
	}
	return false
}
