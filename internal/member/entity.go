// AngelaMos | 2026
// entity.go

package member

// Member is a gym member record. Package is a free-form plan label such as
// "Monthly" or "Quarterly". Bills reference members by email, not id.
type Member struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Package string `json:"package"`
}

func (m Member) EntityID() string {
	return m.ID
}
