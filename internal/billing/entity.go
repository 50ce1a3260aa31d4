// AngelaMos | 2026
// entity.go

package billing

// Bill is a fee notice linked to a member by email rather than id, so
// renaming a member's email orphans their unpaid bills. That weak link is
// part of the portal's contract.
type Bill struct {
	ID          string  `json:"id"`
	MemberEmail string  `json:"memberEmail"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"`
	Notes       string  `json:"notes"`
	Status      string  `json:"status"`
}

func (b Bill) EntityID() string {
	return b.ID
}

const (
	StatusUnpaid = "unpaid"
	StatusPaid   = "paid"
)
