// AngelaMos | 2026
// dto.go

package billing

type CreateBillRequest struct {
	MemberEmail string  `json:"memberEmail" validate:"required,email,max=255"`
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	DueDate     string  `json:"dueDate"     validate:"omitempty,max=32"`
	Notes       string  `json:"notes"       validate:"omitempty,max=500"`
}

type BillListResponse struct {
	Bills []Bill `json:"bills"`
}
