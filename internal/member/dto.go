// AngelaMos | 2026
// dto.go

package member

type CreateMemberRequest struct {
	Name    string `json:"name"    validate:"required,min=1,max=100"`
	Email   string `json:"email"   validate:"required,email,max=255"`
	Phone   string `json:"phone"   validate:"omitempty,max=32"`
	Package string `json:"package" validate:"omitempty,max=64"`
}

type UpdateMemberRequest struct {
	Name    *string `json:"name,omitempty"    validate:"omitempty,min=1,max=100"`
	Email   *string `json:"email,omitempty"   validate:"omitempty,email,max=255"`
	Phone   *string `json:"phone,omitempty"   validate:"omitempty,max=32"`
	Package *string `json:"package,omitempty" validate:"omitempty,max=64"`
}

type MemberListResponse struct {
	Members []Member `json:"members"`
}
