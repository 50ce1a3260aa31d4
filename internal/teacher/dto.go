// AngelaMos | 2026
// dto.go

package teacher

type CreateTeacherRequest struct {
	Name       string   `json:"name"       validate:"required,min=1,max=100"`
	Email      string   `json:"email"      validate:"required,email,max=255"`
	Department string   `json:"department" validate:"omitempty,max=100"`
	Subjects   []string `json:"subjects"   validate:"omitempty,dive,max=100"`
	Bio        string   `json:"bio"        validate:"omitempty,max=2000"`
	Slots      []string `json:"slots"      validate:"omitempty,dive,max=64"`
}

type UpdateTeacherRequest struct {
	Name       *string   `json:"name,omitempty"       validate:"omitempty,min=1,max=100"`
	Email      *string   `json:"email,omitempty"      validate:"omitempty,email,max=255"`
	Department *string   `json:"department,omitempty" validate:"omitempty,max=100"`
	Subjects   *[]string `json:"subjects,omitempty"   validate:"omitempty,dive,max=100"`
	Bio        *string   `json:"bio,omitempty"        validate:"omitempty,max=2000"`
	Slots      *[]string `json:"slots,omitempty"      validate:"omitempty,dive,max=64"`
}

type TeacherListResponse struct {
	Teachers []Teacher `json:"teachers"`
}
