// AngelaMos | 2026
// dto.go

package appointment

type BookAppointmentRequest struct {
	TeacherID string `json:"teacherId" validate:"required,max=64"`
	Datetime  string `json:"datetime"  validate:"required,max=64"`
	Purpose   string `json:"purpose"   validate:"omitempty,max=500"`
}

type AppointmentListResponse struct {
	Appointments []Appointment `json:"appointments"`
}
