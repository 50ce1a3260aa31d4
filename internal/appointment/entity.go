// AngelaMos | 2026
// entity.go

package appointment

import "time"

// Appointment is a booking request. Status only ever moves from pending to
// approved; there is no rejection or cancellation path.
type Appointment struct {
	ID          string    `json:"id"`
	TeacherID   string    `json:"teacherId"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Datetime    string    `json:"datetime"`
	Purpose     string    `json:"purpose"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (a Appointment) EntityID() string {
	return a.ID
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)
