// AngelaMos | 2026
// entity.go

package audit

import "time"

// Entry is one audit log record. Payload carries action-specific details
// such as the member id or the search term.
type Entry struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Payload   map[string]any `json:"payload,omitempty"`
	UserID    string         `json:"userId"`
	UserRole  string         `json:"userRole"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (e Entry) EntityID() string {
	return e.ID
}

const (
	ActionLoginSuccess          = "LOGIN_SUCCESS"
	ActionLoginFailed           = "LOGIN_FAILED"
	ActionLogout                = "LOGOUT"
	ActionMemberCreated         = "MEMBER_CREATED"
	ActionMemberUpdated         = "MEMBER_UPDATED"
	ActionMemberDeleted         = "MEMBER_DELETED"
	ActionBillCreated           = "BILL_CREATED"
	ActionBillPaid              = "BILL_PAID"
	ActionNotificationCreated   = "NOTIFICATION_CREATED"
	ActionReportMembersExported = "REPORT_MEMBERS_EXPORTED"
	ActionReportBillsExported   = "REPORT_BILLS_EXPORTED"
	ActionSearchPerformed       = "SEARCH_PERFORMED"
	ActionTeacherAdded          = "teacher_added"
	ActionTeacherUpdated        = "teacher_updated"
	ActionTeacherDeleted        = "teacher_deleted"
	ActionAppointmentBooked     = "appointment_booked"
	ActionAppointmentUpdated    = "appointment_updated"
	ActionMessageSent           = "message_sent"
)

// Sentinel actors for entries recorded outside an authenticated session.
const (
	ActorSystem = "system"
	ActorGuest  = "guest"
)
