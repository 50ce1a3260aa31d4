// AngelaMos | 2026
// dto.go

package notification

type CreateNotificationRequest struct {
	Text     string `json:"text"     validate:"required,min=1,max=1000"`
	Audience string `json:"audience" validate:"omitempty,max=64"`
}

type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
}
