// AngelaMos | 2026
// dto.go

package message

type SendMessageRequest struct {
	ToID string `json:"toId" validate:"required,max=64"`
	Body string `json:"body" validate:"required,min=1,max=2000"`
}

type MessageListResponse struct {
	Messages []Message `json:"messages"`
}
