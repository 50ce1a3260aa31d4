// AngelaMos | 2026
// entity.go

package notification

import "time"

// Notification is a broadcast announcement. There is no per-user targeting
// and no delete path, so the collection only ever grows.
type Notification struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Audience  string    `json:"audience"`
	CreatedAt time.Time `json:"createdAt"`
}

func (n Notification) EntityID() string {
	return n.ID
}

const DefaultAudience = "members"
