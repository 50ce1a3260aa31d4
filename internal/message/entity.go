// AngelaMos | 2026
// entity.go

package message

import "time"

// Message is a one-way note between two accounts. Read state is not
// modeled; an inbox is just every message addressed to you.
type Message struct {
	ID        string    `json:"id"`
	FromID    string    `json:"fromId"`
	ToID      string    `json:"toId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m Message) EntityID() string {
	return m.ID
}
