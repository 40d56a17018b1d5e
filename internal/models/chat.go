package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn in a tutor conversation. Messages are append-only
// and ordered by creation time.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
