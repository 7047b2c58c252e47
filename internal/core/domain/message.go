package domain

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var ErrInvalidMessage = errors.New("invalid message")

// Message is a single chat line between two users.
type Message struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	ConversationID string    `json:"conversation_id" bson:"conversation_id"`
	Sender         string    `json:"sender" bson:"sender"`
	Receiver       string    `json:"receiver" bson:"receiver"`
	Text           string    `json:"text" bson:"text"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

// ConversationID returns the identifier shared by both directions of a chat.
func ConversationID(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, ":")
}
