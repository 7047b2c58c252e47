package ports

import (
	"context"

	"github.com/handicraft/inventory-api/internal/core/domain"
)

// MessageRepository defines persistence operations for chat messages.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	// ListConversation returns messages oldest first.
	ListConversation(ctx context.Context, conversationID string, limit int) ([]*domain.Message, error)
}

// MessageService defines use-case operations for chat.
type MessageService interface {
	Send(ctx context.Context, sender, receiver, text string) (*domain.Message, error)
	Conversation(ctx context.Context, userID, peerID string) ([]*domain.Message, error)
}
