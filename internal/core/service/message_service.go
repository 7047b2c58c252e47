package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/handicraft/inventory-api/internal/core/domain"
	"github.com/handicraft/inventory-api/internal/core/ports"
)

const (
	maxMessageLen     = 2000
	conversationLimit = 200
)

type MessageService struct {
	repo ports.MessageRepository
}

func NewMessageService(repo ports.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

func (s *MessageService) Send(ctx context.Context, sender, receiver, text string) (*domain.Message, error) {
	text = strings.TrimSpace(text)
	receiver = strings.TrimSpace(receiver)
	if sender == "" || receiver == "" || text == "" || sender == receiver {
		return nil, domain.ErrInvalidMessage
	}
	if utf8.RuneCountInString(text) > maxMessageLen {
		return nil, domain.ErrInvalidMessage
	}

	return s.repo.Create(ctx, &domain.Message{
		ConversationID: domain.ConversationID(sender, receiver),
		Sender:         sender,
		Receiver:       receiver,
		Text:           text,
		CreatedAt:      time.Now().UTC(),
	})
}

// Conversation returns the latest messages exchanged between userID and peerID.
func (s *MessageService) Conversation(ctx context.Context, userID, peerID string) ([]*domain.Message, error) {
	if userID == "" || peerID == "" {
		return nil, domain.ErrInvalidMessage
	}
	return s.repo.ListConversation(ctx, domain.ConversationID(userID, peerID), conversationLimit)
}
