package chat

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// GetOrCreateConversation returns the conversation for the normalized
	// pair, creating it if it does not exist yet.
	GetOrCreateConversation(ctx context.Context, user1ID, user2ID string) (*Conversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (*Conversation, error)
	// ListConversations returns the user's conversations, most recently
	// updated first.
	ListConversations(ctx context.Context, userID string, limit, offset int) ([]*Conversation, int, error)

	// CreateMessage inserts the message and bumps the conversation's
	// updated_at in the same transaction.
	CreateMessage(ctx context.Context, m *Message) error
	// ListMessages returns a conversation's messages in chronological order.
	ListMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*Message, int, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*Message, error)
	MarkMessageRead(ctx context.Context, id uuid.UUID) error
}
