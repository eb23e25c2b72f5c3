package chat

import (
	"time"

	"github.com/google/uuid"
)

// Conversation links exactly two users. The pair is normalized so the
// lexicographically smaller id is always user1, which makes the pair unique
// regardless of who started the conversation.
type Conversation struct {
	ID        uuid.UUID `db:"id" json:"id"`
	User1ID   string    `db:"user1_id" json:"user1_id"`
	User2ID   string    `db:"user2_id" json:"user2_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Participant reports whether userID is one of the conversation's two users.
func (c *Conversation) Participant(userID string) bool {
	return c.User1ID == userID || c.User2ID == userID
}

// Peer returns the other participant.
func (c *Conversation) Peer(userID string) string {
	if c.User1ID == userID {
		return c.User2ID
	}
	return c.User1ID
}

// Message maps to the messages table.
type Message struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ConversationID uuid.UUID `db:"conversation_id" json:"conversation_id"`
	SenderID       string    `db:"sender_id" json:"sender_id"`
	RecipientID    string    `db:"recipient_id" json:"recipient_id"`
	Content        string    `db:"content" json:"content"`
	IsRead         bool      `db:"is_read" json:"is_read"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
