package chat

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	ws "github.com/carelink/carelink/internal/platform/websocket"
)

var (
	// ErrNotFound is returned when a conversation or message does not exist.
	// Participant checks also return it so a lookup by an outsider is
	// indistinguishable from a missing record.
	ErrNotFound = errors.New("not found")
	// ErrSelfConversation is returned when a user tries to chat with themselves.
	ErrSelfConversation = errors.New("cannot start a conversation with yourself")
	// ErrPeerRequired is returned when no peer is named.
	ErrPeerRequired = errors.New("peer_id is required")
	// ErrEmptyContent is returned when a message has no content.
	ErrEmptyContent = errors.New("message content is required")
	// ErrNotRecipient is returned when someone other than the recipient tries
	// to mark a message read.
	ErrNotRecipient = errors.New("only the recipient can mark a message read")
)

// EventMessageCreated is pushed to the recipient's user topic on every send.
const EventMessageCreated = "message.created"

type Service struct {
	chats     Repository
	publisher ws.EventPublisher
	logger    zerolog.Logger
}

func NewService(chats Repository, publisher ws.EventPublisher, logger zerolog.Logger) *Service {
	return &Service{chats: chats, publisher: publisher, logger: logger}
}

// normalizePair orders the two user ids so the smaller one comes first.
func normalizePair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

// StartConversation returns the conversation between userID and peerID,
// creating it on first contact.
func (s *Service) StartConversation(ctx context.Context, userID, peerID string) (*Conversation, error) {
	if peerID == "" {
		return nil, ErrPeerRequired
	}
	if userID == peerID {
		return nil, ErrSelfConversation
	}
	u1, u2 := normalizePair(userID, peerID)
	return s.chats.GetOrCreateConversation(ctx, u1, u2)
}

// Conversations returns the user's conversations, most recently updated first.
func (s *Service) Conversations(ctx context.Context, userID string, limit, offset int) ([]*Conversation, int, error) {
	return s.chats.ListConversations(ctx, userID, limit, offset)
}

// Messages returns a conversation's messages in chronological order. Only
// participants can read them.
func (s *Service) Messages(ctx context.Context, userID string, conversationID uuid.UUID, limit, offset int) ([]*Message, int, error) {
	conv, err := s.chats.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, 0, err
	}
	if !conv.Participant(userID) {
		return nil, 0, ErrNotFound
	}
	return s.chats.ListMessages(ctx, conversationID, limit, offset)
}

// SendMessage appends a message to the conversation and notifies the
// recipient over the websocket hub. A push failure is logged, not surfaced;
// the message is already persisted.
func (s *Service) SendMessage(ctx context.Context, userID string, conversationID uuid.UUID, content string) (*Message, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	conv, err := s.chats.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.Participant(userID) {
		return nil, ErrNotFound
	}

	m := &Message{
		ConversationID: conversationID,
		SenderID:       userID,
		RecipientID:    conv.Peer(userID),
		Content:        content,
	}
	if err := s.chats.CreateMessage(ctx, m); err != nil {
		return nil, err
	}

	s.notifyRecipient(ctx, m)
	return m, nil
}

func (s *Service) notifyRecipient(ctx context.Context, m *Message) {
	if s.publisher == nil {
		return
	}
	data, err := json.Marshal(m)
	if err != nil {
		s.logger.Error().Err(err).Str("message_id", m.ID.String()).Msg("failed to encode message event")
		return
	}
	event := ws.Event{
		Type:           EventMessageCreated,
		Topic:          ws.UserTopic(m.RecipientID),
		ConversationID: m.ConversationID.String(),
		MessageID:      m.ID.String(),
		Timestamp:      time.Now().UTC(),
		Data:           data,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error().Err(err).Str("message_id", m.ID.String()).Msg("failed to publish message event")
	}
}

// MarkRead flags a message as read. Only the recipient can do this.
func (s *Service) MarkRead(ctx context.Context, userID string, messageID uuid.UUID) (*Message, error) {
	m, err := s.chats.GetMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if m.RecipientID != userID {
		return nil, ErrNotRecipient
	}
	if m.IsRead {
		return m, nil
	}
	if err := s.chats.MarkMessageRead(ctx, messageID); err != nil {
		return nil, err
	}
	m.IsRead = true
	return m, nil
}
