package apiclient

import (
	"context"
	"net/url"
	"time"
)

// PurchaseRequest creates a purchase record for a medicine.
type PurchaseRequest struct {
	MedicineID     string `json:"medicine_id"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// CreatePurchase buys a medicine. The server rejects prescription-required
// and out-of-stock medicines before recording anything.
func (c *Client) CreatePurchase(ctx context.Context, req PurchaseRequest) (Purchase, error) {
	var res Purchase
	err := c.do(ctx, "POST", "/purchases", nil, req, &res)
	return res, err
}

// Purchases lists the caller's purchases, newest first.
func (c *Client) Purchases(ctx context.Context) ([]Purchase, error) {
	var res listEnvelope[Purchase]
	err := c.do(ctx, "GET", "/purchases", nil, nil, &res)
	return res.Data, err
}

// AppointmentRequest books a consultation with a provider.
type AppointmentRequest struct {
	ProviderID       string    `json:"provider_id"`
	AppointmentDate  time.Time `json:"appointment_date"`
	ConsultationType string    `json:"consultation_type"`
	Fee              float64   `json:"fee"`
	IdempotencyKey   string    `json:"idempotency_key,omitempty"`
}

// CreateAppointment books an appointment. The date must be in the future
// and the consultation type one of phone, video or in-person.
func (c *Client) CreateAppointment(ctx context.Context, req AppointmentRequest) (Appointment, error) {
	var res Appointment
	err := c.do(ctx, "POST", "/appointments", nil, req, &res)
	return res, err
}

// Appointments lists the caller's appointments, newest first.
func (c *Client) Appointments(ctx context.Context) ([]Appointment, error) {
	var res listEnvelope[Appointment]
	err := c.do(ctx, "GET", "/appointments", nil, nil, &res)
	return res.Data, err
}

// StartConversation returns the conversation with the given peer, creating
// it if none exists yet.
func (c *Client) StartConversation(ctx context.Context, peerID string) (Conversation, error) {
	var res Conversation
	err := c.do(ctx, "POST", "/conversations", nil, map[string]string{"peer_id": peerID}, &res)
	return res, err
}

// Conversations lists the caller's conversations, most recently active first.
func (c *Client) Conversations(ctx context.Context) ([]Conversation, error) {
	var res listEnvelope[Conversation]
	err := c.do(ctx, "GET", "/conversations", nil, nil, &res)
	return res.Data, err
}

// Messages lists a conversation's messages in chronological order.
func (c *Client) Messages(ctx context.Context, conversationID string) ([]Message, error) {
	var res listEnvelope[Message]
	err := c.do(ctx, "GET", "/conversations/"+url.PathEscape(conversationID)+"/messages", nil, nil, &res)
	return res.Data, err
}

// SendMessage posts a message to a conversation.
func (c *Client) SendMessage(ctx context.Context, conversationID, content string) (Message, error) {
	var res Message
	err := c.do(ctx, "POST", "/conversations/"+url.PathEscape(conversationID)+"/messages", nil,
		map[string]string{"content": content}, &res)
	return res, err
}

// MarkMessageRead marks a received message as read.
func (c *Client) MarkMessageRead(ctx context.Context, messageID string) error {
	return c.do(ctx, "PUT", "/messages/"+url.PathEscape(messageID)+"/read", nil, nil, nil)
}
