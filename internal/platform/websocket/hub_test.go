package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func newTestClient(userID string) *Client {
	return &Client{
		ID:     "test-" + userID,
		UserID: userID,
		Topics: []string{UserTopic(userID)},
		Send:   make(chan []byte, 8),
	}
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub := NewHub()
	client := newTestClient("u-1")
	hub.Register(client)

	if hub.ClientCount() != 1 {
		t.Fatalf("expected 1 client, got %d", hub.ClientCount())
	}
	if hub.TopicCount(UserTopic("u-1")) != 1 {
		t.Fatalf("expected 1 subscriber on user topic, got %d", hub.TopicCount(UserTopic("u-1")))
	}

	event := Event{
		Type:           "message.created",
		Topic:          UserTopic("u-1"),
		ConversationID: "conv-1",
		MessageID:      "msg-1",
		Timestamp:      time.Now(),
	}
	hub.Broadcast(UserTopic("u-1"), event)

	select {
	case data := <-client.Send:
		var got Event
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("failed to unmarshal event: %v", err)
		}
		if got.Type != "message.created" {
			t.Errorf("expected message.created, got %s", got.Type)
		}
		if got.ConversationID != "conv-1" {
			t.Errorf("expected conv-1, got %s", got.ConversationID)
		}
	default:
		t.Fatal("expected event on client send channel")
	}
}

func TestHub_BroadcastOnlyToTopic(t *testing.T) {
	hub := NewHub()
	alice := newTestClient("alice")
	bob := newTestClient("bob")
	hub.Register(alice)
	hub.Register(bob)

	hub.Broadcast(UserTopic("bob"), Event{Type: "message.created", Topic: UserTopic("bob")})

	select {
	case <-bob.Send:
	default:
		t.Fatal("expected bob to receive the event")
	}

	select {
	case <-alice.Send:
		t.Fatal("alice should not receive bob's event")
	default:
	}
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub()
	client := newTestClient("u-1")
	hub.Register(client)
	hub.Unregister(client)

	if hub.ClientCount() != 0 {
		t.Errorf("expected 0 clients, got %d", hub.ClientCount())
	}
	if hub.TopicCount(UserTopic("u-1")) != 0 {
		t.Errorf("expected 0 subscribers, got %d", hub.TopicCount(UserTopic("u-1")))
	}

	// Send channel should be closed
	if _, ok := <-client.Send; ok {
		t.Error("expected send channel to be closed")
	}

	// Unregistering twice is a no-op
	hub.Unregister(client)
}

func TestHub_SubscribeConversationTopic(t *testing.T) {
	hub := NewHub()
	client := newTestClient("u-1")
	hub.Register(client)

	hub.ProcessMessage(client, ClientMessage{
		Action: "subscribe",
		Topics: []string{ConversationTopic("conv-9")},
	})

	if hub.TopicCount(ConversationTopic("conv-9")) != 1 {
		t.Fatal("expected subscription to conversation topic")
	}

	hub.Broadcast(ConversationTopic("conv-9"), Event{Type: "message.created"})
	select {
	case <-client.Send:
	default:
		t.Fatal("expected event on conversation topic")
	}
}

func TestHub_UnsubscribeKeepsUserTopic(t *testing.T) {
	hub := NewHub()
	client := newTestClient("u-1")
	hub.Register(client)
	hub.Subscribe(client, []string{ConversationTopic("conv-9")})

	hub.ProcessMessage(client, ClientMessage{
		Action: "unsubscribe",
		Topics: []string{ConversationTopic("conv-9"), UserTopic("u-1")},
	})

	if hub.TopicCount(ConversationTopic("conv-9")) != 0 {
		t.Error("expected conversation topic to be unsubscribed")
	}
	if hub.TopicCount(UserTopic("u-1")) != 1 {
		t.Error("expected user topic subscription to survive unsubscribe")
	}
}

func TestHub_BroadcastUnknownTopic(t *testing.T) {
	hub := NewHub()
	// No subscribers; should not panic
	hub.Broadcast(UserTopic("ghost"), Event{Type: "message.created"})
}

func TestHub_FullBufferDoesNotBlock(t *testing.T) {
	hub := NewHub()
	client := &Client{
		ID:     "slow",
		UserID: "u-slow",
		Topics: []string{UserTopic("u-slow")},
		Send:   make(chan []byte, 1),
	}
	hub.Register(client)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			hub.Broadcast(UserTopic("u-slow"), Event{Type: "message.created"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on a full client buffer")
	}
}

func TestHub_Publish(t *testing.T) {
	hub := NewHub()
	client := newTestClient("u-1")
	hub.Register(client)

	err := hub.Publish(context.Background(), Event{
		Type:  "message.created",
		Topic: UserTopic("u-1"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case <-client.Send:
	default:
		t.Fatal("expected published event to reach subscriber")
	}
}

func TestTopicHelpers(t *testing.T) {
	if UserTopic("abc") != "user:abc" {
		t.Errorf("unexpected user topic: %s", UserTopic("abc"))
	}
	if ConversationTopic("xyz") != "conversation:xyz" {
		t.Errorf("unexpected conversation topic: %s", ConversationTopic("xyz"))
	}
}
