package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/carelink/carelink/internal/platform/auth"
)

func newTestHandler() (*Handler, *mockRepo, *mockPublisher) {
	svc, repo, pub := newTestService()
	return NewHandler(svc), repo, pub
}

func newRequestContext(method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if userID != "" {
		req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestStartConversationHandler_NoSession(t *testing.T) {
	h, _, _ := newTestHandler()
	c, _ := newRequestContext(http.MethodPost, "/conversations", `{"peer_id":"zara"}`, "")

	err := h.StartConversation(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestStartConversationHandler_Self(t *testing.T) {
	h, _, _ := newTestHandler()
	c, _ := newRequestContext(http.MethodPost, "/conversations", `{"peer_id":"adam"}`, "adam")

	err := h.StartConversation(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestStartConversationHandler_Created(t *testing.T) {
	h, _, _ := newTestHandler()
	c, rec := newRequestContext(http.MethodPost, "/conversations", `{"peer_id":"zara"}`, "adam")

	if err := h.StartConversation(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got Conversation
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.User1ID != "adam" || got.User2ID != "zara" {
		t.Errorf("unexpected conversation: %+v", got)
	}
}

func TestSendMessageHandler_Created(t *testing.T) {
	h, _, pub := newTestHandler()
	conv, err := h.svc.StartConversation(context.Background(), "adam", "zara")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, rec := newRequestContext(http.MethodPost, "/conversations/x/messages",
		`{"content":"hello"}`, "adam")
	c.SetParamNames("id")
	c.SetParamValues(conv.ID.String())

	if err := h.SendMessage(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(pub.events) != 1 {
		t.Errorf("expected one published event, got %d", len(pub.events))
	}
}

func TestSendMessageHandler_EmptyContent(t *testing.T) {
	h, _, _ := newTestHandler()
	conv, err := h.svc.StartConversation(context.Background(), "adam", "zara")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, _ := newRequestContext(http.MethodPost, "/conversations/x/messages", `{"content":""}`, "adam")
	c.SetParamNames("id")
	c.SetParamValues(conv.ID.String())

	sendErr := h.SendMessage(c)
	httpErr, ok := sendErr.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", sendErr)
	}
}

func TestListMessagesHandler_OutsiderGets404(t *testing.T) {
	h, _, _ := newTestHandler()
	conv, err := h.svc.StartConversation(context.Background(), "adam", "zara")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, _ := newRequestContext(http.MethodGet, "/conversations/x/messages", "", "mallory")
	c.SetParamNames("id")
	c.SetParamValues(conv.ID.String())

	listErr := h.ListMessages(c)
	httpErr, ok := listErr.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a non-participant, got %v", listErr)
	}
}

func TestMarkMessageReadHandler_SenderGets404(t *testing.T) {
	h, _, _ := newTestHandler()
	conv, err := h.svc.StartConversation(context.Background(), "adam", "zara")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := h.svc.SendMessage(context.Background(), "adam", conv.ID, "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, _ := newRequestContext(http.MethodPut, "/messages/x/read", "", "adam")
	c.SetParamNames("id")
	c.SetParamValues(m.ID.String())

	readErr := h.MarkMessageRead(c)
	httpErr, ok := readErr.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for the sender, got %v", readErr)
	}
}

func TestMarkMessageReadHandler_Recipient(t *testing.T) {
	h, _, _ := newTestHandler()
	conv, err := h.svc.StartConversation(context.Background(), "adam", "zara")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := h.svc.SendMessage(context.Background(), "adam", conv.ID, "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, rec := newRequestContext(http.MethodPut, "/messages/x/read", "", "zara")
	c.SetParamNames("id")
	c.SetParamValues(m.ID.String())

	if err := h.MarkMessageRead(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got Message
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !got.IsRead {
		t.Error("expected the message to be marked read")
	}
}

func TestListConversationsHandler_NoSession(t *testing.T) {
	h, _, _ := newTestHandler()
	c, _ := newRequestContext(http.MethodGet, "/conversations", "", "")

	err := h.ListConversations(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
