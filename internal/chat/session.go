// Tutor chat session: an append-only conversation with a single-flight
// guard so at most one inference call is outstanding per session.
package chat

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"pykids-service/internal/models"
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrReplyPending = errors.New("a reply is already pending")
)

// Greeting is the assistant message every new session starts with.
const Greeting = "Olá! Eu sou o Professor Sandero! 🤖 Estou aqui para te ajudar a aprender Python de forma divertida! O que você gostaria de saber sobre programação?"

// FallbackReply is appended in place of an assistant reply when the
// inference call fails. The conversation is never rolled back.
const FallbackReply = "Ops! 🤖 Estou com um probleminha técnico. Que tal tentar novamente? Adoro falar sobre Python!"

type Session struct {
	mu       sync.Mutex
	messages []models.ChatMessage
	sending  bool
}

// NewSession creates a session seeded with the greeting.
func NewSession() *Session {
	return &Session{
		messages: []models.ChatMessage{newMessage(models.RoleAssistant, Greeting)},
	}
}

// BeginSend validates the input, appends the user message and claims the
// in-flight slot. The user message stays in the history even if the reply
// later fails.
func (s *Session) BeginSend(text string) (models.ChatMessage, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sending {
		return models.ChatMessage{}, ErrReplyPending
	}
	s.sending = true

	msg := s.appendLocked(models.RoleUser, trimmed)
	return msg, nil
}

// CompleteSend appends the assistant reply and releases the in-flight slot.
func (s *Session) CompleteSend(reply string) models.ChatMessage {
	return s.finish(reply)
}

// FailSend releases the in-flight slot with the fixed fallback reply.
func (s *Session) FailSend() models.ChatMessage {
	return s.finish(FallbackReply)
}

func (s *Session) finish(content string) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := s.appendLocked(models.RoleAssistant, content)
	s.sending = false
	return msg
}

// appendLocked adds a message, nudging the timestamp forward when the clock
// has not advanced since the previous message so ordering stays strict.
func (s *Session) appendLocked(role, content string) models.ChatMessage {
	msg := newMessage(role, content)
	if n := len(s.messages); n > 0 {
		last := s.messages[n-1].CreatedAt
		if !msg.CreatedAt.After(last) {
			msg.CreatedAt = last.Add(time.Nanosecond)
		}
	}
	s.messages = append(s.messages, msg)
	return msg
}

// Sending reports whether an inference call is outstanding.
func (s *Session) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

// History returns a copy of the conversation in creation order.
func (s *Session) History() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// PriorTurns returns the conversation up to but not including the given
// message, for use as inference context.
func (s *Session) PriorTurns(before models.ChatMessage) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.messages {
		if m.ID == before.ID {
			out := make([]models.ChatMessage, i)
			copy(out, s.messages[:i])
			return out
		}
	}
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func newMessage(role, content string) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}
