package service

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"pykids-service/internal/chat"
	"pykids-service/internal/models"
)

// FailureNotice is the transient notification shown when the tutor could
// not be reached, distinct from the fallback message in the conversation.
const FailureNotice = "Não foi possível falar com o Professor Sandero agora. Tente novamente!"

// Inference is the boundary to the hosted language model.
type Inference interface {
	Generate(ctx context.Context, message string, history []models.ChatMessage) (string, error)
}

// ChatService owns the active tutor chat sessions. One inference call per
// session at a time; failures never surface as errors to the conversation.
type ChatService struct {
	LLM Inference

	mu       sync.RWMutex
	sessions map[string]*chat.Session
}

func NewChatService(llm Inference) *ChatService {
	return &ChatService{
		LLM:      llm,
		sessions: make(map[string]*chat.Session),
	}
}

// ChatResult is the outcome of one send: the echoed user message, the
// assistant reply (real or fallback) and an optional transient notice.
type ChatResult struct {
	UserMessage models.ChatMessage `json:"user_message"`
	Reply       models.ChatMessage `json:"reply"`
	Notice      string             `json:"notice,omitempty"`
}

// StartSession opens a session seeded with the Professor's greeting.
func (s *ChatService) StartSession() (string, []models.ChatMessage) {
	id := uuid.NewString()
	sess := chat.NewSession()

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	return id, sess.History()
}

// SendMessage appends the user's message, makes exactly one inference call
// and appends the reply. On failure the fixed fallback text is appended
// instead and the session returns to idle, ready for the next send.
func (s *ChatService) SendMessage(ctx context.Context, sessionID, text string) (*ChatResult, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	userMsg, err := sess.BeginSend(text)
	if err != nil {
		return nil, err
	}

	history := sess.PriorTurns(userMsg)

	replyText, err := s.LLM.Generate(ctx, userMsg.Content, history)
	if err != nil {
		log.Printf("Tutor inference failed for session %s: %v", sessionID, err)
		reply := sess.FailSend()
		return &ChatResult{
			UserMessage: userMsg,
			Reply:       reply,
			Notice:      FailureNotice,
		}, nil
	}

	reply := sess.CompleteSend(replyText)
	return &ChatResult{
		UserMessage: userMsg,
		Reply:       reply,
	}, nil
}

// History returns the conversation in creation order.
func (s *ChatService) History(sessionID string) ([]models.ChatMessage, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.History(), nil
}

func (s *ChatService) lookup(sessionID string) (*chat.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}
