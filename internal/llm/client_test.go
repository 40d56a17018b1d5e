package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pykids-service/internal/models"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, "test-key", "llama3-70b-8192")
	return client, server
}

func TestGenerateChoicesResponse(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Unexpected Authorization header: %s", got)
		}

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Messages[0].Role != "system" {
			t.Errorf("Expected system prompt first, got %s", req.Messages[0].Role)
		}
		if last := req.Messages[len(req.Messages)-1]; last.Role != "user" || last.Content != "O que é uma lista?" {
			t.Errorf("Expected user message last, got %+v", last)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Uma lista guarda vários valores! 📋"}}]}`))
	})
	defer server.Close()

	text, err := client.Generate(context.Background(), "O que é uma lista?", nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "Uma lista guarda vários valores! 📋" {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestGenerateNormalizesFlatVariants(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{"response field", `{"response":"print() mostra texto!"}`, "print() mostra texto!"},
		{"message field", `{"message":"for repete código!"}`, "for repete código!"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tc.body))
			})
			defer server.Close()

			text, err := client.Generate(context.Background(), "pergunta", nil)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if text != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, text)
			}
		})
	}
}

func TestGenerateIncludesHistory(t *testing.T) {
	history := []models.ChatMessage{
		{Role: models.RoleAssistant, Content: "Olá!"},
		{Role: models.RoleUser, Content: "O que é print?"},
		{Role: models.RoleAssistant, Content: "Mostra texto na tela."},
	}

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		// system + 3 history turns + new user message
		if len(req.Messages) != 5 {
			t.Errorf("Expected 5 messages, got %d", len(req.Messages))
		}
		w.Write([]byte(`{"response":"ok"}`))
	})
	defer server.Close()

	if _, err := client.Generate(context.Background(), "E depois?", history); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
}

func TestGenerateFailures(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`},
		{"rate limited", http.StatusTooManyRequests, `{"error":"slow down"}`},
		{"malformed body", http.StatusOK, `{not json`},
		{"empty payload", http.StatusOK, `{}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})
			defer server.Close()

			if _, err := client.Generate(context.Background(), "pergunta", nil); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestGenerateConnectionRefused(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	server.Close() // refuse connections

	if _, err := client.Generate(context.Background(), "pergunta", nil); err == nil {
		t.Error("Expected a transport error")
	}
}
