package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pykids-service/internal/models"
)

// SystemPrompt is the fixed instruction constraining the model to the
// Professor Sandero persona and topic. Prompt construction is static; it is
// not session state.
const SystemPrompt = `Você é o Professor Sandero, um professor de programação Python especialista em ensinar crianças de 8 a 14 anos.

PERSONALIDADE:
- Divertido, paciente e entusiasmado
- Usa linguagem simples e acessível para crianças
- Sempre elogia o esforço das crianças
- Faz analogias com coisas do dia a dia das crianças
- Usa emojis ocasionalmente para deixar as explicações mais divertidas

REGRAS IMPORTANTES:
1. SÓ responda sobre Python, programação e lógica de programação
2. Se perguntarem sobre outros assuntos, gentilmente redirecione para Python
3. Sempre explique conceitos com exemplos práticos e simples
4. Incentive as crianças a experimentar e não ter medo de errar
5. Use exemplos do mundo infantil (jogos, brinquedos, animais, etc.)

FORMATO DAS RESPOSTAS:
- Seja conciso mas completo
- Use exemplos de código simples
- Explique cada linha de código quando necessário
- Termine sempre motivando a criança a continuar aprendendo

Lembre-se: você está falando com crianças, então seja paciente e divertido!`

type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Model      string
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
	}
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	MaxTokens   int                     `json:"max_tokens"`
	Temperature float64                 `json:"temperature"`
	Stream      bool                    `json:"stream"`
}

// chatCompletionResponse covers both response shapes the tutor endpoints
// produce: the OpenAI-style choices array and the flat
// {"response": ...} / {"message": ...} variants.
type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
	Response string `json:"response"`
	Message  string `json:"message"`
}

// Generate sends one tutor request carrying the new message and the prior
// conversation turns. Any transport error, non-2xx status or malformed
// body is returned as a plain error for the caller's fallback path.
func (c *Client) Generate(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	messages := make([]chatCompletionMessage, 0, len(history)+2)
	messages = append(messages, chatCompletionMessage{Role: "system", Content: SystemPrompt})
	for _, turn := range history {
		messages = append(messages, chatCompletionMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, chatCompletionMessage{Role: "user", Content: message})

	request := chatCompletionRequest{
		Model:       c.Model,
		Messages:    messages,
		MaxTokens:   1000,
		Temperature: 0.7,
		Stream:      false,
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("tutor API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse response: %v", err)
	}

	text := normalize(response)
	if text == "" {
		return "", fmt.Errorf("tutor API returned an empty response")
	}
	return text, nil
}

// normalize reduces the endpoint variants to one text field.
func normalize(r chatCompletionResponse) string {
	if len(r.Choices) > 0 && r.Choices[0].Message.Content != "" {
		return r.Choices[0].Message.Content
	}
	if r.Response != "" {
		return r.Response
	}
	return r.Message
}
