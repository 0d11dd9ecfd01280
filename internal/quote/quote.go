// Package quote fetches a short motivational message for the dashboard.
// The remote call is strictly best-effort: any failure falls back to one of
// the built-in messages and is never surfaced as an error to the user.
package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/duartev/pioneiro/internal/model"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// FallbackMessages are shown when the remote provider is unavailable.
var FallbackMessages = []string{
	"“Pois Deus não é injusto para se esquecer da vossa obra e do amor que mostrastes ao seu nome.” — Hebreus 6:10",
	"“Ide, portanto, e fazei discípulos de pessoas de todas as nações.” — Mateus 28:19",
	"“E estas boas novas do Reino serão pregadas em toda a terra habitada.” — Mateus 24:14",
	"“Então ouvi a voz de Jeová dizer: ‘Quem enviarei...?’. Eu disse: ‘Aqui estou! Envia-me!’” — Isaías 6:8",
	"“Torna-te exemplo para os fiéis no falar, na conduta, no amor, na fé, na castidade.” — 1 Timóteo 4:12",
	"“A alegria de Jeová é a vossa fortaleza.” — Neemias 8:10",
	"“Portanto, meus amados irmãos, sede constantes, inabaláveis, tendo sempre bastante para fazer na obra do Senhor.” — 1 Coríntios 15:58",
}

// Fallback returns one of the built-in messages.
func Fallback() string {
	return FallbackMessages[rand.Intn(len(FallbackMessages))]
}

// Client calls the Gemini generateContent API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient creates a quote client. An empty apiKey produces a client whose
// Get always falls back locally.
func NewClient(apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

// WithBaseURL overrides the API endpoint, for tests.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = strings.TrimRight(u, "/")
	return c
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

// generateRequest is the Gemini generateContent request body.
type generateRequest struct {
	Contents []content `json:"contents"`
}

// generateResponse is the subset of the Gemini response we read.
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func buildPrompt(name string, pioneerType model.PioneerType) string {
	return fmt.Sprintf(
		"Escreva uma mensagem curta e encorajadora (máximo 150 caracteres) para um pioneiro %s chamado %s "+
			"sobre o ministério de campo das Testemunhas de Jeová. É OBRIGATÓRIO que se houver citações bíblicas, "+
			"elas sejam baseadas exclusivamente na 'Tradução do Novo Mundo das Escrituras Sagradas'. "+
			"Use um tom motivador em português de Portugal.",
		pioneerType, name)
}

// Get returns an encouragement message for the user. On any failure — no key,
// network error, non-2xx status, empty response — it returns a fallback
// message; the error return exists only so callers can log it.
func (c *Client) Get(ctx context.Context, name string, pioneerType model.PioneerType) (string, error) {
	if c.apiKey == "" {
		return Fallback(), nil
	}

	msg, err := c.generate(ctx, buildPrompt(name, pioneerType))
	if err != nil || msg == "" {
		return Fallback(), err
	}
	return msg, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("quote API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("quote API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), nil
}
