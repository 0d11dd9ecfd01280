package quote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duartev/pioneiro/internal/model"
	"github.com/duartev/pioneiro/internal/quote"
)

func geminiResponse(text string) string {
	resp := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestGetReturnsRemoteMessage(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(geminiResponse("Continua firme no ministério!")))
	}))
	defer srv.Close()

	c := quote.NewClient("test-key", "gemini-3-flash-preview").WithBaseURL(srv.URL)
	msg, err := c.Get(context.Background(), "Maria", model.PioneerAuxiliar)
	require.NoError(t, err)
	assert.Equal(t, "Continua firme no ministério!", msg)
	assert.Equal(t, "/models/gemini-3-flash-preview:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	prompt := gotBody["contents"].([]any)[0].(map[string]any)["parts"].([]any)[0].(map[string]any)["text"].(string)
	assert.Contains(t, prompt, "Maria")
	assert.Contains(t, prompt, "Auxiliar")
}

func TestGetFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := quote.NewClient("test-key", "gemini-3-flash-preview").WithBaseURL(srv.URL)
	msg, err := c.Get(context.Background(), "Maria", model.PioneerRegular)
	assert.Error(t, err, "the error is reported for logging")
	assert.True(t, slices.Contains(quote.FallbackMessages, msg),
		"a fallback message replaces the failed remote call")
}

func TestGetFallsBackOnEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	c := quote.NewClient("test-key", "gemini-3-flash-preview").WithBaseURL(srv.URL)
	msg, err := c.Get(context.Background(), "Maria", model.PioneerRegular)
	require.NoError(t, err)
	assert.True(t, slices.Contains(quote.FallbackMessages, msg))
}

func TestGetWithoutKeyNeverCallsRemote(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := quote.NewClient("", "gemini-3-flash-preview").WithBaseURL(srv.URL)
	msg, err := c.Get(context.Background(), "Maria", model.PioneerRegular)
	require.NoError(t, err)
	assert.False(t, called)
	assert.True(t, slices.Contains(quote.FallbackMessages, msg))
}

func TestGetFallsBackOnUnreachableHost(t *testing.T) {
	c := quote.NewClient("test-key", "gemini-3-flash-preview").WithBaseURL("http://127.0.0.1:1")
	msg, err := c.Get(context.Background(), "Maria", model.PioneerRegular)
	assert.Error(t, err)
	assert.NotEmpty(t, msg)
}

func TestFallbackAlwaysReturnsAMessage(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.True(t, slices.Contains(quote.FallbackMessages, quote.Fallback()))
	}
}
