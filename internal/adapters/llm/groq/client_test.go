package groq_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Siddhartha1011/AI-Astrologer/internal/adapters/llm/groq"
	"github.com/Siddhartha1011/AI-Astrologer/internal/domain"
)

func completion(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
}

func TestClient_Generate_Success(t *testing.T) {
	var gotReq map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify method and path.
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		// Verify headers.
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotReq)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completion("\n  The stars align.  \n"))
	}))
	defer srv.Close()

	client := groq.NewClient("test-key", srv.URL+"/", "test-model", 0, zaptest.NewLogger(t))

	out, err := client.Generate(context.Background(), "Tell me about Leo.")
	require.NoError(t, err)
	assert.Equal(t, "The stars align.", out)

	assert.Equal(t, "test-model", gotReq["model"])
	assert.Equal(t, 0.7, gotReq["temperature"])
	assert.Equal(t, 0.9, gotReq["top_p"])
	assert.Equal(t, float64(800), gotReq["max_tokens"])

	msgs, ok := gotReq["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, map[string]any{"role": "system", "content": "You are an expert astrologer."}, msgs[0])
	assert.Equal(t, map[string]any{"role": "user", "content": "Tell me about Leo."}, msgs[1])
}

func TestClient_Generate_SingleAttemptOnError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	client := groq.NewClient("key", srv.URL, "model", 0, zaptest.NewLogger(t))

	_, err := client.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, domain.ErrUpstreamLLM)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Generate_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := groq.NewClient("key", srv.URL, "model", 0, zaptest.NewLogger(t))

	_, err := client.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, domain.ErrUpstreamLLM)
}

func TestClient_Generate_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`this is not json at all`))
	}))
	defer srv.Close()

	client := groq.NewClient("key", srv.URL, "model", 0, zaptest.NewLogger(t))

	_, err := client.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, domain.ErrUpstreamLLM)
}

func TestClient_Generate_BlankContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(completion("   "))
	}))
	defer srv.Close()

	client := groq.NewClient("key", srv.URL, "model", 0, zaptest.NewLogger(t))

	_, err := client.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, domain.ErrEmptyCompletion)
}

func TestClient_Generate_NotConfigured(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls.Add(1) }))
	defer srv.Close()

	client := groq.NewClient("", srv.URL, "model", 0, zaptest.NewLogger(t))

	_, err := client.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, domain.ErrLLMNotConfigured)
	assert.Equal(t, int32(0), calls.Load())
}
