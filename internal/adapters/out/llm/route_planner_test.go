package llm_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fulfillment/internal/adapters/out/llm"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatRoutePlanner(t *testing.T) {
	t.Run("requires base URL and model", func(t *testing.T) {
		_, err := llm.NewChatRoutePlanner("", "key", "gpt-4o-mini")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = llm.NewChatRoutePlanner("https://api.openai.com/v1", "key", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("api key is optional for local endpoints", func(t *testing.T) {
		_, err := llm.NewChatRoutePlanner("http://localhost:11434/v1", "", "llama3")
		require.NoError(t, err)
	})
}

func TestChatRoutePlanner_PlanRoute(t *testing.T) {
	t.Run("sends stops and returns the model answer", func(t *testing.T) {
		var captured struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/chat/completions", r.URL.Path)
			require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"1. Depot\n2. 123 Orchard Road\n"}}]}`))
		}))
		defer server.Close()

		planner, err := llm.NewChatRoutePlanner(server.URL+"/v1", "test-key", "gpt-4o-mini")
		require.NoError(t, err)

		route, err := planner.PlanRoute(t.Context(), "8 Simei Street", []string{"123 Orchard Road"})
		require.NoError(t, err)
		assert.Equal(t, "1. Depot\n2. 123 Orchard Road", route)

		assert.Equal(t, "gpt-4o-mini", captured.Model)
		require.Len(t, captured.Messages, 2)
		assert.Contains(t, captured.Messages[1].Content, "8 Simei Street")
		assert.Contains(t, captured.Messages[1].Content, "123 Orchard Road")
	})

	t.Run("rejects empty address list without calling the API", func(t *testing.T) {
		planner, err := llm.NewChatRoutePlanner("http://localhost:1/v1", "", "llama3")
		require.NoError(t, err)

		_, err = planner.PlanRoute(t.Context(), "8 Simei Street", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("surfaces API errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
		}))
		defer server.Close()

		planner, err := llm.NewChatRoutePlanner(server.URL, "bad-key", "gpt-4o-mini")
		require.NoError(t, err)

		_, err = planner.PlanRoute(t.Context(), "8 Simei Street", []string{"123 Orchard Road"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid api key")
	})
}
