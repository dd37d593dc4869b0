package integration

import (
	"context"
	"hash/fnv"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/adapters/outbound/modelrunner"
	json "github.com/goccy/go-json"
)

const embeddingDimension = 64

// initFakeModelRunner serves the model runner API from memory and points LLM_MODEL_HOST at it.
// Embeddings are bag-of-words vectors, so texts sharing words end up close to each other.
type initFakeModelRunner struct {
	server          *httptest.Server
	chatCalls       atomic.Int64
	embeddingsCalls atomic.Int64
}

func (i *initFakeModelRunner) Initialize(ctx context.Context) (context.Context, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /engines/v1/embeddings", i.embeddings)
	mux.HandleFunc("POST /v1/chat/completions", i.chat)
	i.server = httptest.NewServer(mux)

	os.Setenv("LLM_MODEL_HOST", i.server.URL) //nolint:errcheck
	return ctx, nil
}

func (i *initFakeModelRunner) Close() {
	if i.server != nil {
		i.server.Close()
	}
	os.Unsetenv("LLM_MODEL_HOST") //nolint:errcheck
}

func (i *initFakeModelRunner) embeddings(w http.ResponseWriter, r *http.Request) {
	i.embeddingsCalls.Add(1)

	var req modelrunner.EmbeddingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var inputs []string
	switch v := req.Input.(type) {
	case string:
		inputs = []string{v}
	case []any:
		for _, s := range v {
			if str, ok := s.(string); ok {
				inputs = append(inputs, str)
			}
		}
	}

	resp := modelrunner.EmbeddingsResponse{Model: req.Model, Object: "list"}
	for idx, text := range inputs {
		resp.Data = append(resp.Data, modelrunner.EmbeddingData{
			Embedding: bagOfWords(text),
			Index:     idx,
			Object:    "embedding",
		})
		resp.Usage.PromptTokens += len(strings.Fields(text))
	}
	resp.Usage.TotalTokens = resp.Usage.PromptTokens

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp) //nolint:errcheck
}

func (i *initFakeModelRunner) chat(w http.ResponseWriter, r *http.Request) {
	i.chatCalls.Add(1)

	var req modelrunner.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := modelrunner.ChatResponse{
		ID:     "chatcmpl-integration",
		Object: "chat.completion",
		Model:  req.Model,
		Choices: []modelrunner.Choice{{
			FinishReason: "stop",
			Message: modelrunner.ChatMessage{
				Role:    "assistant",
				Content: "A thoughtful pick for this viewer.",
			},
		}},
		Usage: &modelrunner.Usage{PromptTokens: 10, CompletionTokens: 7, TotalTokens: 17},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp) //nolint:errcheck
}

func bagOfWords(text string) []float64 {
	vec := make([]float64, embeddingDimension)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,;:!?\"'()")
		if word == "" {
			continue
		}
		h := fnv.New32a()
		h.Write([]byte(word)) //nolint:errcheck
		vec[h.Sum32()%embeddingDimension]++
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		vec[0] = 1
		return vec
	}
	norm = math.Sqrt(norm)
	for k := range vec {
		vec[k] /= norm
	}
	return vec
}
