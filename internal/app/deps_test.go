package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tf-trivia/internal/bedrock"
	"tf-trivia/internal/config"
	"tf-trivia/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildAdapter(t *testing.T) {
	tests := []struct {
		deployment Deployment
		modelID    string
		wantName   string
		wantModel  string
		wantErr    bool
	}{
		{DeploymentCompletion, "", "completion", llm.DefaultCompletionModel, false},
		{DeploymentChat, "", "chat", llm.DefaultChatModel, false},
		{DeploymentChat, "anthropic.claude-3-5-haiku-20241022-v1:0", "chat", "anthropic.claude-3-5-haiku-20241022-v1:0", false},
		{Deployment("bogus"), "", "", "", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.deployment), func(t *testing.T) {
			a, err := buildAdapter(tt.deployment, tt.modelID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, a.Name())
			assert.Equal(t, tt.wantModel, a.ModelID())
		})
	}
}

func get(t *testing.T, h http.Handler, path string) map[string]any {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestHandlerEndToEndCompletion(t *testing.T) {
	api := new(bedrock.MockAPI)
	api.On("InvokeModel", mock.Anything, mock.MatchedBy(func(in *bedrockruntime.InvokeModelInput) bool {
		return aws.ToString(in.ModelId) == llm.DefaultCompletionModel && strings.Contains(string(in.Body), `"stopSequences"`)
	})).Return(&bedrockruntime.InvokeModelOutput{
		Body: []byte(`{"results":[{"outputText":"What is a Terraform provider? It is a plugin.","completionReason":"STOP_CRITERIA_MET"}]}`),
	}, nil).Once()

	deps := Wire(config.Config{}, testLogger(), bedrock.NewWithAPI(api, testLogger()), llm.NewCompletionAdapter(""))

	body := get(t, deps.Handler(), "/api/question")
	assert.Equal(t, "What is a Terraform provider?", body["question"])
	api.AssertExpectations(t)
}

func TestHandlerEndToEndChat(t *testing.T) {
	api := new(bedrock.MockAPI)
	api.On("InvokeModel", mock.Anything, mock.MatchedBy(func(in *bedrockruntime.InvokeModelInput) bool {
		return aws.ToString(in.ModelId) == llm.DefaultChatModel && strings.Contains(string(in.Body), `"anthropic_version":"bedrock-2023-05-31"`)
	})).Return(&bedrockruntime.InvokeModelOutput{
		Body: []byte(`{"type":"message","role":"assistant","content":[{"type":"text","text":"Correct"}],"stop_reason":"end_turn"}`),
	}, nil).Once()

	deps := Wire(config.Config{}, testLogger(), bedrock.NewWithAPI(api, testLogger()), llm.NewChatAdapter(""))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(`{"question":"What does terraform init do?","answer":"Downloads providers"}`))
	req.Header.Set("Content-Type", "application/json")
	deps.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"feedback":"Correct"}`, w.Body.String())
	api.AssertExpectations(t)
}

func TestHandlerDegraded(t *testing.T) {
	deps := Wire(config.Config{}, testLogger(), bedrock.NewWithAPI(nil, testLogger()), llm.NewChatAdapter(""))
	h := deps.Handler()

	assert.Equal(t, "I can't get the question", get(t, h, "/api/question")["question"])
	assert.Equal(t, "No Bedrock client", get(t, h, "/api/test-bedrock")["error"])
	assert.Equal(t, "ok", get(t, h, "/api/healthcheck")["status"])
}

func TestHandlerExposesMetrics(t *testing.T) {
	deps := Wire(config.Config{}, testLogger(), bedrock.NewWithAPI(nil, testLogger()), llm.NewCompletionAdapter(""))
	h := deps.Handler()
	get(t, h, "/api/question")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "trivia_fallback_responses_total")
}
