package interview

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInterviewRouter(chat ChatClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc, _ := newTestService(chat)
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func send(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func errorCode(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload.Error.Code
}

func TestInterviewFlowHandlers(t *testing.T) {
	chat := &fakeChat{replies: []string{questionReply, "Assume sorted input.", validScorecard}}
	r := newInterviewRouter(chat)

	resp := send(r, http.MethodPost, "/api/v1/interview/questions", `{"difficulty":"Easy","language":"JavaScript"}`)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var created struct {
		ID          string   `json:"id"`
		Template    string   `json:"template"`
		Question    Question `json:"question"`
		RemainingMs int64    `json:"remainingMs"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "function solution() {\n  \n}", created.Template)
	assert.Equal(t, int64(45*60*1000), created.RemainingMs)

	resp = send(r, http.MethodPost, "/api/v1/interview/sessions/"+created.ID+"/clarify", `{"question":"Sorted?"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Assume sorted input.")

	resp = send(r, http.MethodPost, "/api/v1/interview/sessions/"+created.ID+"/evaluate", `{"code":"function solution() { return 1 }"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	var eval Evaluation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&eval))
	assert.Equal(t, "Hire", eval.Scorecard.Verdict)

	resp = send(r, http.MethodGet, "/api/v1/interview/sessions/"+created.ID, "")
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestInterviewHandlerErrors(t *testing.T) {
	cases := []struct {
		name   string
		chat   ChatClient
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{name: "chat_unavailable", chat: PlaceholderClient{}, method: http.MethodPost, path: "/api/v1/interview/questions", status: http.StatusServiceUnavailable, code: "chat_unavailable"},
		{name: "generation_failed", chat: &fakeChat{replies: []string{"no"}}, method: http.MethodPost, path: "/api/v1/interview/questions", body: `{}`, status: http.StatusBadGateway, code: "generation_failed"},
		{name: "bad_difficulty", chat: &fakeChat{}, method: http.MethodPost, path: "/api/v1/interview/questions", body: `{"difficulty":"Legendary"}`, status: http.StatusBadRequest, code: "validation_error"},
		{name: "unknown_session", chat: &fakeChat{}, method: http.MethodPost, path: "/api/v1/interview/sessions/nope/evaluate", body: `{"code":"x"}`, status: http.StatusNotFound, code: "not_found"},
		{name: "malformed_body", chat: &fakeChat{}, method: http.MethodPost, path: "/api/v1/interview/sessions/nope/clarify", body: `{`, status: http.StatusBadRequest, code: "validation_error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := send(newInterviewRouter(tc.chat), tc.method, tc.path, tc.body)
			require.Equal(t, tc.status, resp.Code, resp.Body.String())
			assert.Equal(t, tc.code, errorCode(t, resp))
		})
	}
}

func TestLanguagesHandler(t *testing.T) {
	resp := send(newInterviewRouter(&fakeChat{}), http.MethodGet, "/api/v1/interview/languages", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"default":"C++"`)
}
