package analyses

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-backend/internal/extract"
)

type errorPayload struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newAnalysesRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := NewService(NewMemoryRepo(10), extract.New(nil))
	NewHandler(svc, 1<<20).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeHandlerCreatesAndFetches(t *testing.T) {
	r := newAnalysesRouter()

	resp := postJSON(r, "/api/v1/analyses", map[string]string{
		"resumeText":     reactResume,
		"jobDescription": "Looking for a React engineer with REST API and AWS cloud experience.",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created Analysis
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)
	assert.GreaterOrEqual(t, created.Report.MatchPercentage, 80)

	getResp := httptest.NewRecorder()
	r.ServeHTTP(getResp, httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+created.ID, nil))
	require.Equal(t, http.StatusOK, getResp.Code)

	var fetched Analysis
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Report.MatchPercentage, fetched.Report.MatchPercentage)
}

func TestAnalyzeHandlerValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    map[string]string
		message string
	}{
		{name: "missing_resume", body: map[string]string{"jobDescription": "Go"}, message: "Please provide resume content"},
		{name: "missing_job", body: map[string]string{"resumeText": reactResume, "jobDescription": "  "}, message: "Please provide a job description"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(newAnalysesRouter(), "/api/v1/analyses", tc.body)

			require.Equal(t, http.StatusBadRequest, resp.Code)
			var payload errorPayload
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
			assert.Equal(t, "validation_error", payload.Error.Code)
			assert.Equal(t, tc.message, payload.Error.Message)
		})
	}
}

func TestAnalyzeHandlerRejectsMalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	newAnalysesRouter().ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetAnalysisNotFound(t *testing.T) {
	resp := httptest.NewRecorder()
	newAnalysesRouter().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/analyses/unknown", nil))

	require.Equal(t, http.StatusNotFound, resp.Code)
	var payload errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "not_found", payload.Error.Code)
}

func uploadBody(t *testing.T, fileName string, data []byte, jobDescription string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	w, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("jobDescription", jobDescription))
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestAnalyzeUploadHandler(t *testing.T) {
	cases := []struct {
		name     string
		fileName string
		data     string
		job      string
		status   int
		code     string
	}{
		{name: "ok", fileName: "cv.txt", data: reactResume, job: "React engineer", status: http.StatusCreated},
		{name: "blank_document", fileName: "cv.txt", data: "  \n ", job: "React engineer", status: http.StatusUnprocessableEntity, code: "no_text_found"},
		{name: "missing_job", fileName: "cv.txt", data: reactResume, status: http.StatusBadRequest, code: "validation_error"},
		{name: "image_without_ocr", fileName: "cv.png", data: "png", job: "React engineer", status: http.StatusServiceUnavailable, code: "ocr_unavailable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, contentType := uploadBody(t, tc.fileName, []byte(tc.data), tc.job)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/upload", body)
			req.Header.Set("Content-Type", contentType)
			resp := httptest.NewRecorder()

			newAnalysesRouter().ServeHTTP(resp, req)

			require.Equal(t, tc.status, resp.Code, resp.Body.String())
			if tc.code == "" {
				var created Analysis
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
				assert.Equal(t, tc.fileName, created.SourceFile)
				return
			}
			var payload errorPayload
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
			assert.Equal(t, tc.code, payload.Error.Code)
		})
	}
}
