package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"portfolio-backend/config"
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/smithy-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	calls []*sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.calls = append(f.calls, params)
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

type testServer struct {
	router *gin.Engine
	ses    *fakeSES
	logs   *bytes.Buffer
}

func newTestServer(t *testing.T, limit int) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logs := &bytes.Buffer{}
	prev := logger.Log
	logger.Log = logger.New(logs, slog.LevelDebug)
	t.Cleanup(func() { logger.Log = prev })

	ses := &fakeSES{}
	notifier, err := email.NewNotifier(email.NewSESSender(ses), email.Config{
		Recipient: "owner@example.com",
		Sender:    "noreply@example.com",
	})
	require.NoError(t, err)

	cfg := &config.Config{
		AllowedOrigins:                []string{"https://portfolio.example.com"},
		ContactRateLimit:              limit,
		ContactRateLimitWindowSeconds: 600,
	}

	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: usecase.NewContactUsecase(notifier, validation.New(), logger.Log),
		ProjectUC: usecase.NewProjectUsecase([]domain.Project{
			{Title: "Notes", Tags: []string{"Svelte"}},
			{Title: "Portfolio", Tags: []string{"Astro"}},
		}),
		HealthUC: usecase.NewHealthUsecase(nil),
		Config:   cfg,
	})

	return &testServer{router: router, ses: ses, logs: logs}
}

func (s *testServer) postForm(values url.Values, remoteAddr string) *httptest.ResponseRecorder {
	return s.postFormForwarded(values, remoteAddr, "")
}

func (s *testServer) postFormForwarded(values url.Values, remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type apiResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Error     map[string]string `json:"error"`
	RequestID string            `json:"request_id"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var body apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func validValues() url.Values {
	return url.Values{
		"name":        {"Ann Smith"},
		"email":       {"ann@example.org"},
		"projectType": {"Website"},
		"message":     {"I would like a new website."},
	}
}

func TestSubmitContact(t *testing.T) {
	t.Run("Should send one email to the configured recipient", func(t *testing.T) {
		s := newTestServer(t, 1000)

		w := s.postForm(validValues(), "")

		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.True(t, body.Success)
		assert.Equal(t, usecase.MsgContactSent, body.Message)
		assert.NotEmpty(t, body.RequestID)

		require.Len(t, s.ses.calls, 1)
		assert.Equal(t, []string{"owner@example.com"}, s.ses.calls[0].Destination.ToAddresses)
		assert.Equal(t, []string{"ann@example.org"}, s.ses.calls[0].ReplyToAddresses)
	})

	t.Run("Should accept JSON bodies with null fields as missing", func(t *testing.T) {
		s := newTestServer(t, 1000)

		req := httptest.NewRequest(http.MethodPost, "/v1/contact",
			strings.NewReader(`{"name":null,"email":"ann@example.org","message":"1234567890"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.Equal(t, map[string]string{"name": "Name is required"}, body.Error)
		assert.Empty(t, s.ses.calls)
	})

	t.Run("Should return every field error and skip sending", func(t *testing.T) {
		s := newTestServer(t, 1000)

		w := s.postForm(url.Values{"email": {"not-an-email"}, "message": {"short"}}, "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.False(t, body.Success)
		assert.Equal(t, usecase.MsgContactInvalid, body.Message)
		assert.Equal(t, map[string]string{
			"name":    "Name is required",
			"email":   "Please enter a valid email address",
			"message": "Message must be at least 10 characters",
		}, body.Error)
		assert.Empty(t, s.ses.calls)
	})

	t.Run("Should escape markup in the sent HTML body", func(t *testing.T) {
		s := newTestServer(t, 1000)

		w := s.postForm(url.Values{
			"name":    {"<script>alert(1)</script>"},
			"email":   {"a@b.com"},
			"message": {"1234567890"},
		}, "")

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, s.ses.calls, 1)
		html := aws.ToString(s.ses.calls[0].Content.Simple.Body.Html.Data)
		assert.Contains(t, html, "&lt;script&gt;")
		assert.NotContains(t, html, "<script>")
	})

	t.Run("Should hide provider errors from the visitor", func(t *testing.T) {
		s := newTestServer(t, 1000)
		s.ses.err = &smithy.GenericAPIError{Code: "MessageRejected", Message: "Email address is not verified: owner@example.com"}

		w := s.postForm(validValues(), "")

		require.Equal(t, http.StatusBadGateway, w.Code)
		body := decode(t, w)
		assert.False(t, body.Success)
		assert.Equal(t, usecase.MsgContactFailed, body.Message)
		assert.NotEqual(t, usecase.MsgContactInvalid, body.Message)
		assert.NotContains(t, w.Body.String(), "MessageRejected")
		assert.NotContains(t, w.Body.String(), "not verified")

		assert.Contains(t, s.logs.String(), "MessageRejected")
		assert.NotContains(t, s.logs.String(), "I would like a new website.")
	})

	t.Run("Should rate limit repeated submissions per client", func(t *testing.T) {
		s := newTestServer(t, 2)
		addr := "203.0.113.77:4242"

		assert.Equal(t, http.StatusOK, s.postForm(validValues(), addr).Code)
		assert.Equal(t, http.StatusOK, s.postForm(validValues(), addr).Code)

		w := s.postForm(validValues(), addr)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		assert.Len(t, s.ses.calls, 2)
	})

	t.Run("Should ignore X-Forwarded-For from untrusted peers when rate limiting", func(t *testing.T) {
		s := newTestServer(t, 2)
		addr := "198.51.100.9:1234"

		assert.Equal(t, http.StatusOK, s.postFormForwarded(validValues(), addr, "10.9.9.0").Code)
		assert.Equal(t, http.StatusOK, s.postFormForwarded(validValues(), addr, "10.9.9.1").Code)

		w := s.postFormForwarded(validValues(), addr, "10.9.9.2")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Len(t, s.ses.calls, 2)
	})
}

func TestListProjects(t *testing.T) {
	s := newTestServer(t, 1000)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects?tag=astro", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []domain.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Portfolio", body.Data[0].Title)
}

func TestHealthAndMiddleware(t *testing.T) {
	s := newTestServer(t, 1000)

	t.Run("Should report health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
		assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	})

	t.Run("Should answer preflight only for allowed origins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/contact", nil)
		req.Header.Set("Origin", "https://portfolio.example.com")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://portfolio.example.com", w.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodOptions, "/v1/contact", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w = httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should replace malformed request ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
		req.Header.Set("X-Request-ID", "bad id\nwith newline")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		assert.NotEqual(t, "bad id\nwith newline", w.Header().Get("X-Request-ID"))
		assert.Len(t, w.Header().Get("X-Request-ID"), 36)
	})
}
