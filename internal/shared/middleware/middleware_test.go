package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(handlers...)
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetSessionID(c)+"|"+GetRequestID(c))
	})
	return engine
}

func TestRequestID(t *testing.T) {
	engine := newEngine(RequestID())
	existing := uuid.NewString()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "valid inbound id is kept", header: existing, wantSame: true},
		{name: "missing id is generated", header: ""},
		{name: "garbage id is replaced", header: "not-an-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("response request id %q is not a uuid", got)
			}
			if tt.wantSame && got != tt.header {
				t.Errorf("request id = %q, want %q", got, tt.header)
			}
			if !tt.wantSame && got == tt.header {
				t.Errorf("request id %q should have been replaced", got)
			}
		})
	}
}

func TestSessionIssuesAndReusesCookie(t *testing.T) {
	engine := newEngine(Session(SessionOptions{CookieName: "qs", MaxAge: 60}))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "qs" {
		t.Fatalf("cookies = %v, want one qs cookie", cookies)
	}
	issued := cookies[0].Value
	if uuid.Validate(issued) != nil {
		t.Fatalf("issued session %q is not a uuid", issued)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "qs", Value: issued})
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if got := w.Body.String(); got != issued+"|" {
		t.Errorf("body = %q, want session %q reused", got, issued)
	}
}

func TestSessionReplacesMalformedCookie(t *testing.T) {
	engine := newEngine(Session(SessionOptions{CookieName: "qs", MaxAge: 60}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "qs", Value: "../../etc"})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value == "../../etc" {
		t.Fatalf("malformed session cookie was not replaced: %v", cookies)
	}
}
