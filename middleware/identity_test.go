package middleware

import (
	ctx "BrainRotBGone/pkg/context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinZap(), Identity())
	r.GET("/who", func(c *gin.Context) {
		uid, err := ctx.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id":   uid,
			"has_user":  err == nil,
			"viewer_id": ctx.GetViewerID(c),
		})
	})
	return r
}

func TestIdentity(t *testing.T) {
	r := newIdentityEngine(t)

	cases := []struct {
		query  string
		status int
		body   string
	}{
		{"", http.StatusOK, `{"has_user":false,"user_id":0,"viewer_id":0}`},
		{"?user_id=7", http.StatusOK, `{"has_user":true,"user_id":7,"viewer_id":0}`},
		{"?current_user_id=3", http.StatusOK, `{"has_user":false,"user_id":0,"viewer_id":3}`},
		{"?user_id=7&current_user_id=3", http.StatusOK, `{"has_user":true,"user_id":7,"viewer_id":3}`},
		{"?user_id=abc", http.StatusBadRequest, `{"detail":"user_id must be a positive integer"}`},
		{"?current_user_id=-1", http.StatusBadRequest, `{"detail":"current_user_id must be a positive integer"}`},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/who"+tc.query, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, tc.status, w.Code, tc.query)
		assert.JSONEq(t, tc.body, w.Body.String(), tc.query)
		require.NotEmpty(t, w.Header().Get(RequestIDHeader))
	}
}

func TestGinZap_KeepsIncomingRequestID(t *testing.T) {
	r := newIdentityEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set(RequestIDHeader, "abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, w.Body.String())
}
