package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAdminToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		configured string
		header     string
		wantStatus int
	}{
		{name: "valid token", configured: "s3cret", header: "s3cret", wantStatus: http.StatusOK},
		{name: "missing token", configured: "s3cret", wantStatus: http.StatusForbidden},
		{name: "wrong token", configured: "s3cret", header: "s3cre", wantStatus: http.StatusForbidden},
		{name: "no token configured", header: "anything", wantStatus: http.StatusForbidden},
		{name: "no token configured and none sent", wantStatus: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/admin/replay", AdminToken(tc.configured), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/admin/replay", nil)
			if tc.header != "" {
				req.Header.Set(AdminTokenHeader, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}
