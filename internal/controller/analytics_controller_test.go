package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", url, nil)
	return ctx
}

func TestQueryIntDefault(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int
	}{
		{"missing falls back to config default", "/api/reports/courses/popular", 10},
		{"explicit value wins", "/api/reports/courses/popular?limit=5", 5},
		{"non-numeric falls back", "/api/reports/courses/popular?limit=abc", 10},
		{"non-positive falls back", "/api/reports/courses/popular?limit=0", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t, tt.url)
			if got := queryIntDefault(ctx, "limit", 10); got != tt.want {
				t.Errorf("queryIntDefault = %d, want %d", got, tt.want)
			}
		})
	}
}
