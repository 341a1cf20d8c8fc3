package util

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"validation", NewValidationError("title is required"), http.StatusBadRequest, `{"message":"title is required"}`},
		{"conflict", NewConflictError("email"), http.StatusBadRequest, `{"message":"email already exists"}`},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized, `{"message":"Not authorized"}`},
		{"forbidden", ErrForbidden, http.StatusForbidden, `{"message":"Access denied: Admins only"}`},
		{"not found", ErrModuleNotFound, http.StatusNotFound, `{"message":"Module not found"}`},
		{"wrapped app error", errors.Join(errors.New("context"), ErrModuleNotFound), http.StatusNotFound, `{"message":"Module not found"}`},
		{"internal kind", &AppError{Kind: KindInternal, Message: "secret detail"}, http.StatusInternalServerError, `{"message":"Internal Server Error"}`},
		{"plain error", errors.New("connection refused"), http.StatusInternalServerError, `{"message":"Internal Server Error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
