package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaintenanceHandlerSetupDatabase(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		called := false
		handler := NewMaintenanceHandler(func(ctx context.Context) error {
			called = true
			return nil
		})

		req := httptest.NewRequest(http.MethodPost, "/setup_database", nil)
		rr := httptest.NewRecorder()
		handler.SetupDatabase(rr, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"success"}`, rr.Body.String())
	})

	t.Run("reset failure returns 500", func(t *testing.T) {
		handler := NewMaintenanceHandler(func(ctx context.Context) error {
			return errors.New("migrations locked")
		})

		req := httptest.NewRequest(http.MethodPost, "/setup_database", nil)
		rr := httptest.NewRecorder()
		handler.SetupDatabase(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Failed to set up database", decodeBody(t, rr)["detail"])
		assert.NotContains(t, rr.Body.String(), "migrations locked")
	})
}

func TestMaintenanceHandlerHealth(t *testing.T) {
	handler := NewMaintenanceHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
