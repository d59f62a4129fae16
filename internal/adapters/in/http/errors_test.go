package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"missionctl/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"required", errs.NewValueIsRequiredError("rack"), http.StatusBadRequest},
		{"invalid", fmt.Errorf("submit: %w", errs.NewValueIsInvalidError("latitude")), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("rack_column", 9, 1, 4), http.StatusBadRequest},
		{"not found", errs.NewObjectNotFoundError("sessionId", "x"), http.StatusNotFound},
		{"business", fmt.Errorf("launch: %w", errs.NewBusinessError("launch", "Rack taken", http.StatusConflict)), http.StatusConflict},
		{"transport", errs.NewTransportError("status", errors.New("timeout")), http.StatusBadGateway},
		{"joined detail and destination failures", errors.Join(
			errs.NewTransportError("drone", nil),
			errs.NewBusinessError("destination", "No destination coordinates for this drone", http.StatusOK),
		), http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
