package httputil

import (
	"context"
	"errors"
	"net/http"

	"github.com/bistroboss/bistro-api/internal/pkg/ctxlog"
)

// ErrorMapping pairs a domain sentinel error with the HTTP status it
// should produce.
type ErrorMapping struct {
	Error   error
	Status  int
	Message string // if empty, uses err.Error()
}

// HandleError resolves err against the route's mappings and writes the
// mapped response. Anything unmapped becomes a 500; the cause is logged
// but never leaks to the client.
func HandleError(ctx context.Context, w http.ResponseWriter, err error, mappings []ErrorMapping) {
	for _, m := range mappings {
		if errors.Is(err, m.Error) {
			msg := m.Message
			if msg == "" {
				msg = err.Error()
			}
			Error(w, m.Status, msg)
			return
		}
	}

	ctxlog.FromContext(ctx).Error("internal error", "error", err)
	Error(w, http.StatusInternalServerError, "internal error")
}
