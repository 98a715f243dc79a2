// internal/web/errors.go
package web

import (
	"errors"

	"github.com/jeanmonodalex/partage-web/internal/adapters/api"
)

// userMessage returns the backend's detail message when the error carries
// one, and a generic message otherwise. Raw transport errors never reach
// the page.
func userMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return "le service est momentanément indisponible"
}

// notFound reports whether the error is a backend 404.
func notFound(err error) bool {
	var apiErr *api.APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}
