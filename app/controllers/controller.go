// Package controllers holds the HTTP handlers. Controllers decode and
// validate input, call a service, and translate service errors into the
// JSON envelope; they hold no business logic of their own.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/craftline/storefront/pkg/logger"
	"github.com/craftline/storefront/pkg/response"
)

// pathID parses a numeric path parameter.
func pathID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// serverError logs the failure and sends an opaque 500.
func serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.WithCtx(r.Context()).Error("request failed", "error", err)
	response.Error(w, http.StatusInternalServerError, "Internal server error")
}
