package handler

import (
	"net/http"

	"github.com/mensonones/service-pro-api/pkg/apperr"
	"github.com/mensonones/service-pro-api/pkg/response"
)

// writeError maps the usecase error taxonomy onto HTTP statuses.
func writeError(w http.ResponseWriter, err error, fallback string) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case apperr.KindNotFound:
		response.NotFound(w, err.Error())
	case apperr.KindIntegrity, apperr.KindConflict:
		response.Conflict(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
