package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/service"
	"github.com/MKhiriev/go-recipe-catalog/internal/store"
	"github.com/MKhiriev/go-recipe-catalog/internal/utils"
	"github.com/MKhiriev/go-recipe-catalog/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation:      http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusBadRequest,
	service.ErrAuthentication:     http.StatusUnauthorized,

	store.ErrNotFound:           http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status code and a JSON body. Validation errors
// are rendered as a field to messages object, everything else as
// {"detail": "..."}. Internal details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var body any
	var ve *validators.ValidationError
	switch {
	case errors.As(err, &ve):
		body = ve.Fields
	case errors.Is(err, service.ErrInvalidCredentials):
		body = map[string][]string{validators.NonFieldErrors: {msgInvalidCredentials}}
	case errors.Is(err, service.ErrAuthentication):
		w.Header().Set("WWW-Authenticate", "Token")
		body = detailResponse{Detail: msgInvalidToken}
	case status == http.StatusNotFound:
		body = detailResponse{Detail: msgNotFound}
	default:
		body = detailResponse{Detail: msgServerError}
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}

// writeDetail responds with {"detail": message}.
func writeDetail(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, detailResponse{Detail: message}, status)
}

// decodeBody reads the JSON body into dst. An absent body leaves dst
// untouched so that validation reports the missing fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := utils.DecodeJSON(r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return true
	}

	logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
	writeDetail(w, fmt.Sprintf(msgJSONParseError, errors.Unwrap(err)), http.StatusBadRequest)
	return false
}
