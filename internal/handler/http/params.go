package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-recipe-catalog/internal/utils"
	"github.com/go-chi/chi/v5"
)

// requireUserID returns the id of the authenticated user. It answers 401
// itself when the auth middleware did not run.
func requireUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeDetail(w, msgNotAuthenticated, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

// requireUserAndID also parses the {id} path parameter. Ids that are not
// positive integers cannot exist and are answered with 404.
func requireUserAndID(w http.ResponseWriter, r *http.Request) (userID, id int64, ok bool) {
	userID, ok = requireUserID(w, r)
	if !ok {
		return 0, 0, false
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeDetail(w, msgNotFound, http.StatusNotFound)
		return 0, 0, false
	}

	return userID, id, true
}
