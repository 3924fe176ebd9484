// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler so
// that the body follows the JSON error shape of the rest of the API.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, fmt.Sprintf(msgMethodNotAllowed, r.Method), http.StatusMethodNotAllowed)
}

// notFound is registered as the router's NotFound handler.
func notFound(w http.ResponseWriter, _ *http.Request) {
	writeDetail(w, msgNotFound, http.StatusNotFound)
}
