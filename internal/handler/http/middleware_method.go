// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/proxy-desk-bot/internal/utils"
)

const allowedOpsMethods = "GET, HEAD"

// methodNotAllowed answers requests that hit an ops route with a method
// other than GET or HEAD. Every ops route is read-only.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", allowedOpsMethods)
	utils.WriteJSON(w, map[string]string{"error": "method not allowed"}, http.StatusMethodNotAllowed)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)
}
