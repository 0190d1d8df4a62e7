// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-contacts-book/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with an unsupported method is answered like an
// unknown path: 404 with a JSON detail, never 405.
//
// Requests that do resolve for their method (including parameterised
// patterns such as /api/contacts/{id}) are handed back to the router.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSONError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
