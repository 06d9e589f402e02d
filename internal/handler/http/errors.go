// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/employee-service/internal/logger"
	"github.com/MKhiriev/employee-service/internal/utils"
	"github.com/MKhiriev/employee-service/models"
)

// writeAPIError writes the standard JSON error envelope for failed requests.
//
// Every non-2xx response carries the same body shape so that clients can rely
// on a single decoding path:
//
//	{"timestamp": "...", "status": 404, "error": "employee not found", "path": "/employees/42"}
//
// The path field always reflects the request URL path, query string excluded.
func writeAPIError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	apiError := models.APIError{
		Timestamp: time.Now(),
		Status:    statusCode,
		Error:     message,
		Path:      r.URL.Path,
	}

	if _, err := utils.WriteJSON(w, apiError, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeAPIError").Msg("error writing error response")
	}
}
