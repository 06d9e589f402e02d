package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/employee-service/internal/service"
	"github.com/MKhiriev/employee-service/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrEmployeeNotFound:      http.StatusNotFound,
	store.ErrEmployeeAlreadyExists: http.StatusConflict,
	store.ErrEmployeeNotSaved:      http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommitingTransaction:  http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
