package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/employee-service/internal/app"
	"github.com/MKhiriev/employee-service/internal/logger"
	"github.com/MKhiriev/employee-service/internal/service"
	"github.com/MKhiriev/employee-service/internal/store"
	"github.com/MKhiriev/employee-service/internal/utils"
	"github.com/MKhiriev/employee-service/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	employees, err := h.services.EmployeeService.List(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.list").Msg("error listing employees")
		writeAPIError(w, r, statusFromError(err), app.MsgInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, employees, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.list").Msg("error writing response")
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var draft models.EmployeeDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Str("func", "*Handler.create").Msg("Invalid JSON was passed")
		writeAPIError(w, r, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	employee, err := h.services.EmployeeService.Create(ctx, draft)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("func", "*Handler.create").Msg("invalid data provided")
			writeAPIError(w, r, http.StatusBadRequest, app.MsgInvalidDataProvided)
			return
		default:
			log.Err(err).Str("func", "*Handler.create").Msg("unexpected error occurred during employee creation")
			writeAPIError(w, r, statusFromError(err), app.MsgInternalServerError)
			return
		}
	}

	w.Header().Set("Location", fmt.Sprintf("/employees/%d", employee.ID))
	if _, err := utils.WriteJSON(w, employee, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.create").Msg("error writing response")
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// a non-numeric path segment identifies no resource
		log.Debug().Str("func", "*Handler.get").Str("id", chi.URLParam(r, "id")).Msg("non-numeric employee id")
		writeAPIError(w, r, http.StatusNotFound, app.MsgEmployeeNotFound)
		return
	}

	employee, err := h.services.EmployeeService.Get(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmployeeNotFound):
			log.Debug().Str("func", "*Handler.get").Int64("id", id).Msg("employee not found")
			writeAPIError(w, r, http.StatusNotFound, app.MsgEmployeeNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.get").Msg("unexpected error occurred during employee lookup")
			writeAPIError(w, r, statusFromError(err), app.MsgInternalServerError)
			return
		}
	}

	if _, err := utils.WriteJSON(w, employee, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.get").Msg("error writing response")
	}
}

func (h *Handler) replace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Debug().Str("func", "*Handler.replace").Str("id", chi.URLParam(r, "id")).Msg("non-numeric employee id")
		writeAPIError(w, r, http.StatusNotFound, app.MsgEmployeeNotFound)
		return
	}

	var draft models.EmployeeDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Str("func", "*Handler.replace").Msg("Invalid JSON was passed")
		writeAPIError(w, r, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	employee, created, err := h.services.EmployeeService.Replace(ctx, id, draft)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("func", "*Handler.replace").Msg("invalid data provided")
			writeAPIError(w, r, http.StatusBadRequest, app.MsgInvalidDataProvided)
			return
		default:
			log.Err(err).Str("func", "*Handler.replace").Msg("unexpected error occurred during employee replace")
			writeAPIError(w, r, statusFromError(err), app.MsgInternalServerError)
			return
		}
	}

	// both branches point at the stored representation
	w.Header().Set("Content-Location", fmt.Sprintf("/employees/%d", employee.ID))

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	if _, err := utils.WriteJSON(w, employee, status); err != nil {
		log.Err(err).Str("func", "*Handler.replace").Msg("error writing response")
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// delete is idempotent: whatever the path names, the desired end state is
	// "record absent", so the answer is 204 even for ids that never existed
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Debug().Str("func", "*Handler.delete").Str("id", chi.URLParam(r, "id")).Msg("non-numeric employee id, nothing to delete")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.services.EmployeeService.Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "*Handler.delete").Msg("unexpected error occurred during employee deletion")
		writeAPIError(w, r, statusFromError(err), app.MsgInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
