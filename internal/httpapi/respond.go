package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexanderramin/caseflow/internal/contract"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/repository"
	"github.com/alexanderramin/caseflow/internal/service"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// badRequest marks an error caused by malformed client input.
type badRequest struct{ msg string }

func (e badRequest) Error() string { return e.msg }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto HTTP statuses. Internal errors
// carry no description.
func writeError(w http.ResponseWriter, err error) {
	status, body := classify(err)
	writeJSON(w, status, body)
}

func classify(err error) (int, errorBody) {
	var (
		br        badRequest
		intakeErr *contract.IntakeError
	)
	switch {
	case errors.As(err, &br):
		return http.StatusBadRequest, errorBody{Error: "bad_request", Description: br.msg}
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, errorBody{Error: "not_found", Description: err.Error()}
	case errors.Is(err, domain.ErrUnknownDomain), errors.Is(err, domain.ErrUnknownViewpoint),
		errors.Is(err, domain.ErrInvalidCase):
		return http.StatusBadRequest, errorBody{Error: "bad_request", Description: err.Error()}
	case errors.Is(err, service.ErrCaseActive):
		return http.StatusConflict, errorBody{Error: "case_active", Description: err.Error()}
	case errors.As(err, &intakeErr):
		if intakeErr.Code == contract.IntakeErrCaseClosed {
			return http.StatusConflict, errorBody{Error: "case_not_active", Description: intakeErr.Message}
		}
		return http.StatusBadRequest, errorBody{Error: "unknown_field", Description: intakeErr.Message}
	default:
		return http.StatusInternalServerError, errorBody{Error: "internal_error"}
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return badRequest{msg: "invalid JSON body: " + err.Error()}
	}
	return nil
}

func logFailure(logger *slog.Logger, r *http.Request, msg string, err error) {
	status, _ := classify(err)
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.Log(r.Context(), level, msg,
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err,
	)
}
