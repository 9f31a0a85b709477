package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/stayvia/stayvia-server/internal/domain/common/errorz"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps service errors onto HTTP statuses. Anything
// unrecognized is a plain 500 without leaking internals.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, errorz.NotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, errorz.SelfRequest):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errorz.DuplicateRequest), errors.Is(err, errorz.PostUnavailable):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, errorz.Forbidden):
		respondError(w, http.StatusForbidden, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeValid decodes a JSON body into dest and runs struct validation.
func decodeValid(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return err
	}
	return validate.Struct(dest)
}
