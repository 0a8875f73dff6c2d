package training

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type DeletedResponse struct {
	DeletedID int64 `json:"deletedId"`
}

type UpdatedResponse struct {
	UpdatedID int64 `json:"updatedId"`
}

type CountResponse struct {
	Count int `json:"count"`
}

// errorStatus maps a service error kind onto an HTTP status code.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrMalformedScheme):
		return http.StatusBadRequest
	case errors.Is(err, ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSet), errors.Is(err, ErrLogFinalized):
		return http.StatusConflict
	case errors.Is(err, ErrReferentialIntegrity):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError answers with the operation error message, except for
// internal failures which only get a generic one.
func writeServiceError(w http.ResponseWriter, action string, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Errorf("%s: %s", action, err)
		http.Error(w, action+" failed", status)
		return
	}
	log.Debugf("%s: %s", action, err)
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, action string, v any, status int) {
	resJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("%s, marshal response: %s", action, err)
		http.Error(w, action+" failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resJson, status)
}

// decodeJSON reads the request body into dst. It writes the error response
// itself and reports false when the request cannot be used.
func decodeJSON(w http.ResponseWriter, r *http.Request, action string, dst any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Debugf("%s, unmarshal json params: %s", action, err)
		http.Error(w, action+" failed: invalid json body", http.StatusBadRequest)
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	idParam := mux.Vars(r)[name]
	if idParam == "" {
		http.Error(w, fmt.Sprintf("error, %s empty", name), http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, fmt.Sprintf("error, %s invalid", name), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func queryID(r *http.Request, name string) (*int64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%s invalid", name)
	}
	return &id, nil
}

// queryTime accepts RFC 3339 timestamps or plain dates. With endOfDay a
// plain date covers the whole day.
func queryTime(r *http.Request, name string, endOfDay bool) (*time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return nil, fmt.Errorf("%s invalid", name)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
