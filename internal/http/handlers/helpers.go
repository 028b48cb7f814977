package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/logx"
)

var validate = newValidator()

// newValidator reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Warn("json encode error",
			logx.String("req_id", reqID(r.Context())),
			logx.Err(err),
		)
	}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	logger.Info("http error",
		logx.String("req_id", reqID(r.Context())),
		logx.Int("status", status),
		logx.String("msg", msg),
	)
	writeJSON(logger, w, r, status, ErrorResponse{Error: msg})
}

// writeDomainError maps apperr categories to status codes. Domain messages are
// safe to return, anything else is reported as an internal error.
func writeDomainError(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.Invalid):
		writeError(logger, w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.NotFound):
		writeError(logger, w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.Conflict):
		writeError(logger, w, r, http.StatusConflict, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(logger, w, r, http.StatusGatewayTimeout, "timeout")
	default:
		logger.Error("request failed",
			logx.String("req_id", reqID(r.Context())),
			logx.String("path", r.URL.Path),
			logx.Err(err),
		)
		writeError(logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

const (
	bodyLimit = 1 << 20
)

// decodeJSON reads a single JSON object and runs struct validation on it.
func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json: trailing data")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(logger, w, r, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid input"
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return "invalid " + strings.Join(fields, ", ")
}

func idFromURL(r *http.Request, name string) (int64, error) {
	idStr := chi.URLParam(r, name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// queryInt64 returns nil when the parameter is absent.
func queryInt64(r *http.Request, name string) (*int64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return nil, errors.New("invalid " + name)
	}
	return &v, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	v, err := queryInt64(r, name)
	if err != nil || v == nil {
		return 0, err
	}
	return int(*v), nil
}
