package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdomain "github.com/dwikikusuma/naija-assistant/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/naija-assistant/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
)

var errBadRequest = errors.New("bad request")

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// httpStatusFromErr maps domain sentinels first, then any gRPC status the
// remote store returned.
func httpStatusFromErr(err error) (int, string, string) {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, catalogdomain.ErrInvalidFilter),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, cartdomain.ErrInvalidQuantity),
		errors.Is(err, cartdomain.ErrInvalidUser):
		return http.StatusBadRequest, "INVALID_ARGUMENT", err.Error()
	case errors.Is(err, catalogdomain.ErrNotFound), errors.Is(err, cartdomain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", err.Error()
	}
	return httpStatusFromGRPC(err)
}

func httpStatusFromGRPC(err error) (int, string, string) {
	st, ok := status.FromError(err)
	if !ok {
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest, "INVALID_ARGUMENT", st.Message()
	case codes.NotFound:
		return http.StatusNotFound, "NOT_FOUND", st.Message()
	case codes.Unavailable, codes.DeadlineExceeded:
		return http.StatusServiceUnavailable, "UNAVAILABLE", "store unavailable"
	}
	return http.StatusInternalServerError, "INTERNAL", "internal error"
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	code, name, msg := httpStatusFromErr(err)
	if code >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("err", err),
		)
	}
	writeJSON(w, code, errorBody{Error: errorDetail{Code: name, Message: msg}})
}
