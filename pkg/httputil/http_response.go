package httputil

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
)

var ErrEmptyBody = errors.New("request body is empty")

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	writeJSON(w, statusCode, resp, sonic.ConfigFastest)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	writeJSON(w, statusCode, body, sonic.ConfigDefault)
}

// WriteNoContent answers successful deletions.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, statusCode int, body any, api sonic.API) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body == nil {
		return
	}
	// Headers are already sent, the client only gets a truncated body
	if err := api.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encoding response error", slog.Int("status", statusCode), slog.String("error", err.Error()))
	}
}

// DecodeJSON reads a request body into dst. Unknown fields are rejected so
// patches can only carry allow-listed fields.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	defer r.Body.Close()
	dec := sonic.ConfigDefault.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decoding body: %w", err)
	}
	return nil
}
