package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

// MessageResponse is the body of every non-validation error response.
type MessageResponse struct {
	Message string `json:"message"`
}

func WriteResponse(w http.ResponseWriter, contentType, message string, statusCode int) {
	WriteResponseBytes(w, contentType, []byte(message), statusCode)
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

// WriteJSONResponse marshals v and writes it with the given status. Marshal failures
// are answered with a plain 500.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, v any) {
	respBytes, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response of type %T: %s", v, err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteResponseBytes(w, ContentType.JSON, respBytes, statusCode)
}

func WriteJSONResponseOK(w http.ResponseWriter, v any) {
	WriteJSONResponse(w, http.StatusOK, v)
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	respBytes, err := json.Marshal(MessageResponse{Message: message})
	if err != nil {
		// cannot happen for a plain string, keep the response JSON anyway
		respBytes = []byte(`{"message":"Internal server error"}`)
	}
	WriteResponseBytes(w, ContentType.JSON, respBytes, statusCode)
}

func WriteValidationErrorResponse(w http.ResponseWriter, verr *ValidationError) {
	WriteJSONResponse(w, http.StatusBadRequest, verr)
}
