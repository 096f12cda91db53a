package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"apod/pkg/action"
	"apod/pkg/apodclient"

	"github.com/sirupsen/logrus"
)

// Response is the envelope of every JSON answer.
type Response struct {
	Message        string      `json:"message"`
	Result         interface{} `json:"result,omitempty"`
	UpstreamStatus int         `json:"upstream_status,omitempty"`
}

func getStringParam(r *http.Request, name string) string {

	if r == nil {
		return ""
	}

	return r.URL.Query().Get(name)
}

// statusFor maps an action error to the HTTP status returned to the runner.
func statusFor(err error) int {
	var uerr *apodclient.UpstreamError
	switch {
	case errors.Is(err, &action.ParameterError{}), errors.Is(err, &apodclient.InvalidDateError{}):
		return http.StatusBadRequest
	case errors.As(err, &uerr):
		return http.StatusBadGateway
	case errors.Is(err, &apodclient.DecodeError{}):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func sendError(w http.ResponseWriter, status int, err error) {
	resp := Response{Message: err.Error()}

	var uerr *apodclient.UpstreamError
	if errors.As(err, &uerr) {
		resp.UpstreamStatus = uerr.StatusCode
	}

	writeJSON(w, status, resp)
}

func sendResponse(w http.ResponseWriter, status int, msg string, result interface{}) {
	writeJSON(w, status, Response{Message: msg, Result: result})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("error while sending response %q", err)
	}
}
