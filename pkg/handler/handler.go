package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"apod/pkg/action"
	"apod/pkg/consts"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// maxRunBody bounds the runner's request body.
const maxRunBody = 1 << 20

type Handler struct {
	action  *action.Action
	timeout time.Duration
}

// NewHandler wires the action to HTTP. timeout bounds each run and should
// be at least the upstream client timeout.
func NewHandler(a *action.Action, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Handler{action: a, timeout: timeout}
}

func (h *Handler) InitRoutes() *mux.Router {

	router := mux.NewRouter()

	router.HandleFunc("/v1/actions", h.ListActions).Methods(http.MethodGet)
	router.HandleFunc("/v1/actions/"+consts.ActionName, h.RunAction).Methods(http.MethodPost)
	router.HandleFunc("/v1/picday", h.TodaysPicture).Methods(http.MethodGet)
	router.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}

// RunRequest is the body a runner posts to execute the action.
type RunRequest struct {
	Parameters action.Parameters `json:"parameters"`
}

func (h *Handler) ListActions(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, http.StatusOK, "ok", []action.Definition{h.action.Definition()})
}

// RunAction executes the action with the posted parameters.
func (h *Handler) RunAction(w http.ResponseWriter, r *http.Request) {

	var req RunRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRunBody))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		sendResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}

	h.run(w, r, req.Parameters)
}

// TodaysPicture runs the action with parameters taken from the query string.
func (h *Handler) TodaysPicture(w http.ResponseWriter, r *http.Request) {

	params := action.Parameters{}
	if v := getStringParam(r, consts.ApiKey); v != "" {
		params[consts.ApiKey] = v
	}
	if v := getStringParam(r, consts.ParamDate); v != "" {
		params[consts.ParamDate] = v
	}
	if v := getStringParam(r, consts.ParamHd); v != "" {
		params[consts.ParamHd] = v
	}

	h.run(w, r, params)
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request, params action.Parameters) {

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	md, err := h.action.Run(ctx, params)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			logrus.Errorf("action %s failed: %q", consts.ActionName, err)
		}
		sendError(w, status, err)
		return
	}

	sendResponse(w, http.StatusOK, "ok", md)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
