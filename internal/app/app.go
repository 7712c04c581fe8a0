package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxRequestSize = 1 << 20

type appHandler struct {
	fn     func(http.ResponseWriter, *http.Request) error
	logger *zap.Logger
	json   bool
}

func (h appHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h.fn(w, r)
	if err == nil {
		return
	}
	e := &AppError{http.StatusInternalServerError, "Internal server error"}
	if !errors.As(err, &e) {
		h.logger.Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
	} else {
		h.logger.Debug("request rejected", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Int("code", e.Code), zap.String("message", e.Message))
	}
	if h.json {
		replyJSON(w, e, e.Code)
	} else {
		http.Error(w, e.Message, e.Code)
	}
}

// Register pages and API endpoints to the router.
func (c *Controller) SetupRoutes(r *mux.Router) {
	r.Use(c.logRequests)

	r.Methods("GET").Path("/").Handler(c.page(c.showForm))
	r.Methods("POST").Path("/").Handler(c.page(c.submitForm))
	r.Methods("GET").Path("/video").Handler(c.page(c.showVideo))
	r.Methods("POST").Path("/video/edit").Handler(c.page(c.editNotes))
	r.Methods("POST").Path("/video/notes").Handler(c.page(c.saveNotes))
	r.Methods("GET").Path("/video/delete").Handler(c.page(c.confirmDelete))
	r.Methods("POST").Path("/video/delete").Handler(c.page(c.deleteVideo))
	r.Methods("GET").Path("/healthz").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Methods("GET").Path("/video").Handler(c.api(c.getVideo))
	api.Methods("POST").Path("/video").Handler(c.api(c.createVideo))
	api.Methods("PUT").Path("/video/notes").Handler(c.api(c.updateNotes))
	api.Methods("DELETE").Path("/video").Handler(c.api(c.removeVideo))
	api.Methods("GET").Path("/embed").Handler(c.api(c.resolveEmbed))
}

func (c *Controller) page(fn func(http.ResponseWriter, *http.Request) error) http.Handler {
	return appHandler{fn, c.logger, false}
}

func (c *Controller) api(fn func(http.ResponseWriter, *http.Request) error) http.Handler {
	return appHandler{fn, c.logger, true}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (c *Controller) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{w, http.StatusOK}
		next.ServeHTTP(rec, r)
		c.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

// Parse incoming request body as JSON object.
func parseJSON(w http.ResponseWriter, r *http.Request, data interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
	if err := json.NewDecoder(r.Body).Decode(data); err != nil {
		return &AppError{http.StatusBadRequest, "cannot parse JSON from request body"}
	}
	return nil
}

// Respond the output with JSON format to the client.
func replyJSON(w http.ResponseWriter, data interface{}, code int) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}
