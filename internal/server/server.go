package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/ytget/callshot/internal/api"
	"github.com/ytget/callshot/internal/config"
	"github.com/ytget/callshot/internal/model"
)

// Service identity reported by / and /health
const (
	ServiceTitle = "Photo Generator API"
	ServiceName  = "photo-generator"

	PlaceholderBaseURL = "https://via.placeholder.com"
	shutdownTimeout    = 5 * time.Second
	maxRequestBody     = 1 << 20
)

// Styles lists the rendering styles the service offers
var Styles = []api.Style{
	{ID: "telegram-ui", Name: "Telegram UI", Description: "Стандартный интерфейс Telegram"},
	{ID: "telegram-dark", Name: "Telegram Dark", Description: "Темная тема Telegram"},
	{ID: "telegram-light", Name: "Telegram Light", Description: "Светлая тема Telegram"},
	{ID: "ios-style", Name: "iOS Style", Description: "В стиле iOS"},
	{ID: "android-style", Name: "Android Style", Description: "В стиле Android"},
}

// CallTypes lists the call directions with their display names and colors
var CallTypes = []api.CallType{
	{ID: string(model.DirectionIncoming), Name: "Входящий", Color: "green"},
	{ID: string(model.DirectionOutgoing), Name: "Исходящий", Color: "blue"},
	{ID: string(model.DirectionMissed), Name: "Пропущенный", Color: "red"},
}

// NewRouter builds the HTTP API with CORS for cfg.AllowedOrigins
func NewRouter(cfg config.ServerConfig) *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware, corsMiddleware(cfg.AllowedOrigins))

	r.HandleFunc("/", RootHandler).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc(api.PathHealth, HealthHandler).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc(api.PathStyles, StylesHandler).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc(api.PathCallTypes, CallTypesHandler).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc(api.PathGenerate, GenerateHandler).Methods(http.MethodPost, http.MethodOptions)
	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("API server listening on http://%s", cfg.Addr())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Printf("API server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// RootHandler reports that the service is running
func RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": ServiceTitle, "status": "running"})
}

// HealthHandler reports service health
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.HealthResponse{Status: "healthy", Service: ServiceName})
}

// StylesHandler lists the available styles
func StylesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.StylesResponse{Styles: Styles})
}

// CallTypesHandler lists the call types
func CallTypesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.CallTypesResponse{CallTypes: CallTypes})
}

// GenerateHandler answers a screenshot request with a placeholder image URL
// describing the requested settings
func GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var req api.GenerateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusUnprocessableEntity, "prompt is required")
		return
	}

	applyDefaults(&req)
	writeJSON(w, http.StatusOK, placeholderResponse(req))
}

// applyDefaults fills omitted fields and clamps the image size
func applyDefaults(req *api.GenerateRequest) {
	if req.Style == "" {
		req.Style = config.DefaultStyle
	}
	if req.Theme == "" {
		req.Theme = config.DefaultTheme
	}
	if req.Width <= 0 {
		req.Width = config.DefaultImageWidth
	}
	if req.Height <= 0 {
		req.Height = config.DefaultImageHeight
	}
	req.Width = min(req.Width, config.MaxImageWidth)
	req.Height = min(req.Height, config.MaxImageHeight)

	defaults := model.DefaultListSettings()
	if req.HeaderTitle == "" {
		req.HeaderTitle = defaults.HeaderTitle
	}
	if req.TimeDisplay == "" {
		req.TimeDisplay = defaults.Clock
	}
	if req.BatteryLevel == nil {
		level := defaults.Battery
		req.BatteryLevel = &level
	}
	if req.ShowSearch == nil {
		show := defaults.ShowSearch
		req.ShowSearch = &show
	}
}

func placeholderResponse(req api.GenerateRequest) api.GenerateResponse {
	callsInfo := "без вызовов"
	if len(req.Calls) > 0 {
		callsInfo = fmt.Sprintf("%d вызовов", len(req.Calls))
	}
	themeInfo := "тема: " + req.Theme

	text := fmt.Sprintf("Telegram+Calls+%dx%d+%s+%s", req.Width, req.Height, themeInfo, callsInfo)
	imageURL := fmt.Sprintf("%s/%dx%d/2C2C2E/FFFFFF?text=%s",
		PlaceholderBaseURL, req.Width, req.Height, url.QueryEscape(text))

	return api.GenerateResponse{
		Success:  true,
		ImageURL: imageURL,
		Message:  fmt.Sprintf("Скриншот сгенерирован: %s, %s, заголовок: %s", callsInfo, themeInfo, req.HeaderTitle),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
