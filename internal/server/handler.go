package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Handler serves the two classification-service endpoints
type Handler struct {
	engine    *Engine
	responder *Responder
	logger    *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(engine *Engine, responder *Responder, logger *zap.Logger) *Handler {
	return &Handler{
		engine:    engine,
		responder: responder,
		logger:    logger,
	}
}

// RegisterRoutes registers the API routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/classify", h.Classify)
		r.Post("/chatbot", h.Chatbot)
	})
}

// NewRouter builds the chi router with the API mounted
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	h.RegisterRoutes(r)
	return r
}

type classifyRequest struct {
	Email *string `json:"email"`
}

type chatbotRequest struct {
	Message *string `json:"message"`
}

// Classify scores submitted email text
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == nil {
		Error(w, http.StatusBadRequest, "No email content provided")
		return
	}

	result := h.engine.Classify(*req.Email)

	h.logger.Info("Classified email",
		zap.Bool("is_spam", result.IsSpam),
		zap.Float64("spam_probability", result.SpamProbability))

	JSON(w, http.StatusOK, map[string]interface{}{
		"is_spam":          result.IsSpam,
		"spam_probability": result.SpamProbability,
		"ham_probability":  result.HamProbability,
		"indicators": map[string]float64{
			"urgency":    result.Indicators.Urgency,
			"links":      result.Indicators.Links,
			"grammar":    result.Indicators.Grammar,
			"formatting": result.Indicators.Formatting,
		},
	})
}

// Chatbot answers one assistant message
func (h *Handler) Chatbot(w http.ResponseWriter, r *http.Request) {
	var req chatbotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == nil {
		Error(w, http.StatusBadRequest, "No message provided")
		return
	}

	reply := h.responder.Respond(r.Context(), *req.Message)

	JSON(w, http.StatusOK, map[string]string{
		"response": reply,
	})
}

// JSON writes a JSON response with the given status
func JSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Error writes a JSON error response with the given status
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
