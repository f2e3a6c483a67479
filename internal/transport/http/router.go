package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dsa-quiz-service/internal/app"
	"dsa-quiz-service/internal/domain"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	AllowedOrigins []string
	Gatherer       prometheus.Gatherer
	Logger         zerolog.Logger
}

// NewRouter wires health, metrics, the read-only API and the session socket behind CORS.
func NewRouter(service *app.QuizService, ws *WSHandler, opts RouterOptions) http.Handler {
	api := &apiHandler{service: service, logger: opts.Logger.With().Str("component", "api").Logger()}

	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	if opts.Gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/leaderboard", api.getLeaderboard).Methods(http.MethodGet)
	apiRouter.HandleFunc("/questions/{id:[0-9]+}", api.getQuestion).Methods(http.MethodGet)
	apiRouter.HandleFunc("/advice", api.getAdvice).Methods(http.MethodGet)

	if ws != nil {
		router.HandleFunc("/ws", ws.ServeWS)
	}

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})
	return corsMiddleware.Handler(router)
}

type apiHandler struct {
	service *app.QuizService
	logger  zerolog.Logger
}

func (h *apiHandler) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Leaderboard())
}

func (h *apiHandler) getQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid question id")
		return
	}
	q, err := h.service.Question(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, "question not found")
	case err != nil:
		h.logger.Error().Err(err).Int("id", id).Msg("question lookup failed")
		writeError(w, http.StatusInternalServerError, "catalog unavailable")
	default:
		writeJSON(w, http.StatusOK, q)
	}
}

type adviceResponse struct {
	Correct    int               `json:"correct"`
	Total      int               `json:"total"`
	Accuracy   float64           `json:"accuracy"`
	Difficulty domain.Difficulty `json:"difficulty"`
}

func (h *apiHandler) getAdvice(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	correct, errC := strconv.Atoi(query.Get("correct"))
	total, errT := strconv.Atoi(query.Get("total"))
	if errC != nil || errT != nil || correct < 0 || total < 0 || correct > total {
		writeError(w, http.StatusBadRequest, "correct and total must be integers with 0 <= correct <= total")
		return
	}
	writeJSON(w, http.StatusOK, adviceResponse{
		Correct:    correct,
		Total:      total,
		Accuracy:   app.Accuracy(correct, total),
		Difficulty: app.SuggestDifficulty(correct, total),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorPayload{Message: message})
}
