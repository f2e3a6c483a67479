package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"dsa-quiz-service/internal/app"
	"dsa-quiz-service/internal/domain"
	"dsa-quiz-service/internal/logging"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

type WSHandler struct {
	service  *app.QuizService
	tick     time.Duration
	logger   zerolog.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService, tick time.Duration, logger zerolog.Logger) *WSHandler {
	if tick <= 0 {
		tick = time.Second
	}
	return &WSHandler{
		service: service,
		tick:    tick,
		logger:  logger.With().Str("component", "ws").Logger(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

type answerPayload struct {
	Option int `json:"option"`
}

type submitPayload struct {
	Name string `json:"name"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and runs one quiz session for the lifetime of the connection.
// Only the loop below touches the session or writes to the socket.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("ws upgrade failed")
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	logger := h.logger.With().Str("session", sessionID).Logger()
	ctx := logging.IntoContext(r.Context(), logger)

	inbound := make(chan inboundMessage)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(inbound)
		for {
			var msg inboundMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			select {
			case inbound <- msg:
			case <-done:
				return
			}
		}
	}()

	var (
		ticker *time.Ticker
		tickC  <-chan time.Time
	)
	stopTimer := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tickC = nil, nil
		}
	}
	startTimer := func() {
		stopTimer()
		ticker = time.NewTicker(h.tick)
		tickC = ticker.C
	}
	defer stopTimer()

	send := func(typ string, payload any) bool {
		if err := conn.WriteJSON(outboundMessage{Type: typ, Payload: payload}); err != nil {
			logger.Debug().Err(err).Msg("ws write failed")
			return false
		}
		return true
	}

	sess := h.service.NewSession()
	if !send("state", viewSession(sessionID, sess)) {
		return
	}

	for {
		before := sess
		select {
		case msg, ok := <-inbound:
			if !ok {
				return
			}
			next, extra, err := h.apply(ctx, sess, msg)
			if err != nil {
				if !send("error", errorPayload{Message: err.Error()}) {
					return
				}
				continue
			}
			sess = next
			if sess.Active() && (!before.Active() || before.Current != sess.Current || msg.Type == "start") {
				startTimer()
			}
			if extra != nil && !send(extra.Type, extra.Payload) {
				return
			}
		case <-tickC:
			sess = sess.Tick()
			h.service.Observe(before, sess)
			if sess.Active() && before.Current != sess.Current {
				startTimer()
			}
		case <-ctx.Done():
			return
		}

		if !sess.Active() {
			stopTimer()
		}
		if !send("state", viewSession(sessionID, sess)) {
			return
		}
		if sess.Completed() && !before.Completed() {
			logger.Debug().Int("score", sess.Score).Int("total", len(sess.Questions)).Msg("session completed")
			if !send("results", viewResults(sess)) {
				return
			}
		}
	}
}

var (
	errUnsupported    = errors.New("unsupported message type")
	errInvalidPayload = errors.New("invalid payload")
)

// apply runs one client command. extra is an additional message to send before the state.
func (h *WSHandler) apply(ctx context.Context, sess app.Session, msg inboundMessage) (app.Session, *outboundMessage, error) {
	switch msg.Type {
	case "start":
		var payload startPayload
		if err := decodePayload(msg.Payload, &payload); err != nil {
			return sess, nil, fmt.Errorf("%s: %w", msg.Type, errInvalidPayload)
		}
		difficulty, err := domain.ParseDifficulty(payload.Difficulty)
		if err != nil {
			return sess, nil, err
		}
		next, err := h.service.Start(ctx, sess, difficulty, payload.Count)
		return next, nil, err
	case "answer":
		var payload answerPayload
		if err := decodePayload(msg.Payload, &payload); err != nil {
			return sess, nil, fmt.Errorf("%s: %w", msg.Type, errInvalidPayload)
		}
		return sess.SelectAnswer(payload.Option), nil, nil
	case "next":
		next := sess.Advance()
		h.service.Observe(sess, next)
		return next, nil, nil
	case "back":
		return sess.GoBack(), nil, nil
	case "submit":
		var payload submitPayload
		if err := decodePayload(msg.Payload, &payload); err != nil {
			return sess, nil, fmt.Errorf("%s: %w", msg.Type, errInvalidPayload)
		}
		next, recorded, err := h.service.Submit(ctx, sess, payload.Name)
		if err != nil {
			// the attempt is still scored; only persisting failed
			logger := logging.FromContext(ctx)
			logger.Error().Err(err).Msg("leaderboard save failed")
			return next, &outboundMessage{Type: "error", Payload: errorPayload{Message: "leaderboard unavailable"}}, nil
		}
		if recorded {
			return next, &outboundMessage{Type: "leaderboard", Payload: h.service.Leaderboard()}, nil
		}
		return next, nil, nil
	case "reset":
		return sess.Reset(), nil, nil
	default:
		return sess, nil, errUnsupported
	}
}

func decodePayload(raw json.RawMessage, into any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, into)
}
