package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"hoops-trivia/internal/app"
	"hoops-trivia/internal/domain"
	"hoops-trivia/internal/logging"
	"hoops-trivia/internal/narration"
)

type WSHandler struct {
	service  *app.GameService
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GameService, logger *slog.Logger) *WSHandler {
	return &WSHandler{
		service: service,
		logger:  logger,
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

type selectPayload struct {
	Game domain.GameKind `json:"game"`
}

type answerPayload struct {
	Value string `json:"value"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type roundPayload struct {
	Round   domain.RoundSnapshot `json:"round"`
	Outcome *app.Outcome         `json:"outcome,omitempty"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// conn owns the outbound side of one socket. The send channel is never
// closed: timer goroutines may still narrate after the socket is gone.
type conn struct {
	send chan outboundMessage[any]
	done chan struct{}
}

// push queues msg unless the connection has ended.
func (c *conn) push(msg outboundMessage[any]) {
	select {
	case c.send <- msg:
	case <-c.done:
	}
}

// offer queues msg only if there is room.
func (c *conn) offer(msg outboundMessage[any]) bool {
	select {
	case c.send <- msg:
		return true
	case <-c.done:
		return false
	default:
		return false
	}
}

func (c *conn) fail(err error) {
	c.push(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}})
}

// ServeWS upgrades the request and runs one player's screen flow over it.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn(h.logger, "ws upgrade failed", "error", err)
		return
	}
	defer ws.Close()

	c := &conn{
		send: make(chan outboundMessage[any], 32),
		done: make(chan struct{}),
	}
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for {
			select {
			case msg := <-c.send:
				if err := ws.WriteJSON(msg); err != nil {
					logging.Debug(h.logger, "ws write failed", "error", err)
					return
				}
			case <-c.done:
				return
			}
		}
	}()

	narrator := narration.NarratorFunc(func(_ context.Context, p narration.Phrase) {
		if !c.offer(outboundMessage[any]{Type: "speak", Payload: p}) {
			logging.Debug(h.logger, "speech dropped", "kind", p.Kind)
		}
	})
	nav := app.NewNavigator(h.service, narrator)
	ctx := context.Background()

	var forwarders sync.WaitGroup
	c.push(outboundMessage[any]{Type: "screen", Payload: nav.Screen()})

	for {
		var inbound inboundMessage
		if err := ws.ReadJSON(&inbound); err != nil {
			break
		}
		action, err := decodeAction(inbound)
		if err != nil {
			c.fail(err)
			continue
		}

		wasPlaying := nav.SessionID()
		view, err := nav.Dispatch(ctx, action)
		if err != nil {
			c.fail(err)
			continue
		}

		c.push(outboundMessage[any]{Type: "screen", Payload: view.Screen})
		if view.Round != nil {
			c.push(outboundMessage[any]{Type: "round", Payload: roundPayload{Round: *view.Round, Outcome: view.Outcome}})
		}
		if id := nav.SessionID(); id != "" && id != wasPlaying {
			h.forward(ctx, c, id, &forwarders)
		}
	}

	nav.Close(ctx)
	close(c.done)
	forwarders.Wait()
	<-writerDone
}

// forward relays rounds opened by the auto-advance timer. Resolved
// snapshots are skipped since the answer response already carried them.
func (h *WSHandler) forward(ctx context.Context, c *conn, sessionID string, wg *sync.WaitGroup) {
	updates, cancel, err := h.service.Subscribe(ctx, sessionID)
	if err != nil {
		c.fail(err)
		return
	}
	<-updates // current round, already sent

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancel()
		for {
			select {
			case snap, ok := <-updates:
				if !ok {
					return
				}
				if snap.State != domain.RoundAwaitingAnswer {
					continue
				}
				c.push(outboundMessage[any]{Type: "round", Payload: roundPayload{Round: snap}})
			case <-c.done:
				return
			}
		}
	}()
}

func decodeAction(msg inboundMessage) (app.Action, error) {
	switch app.ActionKind(msg.Type) {
	case app.ActionStart, app.ActionHint, app.ActionBack:
		return app.Action{Kind: app.ActionKind(msg.Type)}, nil
	case app.ActionSelect:
		var p selectPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return app.Action{}, errInvalidPayload(msg.Type)
		}
		return app.Action{Kind: app.ActionSelect, Game: p.Game}, nil
	case app.ActionAnswer:
		var p answerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return app.Action{}, errInvalidPayload(msg.Type)
		}
		return app.Action{Kind: app.ActionAnswer, Value: p.Value}, nil
	default:
		return app.Action{}, errUnsupported
	}
}
