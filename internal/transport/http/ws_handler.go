package http

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"esl-arcade-service/internal/app"
	"esl-arcade-service/internal/arena"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	service  *app.ArcadeService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.ArcadeService) *WSHandler {
	return &WSHandler{
		service: service,
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

type selectLevelPayload struct {
	LevelID string `json:"levelId"`
}

type answerPayload struct {
	OptionIndex int `json:"optionIndex"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// wsCuePlayer forwards arena sound cues to the client. Cues are dropped
// rather than ever blocking the arena on a slow socket.
type wsCuePlayer struct {
	send chan<- outboundMessage[any]
}

func (p wsCuePlayer) Play(cue arena.Cue) {
	select {
	case p.send <- outboundMessage[any]{Type: "cue", Payload: string(cue)}:
	default:
	}
}

// ServeWS upgrades HTTP requests to websockets and wires them into the
// arcade use cases: one connection drives one player, one arena session at a
// time.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("userId")
	displayName := r.URL.Query().Get("name")
	if playerID == "" || displayName == "" {
		http.Error(w, "missing userId or name", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	send := make(chan outboundMessage[any], 32)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	var pumps sync.WaitGroup

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	deliver := func(msg outboundMessage[any]) bool {
		select {
		case send <- msg:
			return true
		case <-closeSignals:
			return false
		}
	}

	if menu, err := h.service.ListLevels(r.Context()); err == nil {
		send <- outboundMessage[any]{Type: "levels", Payload: menu}
	} else {
		send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
	}
	send <- outboundMessage[any]{Type: "stats", Payload: h.service.Ledger(r.Context(), playerID).Stats()}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "selectLevel":
			var payload selectLevelPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid selectLevel payload"}}
				continue
			}
			session, err := h.service.StartSession(r.Context(), playerID, payload.LevelID,
				arena.WithCuePlayer(wsCuePlayer{send: send}))
			if err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			events, cancel := session.Subscribe()
			pumps.Add(1)
			go func() {
				defer pumps.Done()
				defer cancel()
				h.pumpEvents(r, playerID, events, deliver)
			}()
			session.Start()
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid answer payload"}}
				continue
			}
			if session, ok := h.service.Session(playerID); ok {
				session.SubmitAnswer(payload.OptionIndex)
			}
		case "ack":
			if session, ok := h.service.Session(playerID); ok {
				session.AcknowledgeFeedback()
			}
		case "exit":
			h.service.EndSession(playerID)
		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}

	h.service.EndSession(playerID)
	close(closeSignals)
	pumps.Wait()
	close(send)
	<-writerDone
}

// pumpEvents relays arena events to the client until the session tears its
// subscription down. Completion triggers the score-to-experience handoff.
func (h *WSHandler) pumpEvents(r *http.Request, playerID string, events <-chan arena.Event, deliver func(outboundMessage[any]) bool) {
	for ev := range events {
		switch ev.Type {
		case arena.EventSessionCompleted:
			update := h.service.CompleteSession(r.Context(), playerID, ev.FinalScore)
			if !deliver(outboundMessage[any]{Type: "sessionCompleted", Payload: ev}) {
				return
			}
			if !deliver(outboundMessage[any]{Type: "xpGranted", Payload: update}) {
				return
			}
			if update.LevelUp {
				if !deliver(outboundMessage[any]{Type: "levelUp", Payload: update.Level}) {
					return
				}
			}
			for _, badge := range update.Unlocked {
				if !deliver(outboundMessage[any]{Type: "badgeUnlocked", Payload: badge}) {
					return
				}
			}
			if !deliver(outboundMessage[any]{Type: "stats", Payload: h.service.Ledger(r.Context(), playerID).Stats()}) {
				return
			}
		case arena.EventAnswerEvaluated:
			if !deliver(outboundMessage[any]{Type: "answerResult", Payload: ev}) {
				return
			}
		case arena.EventTick:
			if !deliver(outboundMessage[any]{Type: "tick", Payload: ev}) {
				return
			}
		default:
			if !deliver(outboundMessage[any]{Type: "phase", Payload: ev}) {
				return
			}
		}
	}
}
