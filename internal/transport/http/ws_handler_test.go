package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"esl-arcade-service/internal/app"
	"esl-arcade-service/internal/domain"
	"esl-arcade-service/internal/infra/memory"
	"github.com/gorilla/websocket"
)

func TestWebSocketArenaFlow(t *testing.T) {
	loader := memory.NewStaticLevelLoader([]domain.Level{sampleLevel()})
	levels := memory.NewLevelRepository(loader, time.Minute)
	service := app.NewArcadeService(levels, memory.NewStatsStore(), nil)
	wsHandler := NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?userId=u1&name=Alice"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Menu and stats arrive first.
	if typ, _ := readNext(conn, t, "levels"); typ != "levels" {
		t.Fatalf("expected levels, got %s", typ)
	}
	if typ, _ := readNext(conn, t, "stats"); typ != "stats" {
		t.Fatalf("expected stats, got %s", typ)
	}

	if err := conn.WriteJSON(map[string]any{
		"type":    "selectLevel",
		"payload": map[string]any{"levelId": "arena-1"},
	}); err != nil {
		t.Fatalf("write selectLevel: %v", err)
	}

	waitForPhase(conn, t, "GET_READY")
	// The ready countdown runs on the wall clock: 3 seconds.
	waitForPhase(conn, t, "QUESTION")

	if err := conn.WriteJSON(map[string]any{
		"type":    "answer",
		"payload": map[string]any{"optionIndex": 1},
	}); err != nil {
		t.Fatalf("write answer: %v", err)
	}

	_, payload := readUntil(conn, t, "answerResult")
	if payload["correct"] != true {
		t.Fatalf("expected correct answer, got %+v", payload)
	}
	waitForPhase(conn, t, "FEEDBACK")

	if err := conn.WriteJSON(map[string]any{"type": "ack"}); err != nil {
		t.Fatalf("write ack: %v", err)
	}
	waitForPhase(conn, t, "RESULTS")

	if err := conn.WriteJSON(map[string]any{"type": "ack"}); err != nil {
		t.Fatalf("write results ack: %v", err)
	}
	_, payload = readUntil(conn, t, "sessionCompleted")
	if payload["finalScore"] == nil {
		t.Fatalf("expected final score, got %+v", payload)
	}
	_, payload = readUntil(conn, t, "xpGranted")
	if payload["xpGained"] == nil {
		t.Fatalf("expected xp grant, got %+v", payload)
	}
}

func TestWebSocketRejectsSecondLevel(t *testing.T) {
	loader := memory.NewStaticLevelLoader([]domain.Level{sampleLevel()})
	levels := memory.NewLevelRepository(loader, time.Minute)
	service := app.NewArcadeService(levels, memory.NewStatsStore(), nil)
	wsHandler := NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?userId=u1&name=Alice"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	readNext(conn, t, "levels")
	readNext(conn, t, "stats")

	selectLevel := map[string]any{
		"type":    "selectLevel",
		"payload": map[string]any{"levelId": "arena-1"},
	}
	if err := conn.WriteJSON(selectLevel); err != nil {
		t.Fatalf("write selectLevel: %v", err)
	}
	waitForPhase(conn, t, "GET_READY")

	if err := conn.WriteJSON(selectLevel); err != nil {
		t.Fatalf("write second selectLevel: %v", err)
	}
	_, payload := readUntil(conn, t, "error")
	if payload["message"] != domain.ErrSessionActive.Error() {
		t.Fatalf("expected session-active error, got %+v", payload)
	}
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string `json:"type"`
		Payload any    `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s", expect, msg.Type)
	}
	payload, _ := msg.Payload.(map[string]any)
	return msg.Type, payload
}

// readUntil skips tick and unrelated frames until the wanted type arrives.
func readUntil(conn *websocket.Conn, t *testing.T, want string) (string, map[string]any) {
	t.Helper()
	deadline := time.Now().Add(6 * time.Second)
	for time.Now().Before(deadline) {
		typ, payload := readNext(conn, t, "")
		if typ == want {
			return typ, payload
		}
	}
	t.Fatalf("never received %s", want)
	return "", nil
}

func waitForPhase(conn *websocket.Conn, t *testing.T, phase string) map[string]any {
	t.Helper()
	deadline := time.Now().Add(6 * time.Second)
	for time.Now().Before(deadline) {
		typ, payload := readNext(conn, t, "")
		if typ == "phase" && payload["phase"] == phase {
			return payload
		}
	}
	t.Fatalf("never reached phase %s", phase)
	return nil
}

func sampleLevel() domain.Level {
	return domain.Level{
		ID:     "arena-1",
		Number: 1,
		Title:  "Novice Basics 1",
		Questions: []domain.Question{
			{
				ID:           "q1",
				Text:         "Meaning: 'Hit it off'",
				Options:      []string{"Hit someone", "Like each other immediately", "Leave quickly", "Argue loudly"},
				CorrectIndex: 1,
				TimeLimit:    10,
			},
		},
		XPReward: 110,
	}
}
