package content

import (
	"encoding/json"
	"log"
	"net/http"
)

// Handler serves the static lesson content as JSON.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Register mounts the content endpoints on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/content/lesson-plan", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, LessonPlan())
	})
	mux.HandleFunc("/api/content/phrases", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, Phrases())
	})
	mux.HandleFunc("/api/content/speaking-questions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, SpeakingQuestions())
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write content response: %v", err)
	}
}
