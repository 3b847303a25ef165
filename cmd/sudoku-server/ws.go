package main

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

var upgrader websocket.Upgrader

// handleConnectWs speaks the command language from commands.go over a
// websocket: each text message carries newline-separated commands, each
// message is answered with the full session state as JSON.
func handleConnectWs(w http.ResponseWriter, r *http.Request) {
	sessionId := r.PathValue("id")
	var session GameSession
	if err := sessions.Get(sessionId, &session); err == ErrNotFound {
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer c.Close()
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				log.Warn("read: ", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		for _, cmd := range byPiece(text, "\n") {
			if err := executeCommand(&session.State, cmd); err != nil {
				log.Error("command: ", err)
				return
			}
			if session.State.IsSolved() {
				break
			}
		}
		if session.State.IsSolved() && session.EndedAt.IsZero() {
			session.finish()
			if err := pg.RecordFinishedGame(r.Context(), &session); err != nil {
				log.Error("unable to record finished game: ", err)
			}
		}
		if err := sessions.Set(sessionId, &session); err != nil {
			log.Error(err)
			break
		}
		if err := c.WriteJSON(session); err != nil {
			log.Error("write: ", err)
			break
		}
	}
}
