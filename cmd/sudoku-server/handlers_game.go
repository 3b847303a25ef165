package main

import (
	"context"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/schema"

	"sudoku-server/internal/sudoku"
)

var (
	dec = schema.NewDecoder()
	rnd = rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(),
		new(maphash.Hash).Sum64(),
	))
)

func init() {
	dec.IgnoreUnknownKeys(true)
}

type NewGameParams struct {
	Order  int `schema:"order"`
	Givens int `schema:"givens,required"`
}

type CellParams struct {
	X int `schema:"x"`
	Y int `schema:"y"`
}

type DigitParams struct {
	X   int `schema:"x"`
	Y   int `schema:"y"`
	Num int `schema:"num"`
}

func handleNewGame(w http.ResponseWriter, r *http.Request) {
	var newGameParams NewGameParams
	if err := dec.Decode(&newGameParams, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if newGameParams.Order == 0 {
		newGameParams.Order = 9
	}
	params := sudoku.GameParams(newGameParams)
	if err := params.Validate(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	game, err := sudoku.NewGame(&params, rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	session := &GameSession{
		State:     *game,
		StartedAt: time.Now().UTC(),
	}
	if claims, ok := r.Context().Value(ctxPlayerClaims).(*PlayerClaims); ok {
		log.Debug("creating session for player ", claims.Username)
		session.PlayerId = &claims.PlayerId
		refreshPlayerCookies(w, *claims)
	} else {
		log.Debug("creating anonymous session")
	}
	if err := sessions.Create(session); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

func fetchSession(w http.ResponseWriter, r *http.Request) (*GameSession, bool) {
	var session GameSession
	err := sessions.Get(r.PathValue("id"), &session)
	if err == ErrNotFound {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return nil, false
	}
	return &session, true
}

func handleGetGame(w http.ResponseWriter, r *http.Request) {
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

// saveAndSend persists the mutated session, filing a win record first if
// this request completed the puzzle.
func saveAndSend(
	ctx context.Context, w http.ResponseWriter, session *GameSession,
) {
	if session.State.IsSolved() && session.EndedAt.IsZero() {
		session.finish()
		if err := pg.RecordFinishedGame(ctx, session); err != nil {
			log.Error("unable to record finished game: ", err)
		}
	}
	if err := sessions.Set(session.SessionId, session); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

func handleWrite(w http.ResponseWriter, r *http.Request) {
	var params DigitParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	if err := session.State.WriteCell(params.X, params.Y, params.Num); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	saveAndSend(r.Context(), w, session)
}

func handleErase(w http.ResponseWriter, r *http.Request) {
	var params CellParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	if err := session.State.EraseCell(params.X, params.Y); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	saveAndSend(r.Context(), w, session)
}

func handleNote(w http.ResponseWriter, r *http.Request) {
	var params DigitParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	if err := session.State.WriteNote(params.X, params.Y, params.Num); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	saveAndSend(r.Context(), w, session)
}

func handleUnnote(w http.ResponseWriter, r *http.Request) {
	var params DigitParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	if err := session.State.ClearNote(params.X, params.Y, params.Num); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	saveAndSend(r.Context(), w, session)
}

func handleClear(w http.ResponseWriter, r *http.Request) {
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	session.State.ClearCells()
	saveAndSend(r.Context(), w, session)
}

func handleClearNotes(w http.ResponseWriter, r *http.Request) {
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	session.State.ClearAllNotes()
	saveAndSend(r.Context(), w, session)
}

// Accepts newline-separated commands in the request body, interpreted in
// order (see commands.go for the syntax). A malformed command drops all
// changes and reports its line number.
func handleBatch(w http.ResponseWriter, r *http.Request) {
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	lines := strings.TrimSpace(string(body))
	for i, c := range byPiece(lines, "\n") {
		if err := executeCommand(&session.State, c); err != nil {
			payload := struct {
				Loc     int    `json:"loc"`
				Message string `json:"message"`
			}{i, err.Error()}
			w.WriteHeader(http.StatusBadRequest)
			if _, err := sendJSON(w, payload); err != nil {
				log.Error(err)
			}
			return
		}
		if session.State.IsSolved() {
			break
		}
	}
	saveAndSend(r.Context(), w, session)
}
