package main

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

type GameRecord struct {
	SessionId string  `json:"session_id" db:"session_id"`
	Username  *string `json:"username" db:"username"`
	GridOrder int     `json:"order" db:"grid_order"`
	Givens    int     `json:"givens" db:"givens"`
	Playtime  float64 `json:"playtime" db:"playtime"`
}

type GameRecordFilters struct {
	username *string
	givens   *int
}

func (f GameRecordFilters) WhereClause() (string, pgx.NamedArgs) {
	args := pgx.NamedArgs{}
	whereClauses := []string{}
	if f.username != nil {
		args["username"] = f.username
		whereClauses = append(whereClauses, "username = @username")
	}
	if f.givens != nil {
		args["givens"] = f.givens
		whereClauses = append(whereClauses, "givens = @givens")
	}
	if len(whereClauses) == 0 {
		return "", args
	}
	return strings.Join(whereClauses, " and "), args
}

type GameRecordsOption = func(*GameRecordFilters) error

func GameRecordsForPlayer(username string) GameRecordsOption {
	return func(f *GameRecordFilters) error {
		f.username = &username
		return nil
	}
}

func GameRecordsForGivens(givens int) GameRecordsOption {
	return func(f *GameRecordFilters) error {
		f.givens = &givens
		return nil
	}
}

func getGameRecords(
	ctx context.Context, options ...GameRecordsOption,
) ([]GameRecord, error) {
	filters := &GameRecordFilters{}
	for _, op := range options {
		err := op(filters)
		if err != nil {
			return nil, err
		}
	}

	sql := `
	select
		session_id
		, username
		, grid_order
		, givens
		, (
			extract('epoch' from ended_at) - extract('epoch' from started_at)
		) * 1000 playtime
	from game_record
		left outer join player using (player_id)`

	whereClause, args := filters.WhereClause()
	if whereClause != "" {
		sql += " where " + whereClause
	}

	sql += " order by playtime"

	rows, err := pg.db.Query(ctx, sql, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[GameRecord])
}

func handleGetRecords(w http.ResponseWriter, r *http.Request) {
	var options []GameRecordsOption
	query := r.URL.Query()
	if username := query.Get("username"); username != "" {
		options = append(options, GameRecordsForPlayer(username))
	}
	if s := query.Get("givens"); s != "" {
		givens, err := strconv.Atoi(s)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		options = append(options, GameRecordsForGivens(givens))
	}
	records, err := getGameRecords(r.Context(), options...)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if _, err := sendJSON(w, records); err != nil {
		log.Error(err)
	}
}

func handleGetOwnRecords(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(ctxPlayerClaims).(*PlayerClaims)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	records, err := getGameRecords(
		r.Context(), GameRecordsForPlayer(claims.Username),
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	refreshPlayerCookies(w, *claims)
	if _, err := sendJSON(w, records); err != nil {
		log.Error(err)
	}
}
