package main

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dbUrl string) (*postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(dbUrl)
	if err != nil {
		return nil, err
	}
	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	return &postgres{db}, nil
}

func (pg *postgres) Ping(ctx context.Context) error {
	return pg.db.Ping(ctx)
}

func (pg *postgres) Close() {
	pg.db.Close()
}

func (pg *postgres) CreatePlayer(
	ctx context.Context, username string, passwordHash []byte,
) (*Player, error) {
	var playerId int
	if err := pg.db.QueryRow(ctx, `
		INSERT INTO player (
			username, password_hash
		)
		VALUES (
			@username, @password_hash
		)
		RETURNING player_id;`,
		pgx.NamedArgs{
			"username":      username,
			"password_hash": passwordHash,
		}).Scan(&playerId); err != nil {
		return nil, err
	}
	player := &Player{
		PlayerId: playerId,
		Username: username,
	}
	return player, nil
}

func (pg *postgres) GetPlayer(
	ctx context.Context, username string,
) (*Player, error) {
	rows, err := pg.db.Query(ctx, `
		SELECT player_id, username, password_hash
		FROM player
		WHERE username = $1;`,
		username)
	if err != nil {
		return nil, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Player])
}

// RecordFinishedGame files the outcome of a solved puzzle. Only metadata is
// stored, never the puzzle itself.
func (pg *postgres) RecordFinishedGame(
	ctx context.Context, session *GameSession,
) error {
	_, err := pg.db.Exec(ctx, `
		INSERT INTO game_record (
			session_id, player_id, grid_order, givens, started_at, ended_at
		)
		VALUES (
			@session_id, @player_id, @grid_order, @givens, @started_at, @ended_at
		);`,
		pgx.NamedArgs{
			"session_id": session.SessionId,
			"player_id":  session.PlayerId,
			"grid_order": session.State.Order,
			"givens":     session.State.Givens,
			"started_at": session.StartedAt,
			"ended_at":   session.EndedAt,
		})
	return err
}
