package roster

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore держит ростер в таблице participants:
//
//	CREATE TABLE participants (
//	    id       SERIAL PRIMARY KEY,
//	    nickname TEXT NOT NULL,
//	    game_id  TEXT NOT NULL
//	);
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore - Создание подключения
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("cannot ping db: %w", err)
	}
	return &PostgresStore{db: pool}, nil
}

func (s *PostgresStore) Append(ctx context.Context, e Entry) error {
	_, err := s.db.Exec(ctx,
		"INSERT INTO participants (nickname, game_id) VALUES ($1, $2)",
		e.Nickname, e.GameID)
	return err
}

func (s *PostgresStore) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.Query(ctx, "SELECT nickname, game_id FROM participants ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Nickname, &e.GameID); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close - закрываем пул соединений
func (s *PostgresStore) Close() {
	s.db.Close()
}
