package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type Repo struct {
	DB *sql.DB
}

func NewSessionRepo(db *sql.DB) *Repo {
	return &Repo{
		DB: db,
	}
}

func (sr *Repo) Add(ctx context.Context, rec *Record) error {
	q := `INSERT INTO sessions(session_id, user_id, user_name, user_email, platform_token, remember, expiration_date)
		VALUES($1, $2, $3, $4, $5, $6, $7::timestamptz)`
	_, err := sr.DB.ExecContext(ctx, q,
		rec.ID, rec.UserID, rec.Name, rec.Email, rec.Token, rec.Remember, rec.Expiration)
	if err != nil {
		return fmt.Errorf("session/repo: failed insert into sessions %w", err)
	}
	return nil
}

func (sr *Repo) Get(ctx context.Context, sessionID string) (*Record, error) {
	q := `SELECT session_id, user_id, user_name, user_email, platform_token, remember, expiration_date
		FROM sessions WHERE session_id = $1`
	row := sr.DB.QueryRowContext(ctx, q, sessionID)
	rec := new(Record)
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Name, &rec.Email, &rec.Token, &rec.Remember, &rec.Expiration)
	if err == sql.ErrNoRows {
		return nil, ErrNoAuth
	} else if err != nil {
		return nil, fmt.Errorf("session/repo: failed get session, %w", err)
	}
	return rec, nil
}

func (sr *Repo) Prolong(ctx context.Context, sessionID string, exp time.Time) error {
	_, err := sr.DB.ExecContext(ctx,
		`UPDATE sessions SET expiration_date = $2::timestamptz WHERE session_id = $1`, sessionID, exp)
	if err != nil {
		return fmt.Errorf("session/repo: failed prolong session, %w", err)
	}
	return nil
}

func (sr *Repo) Destroy(ctx context.Context, sessionID string) error {
	_, err := sr.DB.ExecContext(ctx, "DELETE FROM sessions WHERE session_id = $1", sessionID)
	if err != nil {
		return err
	}
	return nil
}

func (sr *Repo) DestroyAll(ctx context.Context, userID string) error {
	_, err := sr.DB.ExecContext(ctx, "DELETE FROM sessions WHERE user_id = $1", userID)
	if err != nil {
		return err
	}
	return nil
}
