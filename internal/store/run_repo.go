package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Run is one tool invocation, recorded for auditing.
type Run struct {
	ID        string    `json:"id"`
	Tool      string    `json:"tool"`
	Source    string    `json:"source"` // url, file path, or "base64"
	MediaType string    `json:"media_type,omitempty"`
	Pages     int       `json:"pages"`
	SizeBytes int64     `json:"size_bytes"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RunRepo struct{ DB *sql.DB }

// Open connects to Postgres and makes sure the runs table exists.
func Open(ctx context.Context, dsn string) (*RunRepo, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	r := &RunRepo{DB: db}
	if err := r.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *RunRepo) ensureSchema(ctx context.Context) error {
	const q = `
create table if not exists ocr_runs (
	id          uuid primary key,
	tool        text not null,
	source      text not null default '',
	media_type  text not null default '',
	pages       int  not null default 0,
	size_bytes  bigint not null default 0,
	success     boolean not null,
	error       text not null default '',
	created_at  timestamptz not null default now()
)`
	_, err := r.DB.ExecContext(ctx, q)
	return err
}

// Insert records a run. The ID is assigned here when empty.
func (r *RunRepo) Insert(ctx context.Context, run Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	const q = `
insert into ocr_runs(id, tool, source, media_type, pages, size_bytes, success, error)
values ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := r.DB.ExecContext(ctx, q,
		run.ID, run.Tool, run.Source, run.MediaType, run.Pages, run.SizeBytes, run.Success, run.Error)
	return err
}

// Recent returns the latest runs, newest first.
func (r *RunRepo) Recent(ctx context.Context, limit int) ([]Run, error) {
	const q = `
select id, tool, source, media_type, pages, size_bytes, success, error, created_at
from ocr_runs order by created_at desc limit $1`
	rows, err := r.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Tool, &run.Source, &run.MediaType,
			&run.Pages, &run.SizeBytes, &run.Success, &run.Error, &run.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func (r *RunRepo) Close() error { return r.DB.Close() }
