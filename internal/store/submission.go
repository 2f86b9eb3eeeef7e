package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const tableSubmissions = "submissions"

var submissionColumns = []string{
	"id", "session_id", "timestamp", "endpoint", "answers", "kind", "status",
	"message", "product", "weather", "latency_ms", "request_body", "response_body",
}

type submissionRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *submissionRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *submissionRepo) AppendSubmission(ctx context.Context, data SubmissionData) error {
	answers, err := json.Marshal(data.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableSubmissions).
		Columns("session_id", "timestamp", "endpoint", "answers", "kind", "status",
			"message", "product", "weather", "latency_ms", "request_body", "response_body").
		Values(data.SessionID, r.clock().UnixMilli(), data.Endpoint, string(answers), data.Kind, data.Status,
			data.Message, data.Product, data.Weather, data.LatencyMs, data.RequestBody, data.ResponseBody).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

func (r *submissionRepo) ListSubmissions(ctx context.Context, opts QueryOpts) ([]Submission, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(submissionColumns...).
		From(b.Table(tableSubmissions)).
		OrderBy(entsql.Desc("id"))

	var preds []*entsql.Predicate
	if opts.Kind != "" {
		preds = append(preds, entsql.EQ("kind", opts.Kind))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", opts.From.UnixMilli()))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *submissionRepo) GetSubmission(ctx context.Context, id int64) (*Submission, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(submissionColumns...).
		From(b.Table(tableSubmissions)).
		Where(entsql.EQ("id", id)).
		Limit(1).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query submission %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanSubmission(rows)
}

func (r *submissionRepo) CountByKind(ctx context.Context) (map[string]int, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select("kind", entsql.Count("*")).
		From(b.Table(tableSubmissions)).
		GroupBy("kind").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count submissions: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}

func scanSubmission(rows *sql.Rows) (*Submission, error) {
	var (
		s       Submission
		ts      int64
		answers string
	)
	err := rows.Scan(&s.ID, &s.SessionID, &ts, &s.Endpoint, &answers, &s.Kind, &s.Status,
		&s.Message, &s.Product, &s.Weather, &s.LatencyMs, &s.RequestBody, &s.ResponseBody)
	if err != nil {
		return nil, fmt.Errorf("scan submission: %w", err)
	}
	s.Timestamp = time.UnixMilli(ts)
	if answers != "" {
		if err := json.Unmarshal([]byte(answers), &s.Answers); err != nil {
			return nil, fmt.Errorf("decode answers for submission %d: %w", s.ID, err)
		}
	}
	return &s, nil
}
