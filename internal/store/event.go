package store

import (
	"context"
	"fmt"
	"time"
)

// QuizEvent is one recorded quiz attempt, pass or fail.
type QuizEvent struct {
	ID        int64
	Timestamp time.Time
	ModuleID  int
	Score     int
	Total     int
	Passed    bool
}

// AppendQuizEvent records a finished quiz attempt.
func (s *Store) AppendQuizEvent(ctx context.Context, ev QuizEvent) error {
	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO quiz_events (timestamp, module_id, score, total, passed) VALUES (?, ?, ?, ?, ?)",
		ts.UTC().Format(time.RFC3339), ev.ModuleID, ev.Score, ev.Total, ev.Passed)
	if err != nil {
		return fmt.Errorf("append quiz event: %w", err)
	}
	return nil
}

// QueryQuizEvents returns up to limit attempts, newest first.
// limit <= 0 means no limit.
func (s *Store) QueryQuizEvents(ctx context.Context, limit int) ([]QuizEvent, error) {
	q := "SELECT id, timestamp, module_id, score, total, passed FROM quiz_events ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}
	defer rows.Close()

	var events []QuizEvent
	for rows.Next() {
		var ev QuizEvent
		var ts string
		if err := rows.Scan(&ev.ID, &ts, &ev.ModuleID, &ev.Score, &ev.Total, &ev.Passed); err != nil {
			return nil, fmt.Errorf("scan quiz event: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			ev.Timestamp = t
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz events: %w", err)
	}
	return events, nil
}

// ClearQuizEvents deletes all recorded attempts.
func (s *Store) ClearQuizEvents(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM quiz_events"); err != nil {
		return fmt.Errorf("clear quiz events: %w", err)
	}
	return nil
}
