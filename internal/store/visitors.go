package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Zachkp/portfolio/internal/contact"
)

// Visit is one tracked page view. The client IP is only ever stored hashed.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	VisitedAt time.Time `json:"visited_at"`
}

// Stats summarizes visitors and contact messages for the admin dashboard.
type Stats struct {
	TotalVisitors     int64             `json:"total_visitors"`
	UniqueVisitors    int64             `json:"unique_visitors"`
	VisitorsToday     int64             `json:"visitors_today"`
	VisitorsThisWeek  int64             `json:"visitors_this_week"`
	TotalMessages     int64             `json:"total_messages"`
	DeliveredMessages int64             `json:"delivered_messages"`
	FailedMessages    int64             `json:"failed_messages"`
	PendingMessages   int64             `json:"pending_messages"`
	RecentVisitors    []Visit           `json:"recent_visitors"`
	RecentMessages    []contact.Message `json:"recent_messages"`
}

func (d *DB) RecordVisit(ctx context.Context, v Visit) error {
	_, err := d.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, visited_at)
		VALUES (?, ?, ?, ?)`, v.HashedIP, v.UserAgent, v.Path, toMillis(v.VisitedAt))
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// CleanupVisits deletes visits recorded before cutoff and returns how many were removed.
func (d *DB) CleanupVisits(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := d.ExecContext(ctx, `DELETE FROM visitors WHERE visited_at < ?`, toMillis(cutoff))
	if err != nil {
		return 0, fmt.Errorf("cleaning up visitors: %w", err)
	}
	return res.RowsAffected()
}

// RecentVisits returns up to limit visits, newest first.
func (d *DB) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := d.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, visited_at
		FROM visitors
		ORDER BY visited_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying visitors: %w", err)
	}
	defer rows.Close()

	var out []Visit
	for rows.Next() {
		var v Visit
		var at int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &at); err != nil {
			return nil, fmt.Errorf("scanning visitor: %w", err)
		}
		v.VisitedAt = fromMillis(at)
		out = append(out, v)
	}
	return out, rows.Err()
}

// Stats computes dashboard figures relative to now. "Today" starts at midnight UTC.
func (d *DB) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.AddDate(0, 0, -7)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{toMillis(startOfDay)}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{toMillis(weekAgo)}},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM messages`, nil},
		{&stats.DeliveredMessages, `SELECT COUNT(*) FROM messages WHERE status = 'delivered'`, nil},
		{&stats.FailedMessages, `SELECT COUNT(*) FROM messages WHERE status = 'failed'`, nil},
		{&stats.PendingMessages, `SELECT COUNT(*) FROM messages WHERE status = 'pending'`, nil},
	}
	for _, c := range counts {
		if err := d.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("computing stats: %w", err)
		}
	}

	var err error
	if stats.RecentVisitors, err = d.RecentVisits(ctx, 50); err != nil {
		return nil, err
	}
	if stats.RecentMessages, err = d.RecentMessages(ctx, 10); err != nil {
		return nil, err
	}
	return stats, nil
}
