package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/contact"
)

const messageColumns = `id, name, email, body, status, attempts, last_error, created_at, updated_at, delivered_at`

func (d *DB) InsertMessage(ctx context.Context, msg contact.Message) error {
	_, err := d.ExecContext(ctx, `
		INSERT INTO messages (id, name, email, body, status, attempts, last_error, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		msg.ID.String(), msg.Payload.Name, msg.Payload.Email, msg.Payload.Message,
		string(msg.Status), msg.Attempts, msg.LastError,
		toMillis(msg.CreatedAt), toMillis(msg.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting message %s: %w", msg.ID, err)
	}
	return nil
}

func (d *DB) MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) error {
	return d.updateMessage(ctx, id, `
		UPDATE messages
		SET status = 'delivered', attempts = attempts + 1, last_error = '', updated_at = ?, delivered_at = ?
		WHERE id = ?`, toMillis(at), toMillis(at), id.String())
}

func (d *DB) MarkFailed(ctx context.Context, id uuid.UUID, lastErr string, at time.Time) error {
	return d.updateMessage(ctx, id, `
		UPDATE messages
		SET status = 'failed', attempts = attempts + 1, last_error = ?, updated_at = ?
		WHERE id = ?`, lastErr, toMillis(at), id.String())
}

// ClaimMessage marks an undelivered message as in flight if nobody has touched it since seen.
func (d *DB) ClaimMessage(ctx context.Context, id uuid.UUID, seen, at time.Time) (bool, error) {
	res, err := d.ExecContext(ctx, `
		UPDATE messages
		SET status = 'pending', updated_at = ?
		WHERE id = ? AND status != 'delivered' AND updated_at = ?`,
		toMillis(at), id.String(), toMillis(seen))
	if err != nil {
		return false, fmt.Errorf("claiming message %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claiming message %s: %w", id, err)
	}
	return n == 1, nil
}

func (d *DB) updateMessage(ctx context.Context, id uuid.UUID, query string, args ...any) error {
	res, err := d.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating message %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating message %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// RetryableMessages returns messages with attempts left that either failed or have been
// pending (in flight) since before staleBefore, oldest first.
func (d *DB) RetryableMessages(ctx context.Context, maxAttempts int, staleBefore time.Time, limit int) ([]contact.Message, error) {
	return d.queryMessages(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE attempts < ?
		  AND (status = 'failed' OR (status = 'pending' AND updated_at < ?))
		ORDER BY created_at ASC
		LIMIT ?`, maxAttempts, toMillis(staleBefore), limit)
}

func (d *DB) Message(ctx context.Context, id uuid.UUID) (contact.Message, error) {
	msgs, err := d.queryMessages(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = ?`, id.String())
	if err != nil {
		return contact.Message{}, err
	}
	if len(msgs) == 0 {
		return contact.Message{}, ErrNotFound
	}
	return msgs[0], nil
}

// RecentMessages returns up to limit messages, newest first.
func (d *DB) RecentMessages(ctx context.Context, limit int) ([]contact.Message, error) {
	return d.queryMessages(ctx, `
		SELECT `+messageColumns+` FROM messages
		ORDER BY created_at DESC
		LIMIT ?`, limit)
}

func (d *DB) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	return d.updateMessage(ctx, id, `DELETE FROM messages WHERE id = ?`, id.String())
}

func (d *DB) queryMessages(ctx context.Context, query string, args ...any) ([]contact.Message, error) {
	rows, err := d.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var out []contact.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, rows.Err()
}

func scanMessage(rows *sql.Rows) (contact.Message, error) {
	var (
		msg                  contact.Message
		id, status           string
		createdAt, updatedAt int64
		deliveredAt          sql.NullInt64
	)
	err := rows.Scan(&id, &msg.Payload.Name, &msg.Payload.Email, &msg.Payload.Message,
		&status, &msg.Attempts, &msg.LastError, &createdAt, &updatedAt, &deliveredAt)
	if err != nil {
		return contact.Message{}, fmt.Errorf("scanning message: %w", err)
	}

	msg.ID, err = uuid.Parse(id)
	if err != nil {
		return contact.Message{}, errors.Join(fmt.Errorf("message id %q", id), err)
	}
	msg.Status = contact.Status(status)
	msg.CreatedAt = fromMillis(createdAt)
	msg.UpdatedAt = fromMillis(updatedAt)
	if deliveredAt.Valid {
		t := fromMillis(deliveredAt.Int64)
		msg.DeliveredAt = &t
	}
	return msg, nil
}
