package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"blog-publishing-platform/internal/domain"
)

// PostgresSessionRepository implements SessionRepository using PostgreSQL.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSessionRepository creates a new PostgresSessionRepository.
func NewPostgresSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

// Create stores a new session for the user.
func (r *PostgresSessionRepository) Create(ctx context.Context, token, userID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sessions (token, user_id, created_at)
		VALUES ($1, $2, NOW())
	`, token, userID)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetUserByToken resolves a session token to its user, or nil for an unknown
// token.
func (r *PostgresSessionRepository) GetUserByToken(ctx context.Context, token string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT users.id, users.name, users.email, users.password_hash, users.role,
		       users.created_at, users.updated_at
		FROM sessions
		JOIN users ON users.id = sessions.user_id
		WHERE sessions.token = $1
	`, token)
	return scanUser(row)
}

// Delete removes a session. Deleting an unknown token is not an error.
func (r *PostgresSessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM sessions WHERE token = $1
	`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
