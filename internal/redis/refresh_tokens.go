package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gomodule/redigo/redis"
	"github.com/whenmeet/availability-backend/internal/config"
	"github.com/whenmeet/availability-backend/internal/model"
	"go.uber.org/zap"
)

const refreshTokenPrefix = "refresh_token:"

type RefreshTokenRepository struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
}

func NewRefreshTokenRepository(pool *redis.Pool, logger *zap.SugaredLogger) *RefreshTokenRepository {
	return &RefreshTokenRepository{pool: pool, logger: logger}
}

// Add stores the session token with the configured TTL. A colliding token
// returns model.ErrAlreadyExists so the caller can regenerate.
func (r *RefreshTokenRepository) Add(ctx context.Context, session string, id int64) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get conn: %w", err)
	}
	defer r.close(conn)

	reply, err := redis.String(conn.Do("SET", refreshTokenPrefix+session, id,
		"EX", int(config.SessionTTl().Seconds()), "NX"))
	if errors.Is(err, redis.ErrNil) {
		return model.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("SET: %w", err)
	}
	if reply != "OK" {
		return fmt.Errorf("unexpected reply %q", reply)
	}

	return nil
}

func (r *RefreshTokenRepository) Get(ctx context.Context, session string) (int64, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("get conn: %w", err)
	}
	defer r.close(conn)

	id, err := redis.Int64(conn.Do("GET", refreshTokenPrefix+session))
	if errors.Is(err, redis.ErrNil) {
		return 0, model.ErrNoRecord
	}
	if err != nil {
		return 0, fmt.Errorf("GET: %w", err)
	}

	return id, nil
}

// Refresh rotates old to new, keeping the stored user id. The lookup, insert
// and delete are separate round trips, so two concurrent refreshes of the
// same token can both succeed; sessions are last write wins like choice
// submission, so the window is accepted rather than guarded.
func (r *RefreshTokenRepository) Refresh(ctx context.Context, old, new string) error {
	id, err := r.Get(ctx, old)
	if err != nil {
		return err
	}

	if err := r.Add(ctx, new, id); err != nil {
		return err
	}

	return r.Delete(ctx, old)
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, session string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get conn: %w", err)
	}
	defer r.close(conn)

	deleted, err := redis.Int(conn.Do("DEL", refreshTokenPrefix+session))
	if err != nil {
		return fmt.Errorf("DEL: %w", err)
	}
	if deleted == 0 {
		return model.ErrNoRecord
	}

	return nil
}

func (r *RefreshTokenRepository) close(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		r.logger.Errorw("Failed closing redis connection", "err", err)
	}
}
