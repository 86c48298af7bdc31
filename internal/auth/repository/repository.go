package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"texportal_backend/internal/auth/password"
	"texportal_backend/platform/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned for unknown users and revoked or expired tokens.
var ErrNotFound = errors.New("not found")

type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
}

// Repository holds the fixed demo user list and keeps refresh tokens in
// Redis. There is no user signup; the portal ships with one owner account
// whose credentials come from configuration.
type Repository struct {
	users []User
	rdb   *redis.Client
}

func New(rdb *redis.Client, cfg config.AuthServiceConfig) (*Repository, error) {
	hash, err := password.Hash(cfg.GetDemoUserPassword())
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	email := strings.ToLower(cfg.GetDemoUserEmail())
	users := []User{
		{
			// Stable ID so session state survives restarts.
			ID:           uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)),
			Email:        email,
			Name:         "Owner",
			PasswordHash: hash,
		},
	}

	return &Repository{users: users, rdb: rdb}, nil
}

func (r *Repository) GetUserByEmail(email string) (User, error) {
	needle := strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.users {
		if u.Email == needle {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *Repository) GetUserByID(id uuid.UUID) (User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func refreshKey(hash string) string {
	return "refresh:" + hash
}

func (r *Repository) CreateRefreshToken(ctx context.Context, userID uuid.UUID, hash string, ttl time.Duration) error {
	return r.rdb.Set(ctx, refreshKey(hash), userID.String(), ttl).Err()
}

func (r *Repository) GetRefreshToken(ctx context.Context, hash string) (uuid.UUID, error) {
	raw, err := r.rdb.Get(ctx, refreshKey(hash)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(raw)
}

func (r *Repository) RevokeRefreshToken(ctx context.Context, hash string) error {
	return r.rdb.Del(ctx, refreshKey(hash)).Err()
}
