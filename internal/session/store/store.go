package store

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"texportal_backend/internal/navigation"
	"texportal_backend/platform/config"

	"github.com/redis/go-redis/v9"
)

// Store keeps session state in Redis as one JSON blob per session. Every
// write refreshes the TTL so active sessions never expire mid use.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, cfg config.SessionConfig) *Store {
	ttl := cfg.GetSessionTTL()
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{rdb: rdb, ttl: ttl}
}

// NewRedisClient builds the shared Redis client from the configured URL.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	if cfg.GetRedisTLSInsecure() {
		if opt.TLSConfig == nil {
			opt.TLSConfig = &tls.Config{InsecureSkipVerify: true}
		} else {
			opt.TLSConfig.InsecureSkipVerify = true
		}
	}

	return redis.NewClient(opt), nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Get loads the state for a session. An absent session yields a fresh
// default state, never an error.
func (s *Store) Get(ctx context.Context, sessionID string) (State, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return newState(), nil
	}
	if err != nil {
		return State{}, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	return decode(raw)
}

// Clear drops the session blob entirely.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKey(sessionID)).Err()
}

func (s *Store) save(ctx context.Context, sessionID string, st State) error {
	st.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(sessionID), raw, s.ttl).Err()
}

// update applies one mutation under read-modify-write. Sessions are
// single-user so lost updates are not a practical concern.
func (s *Store) update(ctx context.Context, sessionID string, apply func(*State)) error {
	st, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	apply(&st)
	return s.save(ctx, sessionID, st)
}

func (s *Store) SetCurrentScreen(ctx context.Context, sessionID, screen string) error {
	return s.update(ctx, sessionID, func(st *State) {
		st.CurrentScreen = screen
	})
}

func (s *Store) SetLeadFilter(ctx context.Context, sessionID, filter string) error {
	return s.update(ctx, sessionID, func(st *State) {
		st.LeadFilter = filter
	})
}

func (s *Store) SetStatusFilter(ctx context.Context, sessionID, screen, status string) error {
	return s.update(ctx, sessionID, func(st *State) {
		st.StatusFilters[screen] = status
	})
}

func (s *Store) SetSelectedCustomer(ctx context.Context, sessionID, customerID string) error {
	return s.update(ctx, sessionID, func(st *State) {
		st.SelectedCustomerID = customerID
	})
}

// SetMode records whether the session belongs to an authenticated user or
// a guest.
func (s *Store) SetMode(ctx context.Context, sessionID, mode string) error {
	return s.update(ctx, sessionID, func(st *State) {
		st.Mode = mode
	})
}

var (
	_ navigation.StateWriter    = (*Store)(nil)
	_ navigation.ScreenRecorder = (*Store)(nil)
)
