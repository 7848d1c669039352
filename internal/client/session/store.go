package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/pablomagana/recomenzar/internal/client/models"
	"github.com/pablomagana/recomenzar/internal/client/repositories/prefs"
	"github.com/pablomagana/recomenzar/internal/common"
	"github.com/pablomagana/recomenzar/internal/logging"
)

// Preference keys for the persisted session trio.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUser         = "user"
)

// AuthAPI is the raw auth transport the store drives. Implemented by
// api.AuthClient.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
}

// Notifier is the hook into the notification scheduler: Setup runs the
// permission check and reminder reconciliation after a session becomes
// authenticated, Teardown cancels reminder and schedule notifications
// when it ends. Both are best-effort.
type Notifier interface {
	Setup(ctx context.Context)
	Teardown(ctx context.Context)
}

// refreshCall is one in-flight refresh shared by every waiter. done is
// closed exactly once, after token/err are final.
type refreshCall struct {
	done  chan struct{}
	token string
	err   error
}

// Store holds the session and coordinates the single-flight refresh.
type Store struct {
	auth     AuthAPI
	prefs    prefs.Repository
	notifier Notifier
	log      logging.Logger

	now func() time.Time // test seam

	mu          sync.Mutex
	access      string
	refresh     string
	user        *models.User
	initialized bool
	inflight    *refreshCall
}

func NewStore(auth AuthAPI, prefs prefs.Repository, notifier Notifier, log logging.Logger) *Store {
	return &Store{
		auth:     auth,
		prefs:    prefs,
		notifier: notifier,
		log:      log.With("component", "session"),
		now:      time.Now,
	}
}

// Initialize restores the persisted session. It is idempotent: a second
// call is a no-op. If the stored access token is about to expire (or
// cannot be parsed), the store refreshes it before declaring the session
// usable; if that refresh fails, all session state is cleared so the
// caller never sees a partially-valid session.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.initialized = true
		s.mu.Unlock()
	}()

	access, err := s.prefs.Get(ctx, keyAccessToken)
	if err != nil {
		return fmt.Errorf("failed to load access token: %w", err)
	}
	refresh, err := s.prefs.Get(ctx, keyRefreshToken)
	if err != nil {
		return fmt.Errorf("failed to load refresh token: %w", err)
	}
	rawUser, err := s.prefs.Get(ctx, keyUser)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	if access == "" || refresh == "" || rawUser == "" {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.log.Warn(ctx, "stored user profile unreadable, discarding session")
		return s.clearAuthData(ctx)
	}

	s.mu.Lock()
	s.access = access
	s.refresh = refresh
	s.user = &user
	s.mu.Unlock()

	if tokenNeedsRefresh(access, s.now()) {
		if _, err := s.RefreshAccessToken(ctx); err != nil {
			s.log.Warn(ctx, "proactive refresh failed, starting unauthenticated", "error", err)
			return nil
		}
	}

	s.notifier.Setup(ctx)
	return nil
}

// Login authenticates and installs the returned session atomically.
func (s *Store) Login(ctx context.Context, req models.LoginRequest) error {
	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		return err
	}
	if err := s.setAuthData(ctx, resp); err != nil {
		return err
	}
	s.notifier.Setup(ctx)
	return nil
}

// Register creates an account and installs the returned session.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := s.auth.Register(ctx, req)
	if err != nil {
		return err
	}
	if err := s.setAuthData(ctx, resp); err != nil {
		return err
	}
	s.notifier.Setup(ctx)
	return nil
}

// RefreshAccessToken exchanges the refresh token for a new pair.
//
// Single-flight: if a refresh is already running, the caller waits for
// that same operation and shares its outcome. On success every waiter
// receives the new access token; on failure every waiter receives the
// same error and the session is cleared. A caller whose context expires
// while waiting still leaves the shared refresh running: its result is
// installed for the other waiters.
func (s *Store) RefreshAccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	if c := s.inflight; c != nil {
		s.mu.Unlock()
		<-c.done
		return c.token, c.err
	}

	if s.refresh == "" {
		s.mu.Unlock()
		return "", common.ErrNoRefreshToken
	}

	c := &refreshCall{done: make(chan struct{})}
	s.inflight = c
	refreshToken := s.refresh
	s.mu.Unlock()

	resp, err := s.auth.Refresh(ctx, refreshToken)
	if err != nil {
		c.err = fmt.Errorf("token refresh failed: %w", err)
		if clearErr := s.clearAuthData(ctx); clearErr != nil {
			s.log.Error(ctx, "failed to clear session after refresh failure", "error", clearErr)
		}
	} else {
		if err := s.setAuthData(ctx, resp); err != nil {
			c.err = err
		} else {
			c.token = resp.AccessToken
		}
	}

	s.mu.Lock()
	s.inflight = nil
	s.mu.Unlock()
	close(c.done)

	return c.token, c.err
}

// Logout tells the server the session is over (best-effort: network
// failures are ignored, logout is a local operation), then
// unconditionally clears persisted and in-memory state and cancels
// reminder and schedule notifications.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.auth.Logout(ctx); err != nil {
		s.log.Debug(ctx, "server logout failed, continuing locally", "error", err)
	}
	return s.clearAuthData(ctx)
}

// UpdateUser replaces the cached profile without touching the tokens.
func (s *Store) UpdateUser(ctx context.Context, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.prefs.Set(ctx, keyUser, string(raw)); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

// User returns the cached profile, nil when unauthenticated.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether both an access token and a user
// profile are held.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access != "" && s.user != nil
}

// AccessToken implements api.TokenProvider.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access
}

// Refresh implements api.TokenProvider.
func (s *Store) Refresh(ctx context.Context) (string, error) {
	return s.RefreshAccessToken(ctx)
}

// HandleRefreshFailure implements api.TokenProvider: a failed refresh is
// terminal, so the gateway forces a full logout.
func (s *Store) HandleRefreshFailure(ctx context.Context) {
	if err := s.Logout(ctx); err != nil {
		s.log.Error(ctx, "forced logout failed", "error", err)
	}
}

// setAuthData persists and installs the full trio. The in-memory state
// changes only after persistence succeeds, so a storage failure cannot
// leave disk and memory disagreeing about who is logged in.
func (s *Store) setAuthData(ctx context.Context, resp *models.AuthResponse) error {
	rawUser, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	if err := s.prefs.Set(ctx, keyAccessToken, resp.AccessToken); err != nil {
		return err
	}
	if err := s.prefs.Set(ctx, keyRefreshToken, resp.RefreshToken); err != nil {
		return err
	}
	if err := s.prefs.Set(ctx, keyUser, string(rawUser)); err != nil {
		return err
	}

	s.mu.Lock()
	s.access = resp.AccessToken
	s.refresh = resp.RefreshToken
	u := resp.User
	s.user = &u
	s.mu.Unlock()
	return nil
}

// clearAuthData wipes memory and persistence and tears down local
// notifications. Memory is cleared first so no caller can observe stale
// tokens while the store deletes are in flight.
func (s *Store) clearAuthData(ctx context.Context) error {
	s.mu.Lock()
	s.access = ""
	s.refresh = ""
	s.user = nil
	s.mu.Unlock()

	var firstErr error
	for _, key := range []string{keyAccessToken, keyRefreshToken, keyUser} {
		if err := s.prefs.Delete(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	s.notifier.Teardown(ctx)
	return firstErr
}
