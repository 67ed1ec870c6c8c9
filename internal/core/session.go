package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tqmcore/pkg/domain"
)

// Access secrets as shipped with the facility install. Single-tenant, shared
// secrets, not user accounts.
const (
	adminSecret  = "305060"
	viewerSecret = "1"
	demoSecret   = "0000"
)

// demoLifetime caps a demo session at two days from its first login.
const demoLifetime = 48 * time.Hour

// demoCheckInterval is how often a live demo session re-checks its deadline.
const demoCheckInterval = time.Minute

var (
	// ErrBadSecret reports an unrecognized access secret.
	ErrBadSecret = errors.New("unrecognized secret")
	// ErrDemoExpired reports a demo session past its two-day window.
	ErrDemoExpired = errors.New("demo period expired")
	// ErrElevationRequired reports a privileged command held back until an
	// admin or demo secret confirms it.
	ErrElevationRequired = errors.New("elevation required")
	// ErrNoPendingCommand reports an Unlock with nothing held back.
	ErrNoPendingCommand = errors.New("no pending command")
)

// PendingCommand is a privileged action held back by the gate until a secret
// confirms it.
type PendingCommand struct {
	Name string
	Run  func(context.Context) error
}

// Gate enforces session roles. Viewers read freely; mutations require the
// admin secret or a live demo session. The demo clock is anchored in the
// store so reinstalls and restarts cannot reset the trial window.
type Gate struct {
	store      domain.Store
	logger     *zap.Logger
	nowFn      func() time.Time
	checkEvery time.Duration

	mu        sync.Mutex
	role      Role
	loggedIn  bool
	pending   *PendingCommand
	stopWatch context.CancelFunc
}

// NewGate builds a logged-out gate over the given store.
func NewGate(store domain.Store, logger *zap.Logger, now func() time.Time) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Gate{store: store, logger: logger, nowFn: now, checkEvery: demoCheckInterval}
}

// Login resolves a secret to a role. A first demo login anchors the trial
// start; later demo logins fail once the window has elapsed.
func (g *Gate) Login(ctx context.Context, secret string) (Role, error) {
	var role Role
	switch secret {
	case adminSecret:
		role = RoleAdmin
	case viewerSecret:
		role = RoleViewer
	case demoSecret:
		if err := g.checkDemoWindow(ctx, true); err != nil {
			return "", err
		}
		role = RoleDemo
	default:
		g.logger.Warn("login rejected")
		return "", ErrBadSecret
	}

	g.mu.Lock()
	g.role = role
	g.loggedIn = true
	g.pending = nil
	g.mu.Unlock()
	g.logger.Info("session opened", zap.String("role", string(role)))
	return role, nil
}

// checkDemoWindow validates the demo deadline, anchoring the start timestamp
// on first use when anchor is true.
func (g *Gate) checkDemoWindow(ctx context.Context, anchor bool) error {
	payload, ok, err := g.store.Load(ctx, domain.KeyDemoStart)
	if err != nil {
		return fmt.Errorf("demo window: %w", err)
	}
	if !ok {
		if !anchor {
			return nil
		}
		millis := g.nowFn().UnixMilli()
		if err := g.store.Save(ctx, domain.KeyDemoStart, []byte(strconv.FormatInt(millis, 10))); err != nil {
			return fmt.Errorf("demo window: %w", err)
		}
		return nil
	}
	start, err := parseMillis(payload)
	if err != nil {
		return fmt.Errorf("demo window: %w", err)
	}
	if g.nowFn().Sub(time.UnixMilli(start)) > demoLifetime {
		return ErrDemoExpired
	}
	return nil
}

func parseMillis(payload []byte) (int64, error) {
	text := strings.Trim(strings.TrimSpace(string(payload)), `"`)
	return strconv.ParseInt(text, 10, 64)
}

// Logout closes the session and drops any held-back command.
func (g *Gate) Logout() {
	g.mu.Lock()
	stop := g.stopWatch
	g.role = ""
	g.loggedIn = false
	g.pending = nil
	g.stopWatch = nil
	g.mu.Unlock()
	if stop != nil {
		stop()
	}
	g.logger.Info("session closed")
}

// Role returns the active session role, empty when logged out.
func (g *Gate) Role() Role {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.role
}

// LoggedIn reports whether a session is open.
func (g *Gate) LoggedIn() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loggedIn
}

// CanEdit reports whether the session may mutate records.
func (g *Gate) CanEdit() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.role == RoleAdmin || g.role == RoleDemo
}

// Require runs fn immediately when the session may edit; otherwise it holds
// the command back and returns ErrElevationRequired. A later Unlock with a
// valid secret runs the held command.
func (g *Gate) Require(ctx context.Context, name string, fn func(context.Context) error) error {
	if g.CanEdit() {
		return fn(ctx)
	}
	g.mu.Lock()
	g.pending = &PendingCommand{Name: name, Run: fn}
	g.mu.Unlock()
	return ErrElevationRequired
}

// Pending returns the name of the held-back command, if any.
func (g *Gate) Pending() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil {
		return "", false
	}
	return g.pending.Name, true
}

// CancelPending drops the held-back command without running it.
func (g *Gate) CancelPending() {
	g.mu.Lock()
	g.pending = nil
	g.mu.Unlock()
}

// Unlock confirms the held-back command with an admin or demo secret and
// runs it. A wrong secret keeps the command held.
func (g *Gate) Unlock(ctx context.Context, secret string) error {
	g.mu.Lock()
	pending := g.pending
	g.mu.Unlock()
	if pending == nil {
		return ErrNoPendingCommand
	}

	switch secret {
	case adminSecret:
	case demoSecret:
		if err := g.checkDemoWindow(ctx, false); err != nil {
			return err
		}
	default:
		return ErrBadSecret
	}

	g.mu.Lock()
	g.pending = nil
	g.mu.Unlock()
	g.logger.Info("elevated command confirmed", zap.String("command", pending.Name))
	return pending.Run(ctx)
}

// DemoRemaining reports how much of the trial window is left. Zero with a nil
// error means the window has never been anchored.
func (g *Gate) DemoRemaining(ctx context.Context) (time.Duration, error) {
	payload, ok, err := g.store.Load(ctx, domain.KeyDemoStart)
	if err != nil {
		return 0, fmt.Errorf("demo window: %w", err)
	}
	if !ok {
		return 0, nil
	}
	start, err := parseMillis(payload)
	if err != nil {
		return 0, fmt.Errorf("demo window: %w", err)
	}
	remaining := demoLifetime - g.nowFn().Sub(time.UnixMilli(start))
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// WatchDemoExpiry starts a background check that logs a demo session out the
// minute its window elapses. onExpire, if set, is invoked once after logout.
// The watcher stops on Logout or when ctx is done.
func (g *Gate) WatchDemoExpiry(ctx context.Context, onExpire func()) {
	g.mu.Lock()
	if g.stopWatch != nil {
		g.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	g.stopWatch = cancel
	g.mu.Unlock()

	go func() {
		ticker := time.NewTicker(g.checkEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if g.Role() != RoleDemo {
					continue
				}
				if err := g.checkDemoWindow(ctx, false); errors.Is(err, ErrDemoExpired) {
					g.logger.Info("demo session expired")
					g.Logout()
					if onExpire != nil {
						onExpire()
					}
					return
				}
			}
		}
	}()
}
