// ABOUTME: Demo authentication against two fixed credential pairs.
// ABOUTME: Persists the signed-in identity as the current-user record.

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harper/neonotes/internal/kv"
	"github.com/harper/neonotes/internal/models"
)

type credential struct {
	email    string
	password string
	identity func() models.User
}

// Demonstration stand-in: plain comparison, no hashing, sessions or rate limits.
var demoCredentials = []credential{
	{email: "admin@neonotes.com", password: "admin", identity: models.AdminUser},
	{email: "alex@example.com", password: "student", identity: models.DemoUser},
}

// Authenticate persists and returns the identity matching the pair, or
// ErrInvalidCredentials without writing anything.
func (g *Gateway) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	for _, c := range demoCredentials {
		if c.email != email || c.password != password {
			continue
		}
		user := c.identity()
		data, err := json.Marshal(user)
		if err != nil {
			return models.User{}, fmt.Errorf("marshal user: %w", err)
		}
		if err := g.store.Set(ctx, UserKey, data); err != nil {
			return models.User{}, fmt.Errorf("save current user: %w", err)
		}
		g.logger.Info("signed in", "user", user.ID, "role", user.Role)
		return user, nil
	}
	return models.User{}, ErrInvalidCredentials
}

// SignOut removes the current-user record. Signing out twice is fine.
func (g *Gateway) SignOut(ctx context.Context) error {
	if err := g.store.Delete(ctx, UserKey); err != nil {
		return fmt.Errorf("delete current user: %w", err)
	}
	return nil
}

// GetCurrentUser returns nil when nobody is signed in or the record is unreadable.
func (g *Gateway) GetCurrentUser(ctx context.Context) (*models.User, error) {
	data, err := g.store.Get(ctx, UserKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read current user: %w", err)
	}
	var user *models.User
	if err := json.Unmarshal(data, &user); err != nil {
		g.logger.Warn("current user record unreadable, treating as signed out", "err", err)
		return nil, nil
	}
	return user, nil
}
