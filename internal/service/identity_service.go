package service

import (
	"context"
	"time"

	"lexcase/internal/core/cache"
	"lexcase/internal/domain"
)

// IdentityLoader re-fetches the caller named by a verified token. A nil
// identity means the user no longer exists.
type IdentityLoader interface {
	LoadIdentity(ctx context.Context, id string) (*domain.Identity, error)
}

type Identities struct {
	users domain.UserRepository
}

func NewIdentities(users domain.UserRepository) *Identities { return &Identities{users: users} }

func (s *Identities) LoadIdentity(ctx context.Context, id string) (*domain.Identity, error) {
	return s.users.FindIdentity(ctx, id)
}

// CachedIdentities keeps identities in redis for a short TTL.
type CachedIdentities struct {
	next  IdentityLoader
	cache *cache.Cache
	ttl   time.Duration
}

func NewCachedIdentities(next IdentityLoader, c *cache.Cache, ttl time.Duration) *CachedIdentities {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CachedIdentities{next: next, cache: c, ttl: ttl}
}

func (s *CachedIdentities) LoadIdentity(ctx context.Context, id string) (*domain.Identity, error) {
	return cache.GetOrLoadJSON(s.cache, ctx, "identity:"+id, s.ttl, func(ctx context.Context) (*domain.Identity, error) {
		return s.next.LoadIdentity(ctx, id)
	})
}
