package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexcase/internal/core/cache"
	"lexcase/internal/core/database/dbtest"
	"lexcase/internal/domain"
	"lexcase/internal/repo"
)

func TestIdentities(t *testing.T) {
	users := repo.NewUserRepo(dbtest.New(t))
	u := &domain.User{Email: "who@firm.test", PasswordHash: "h", FirstName: "W", LastName: "H", Role: domain.RoleAssistant}
	require.NoError(t, users.Create(context.Background(), u))

	// redis is unreachable, so the cached loader must fall through to the store
	c := &cache.Cache{RDB: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})}
	t.Cleanup(func() { _ = c.Close() })

	loaders := map[string]IdentityLoader{
		"direct": NewIdentities(users),
		"cached": NewCachedIdentities(NewIdentities(users), c, time.Second),
	}
	for name, l := range loaders {
		t.Run(name, func(t *testing.T) {
			id, err := l.LoadIdentity(context.Background(), u.ID)
			require.NoError(t, err)
			require.NotNil(t, id)
			assert.Equal(t, domain.RoleAssistant, id.Role)

			gone, err := l.LoadIdentity(context.Background(), "missing")
			require.NoError(t, err)
			assert.Nil(t, gone)
		})
	}
}
