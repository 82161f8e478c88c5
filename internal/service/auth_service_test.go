package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"lexcase/internal/core/apperr"
	"lexcase/internal/core/auth"
	"lexcase/internal/core/database/dbtest"
	"lexcase/internal/domain"
	"lexcase/internal/repo"
)

const testSecret = "test-secret"

type authFixture struct {
	svc   *AuthService
	users domain.UserRepository
	jwt   *auth.JWTer
}

func newAuthFixture(t *testing.T, wrap func(domain.UserRepository) domain.UserRepository) authFixture {
	t.Helper()
	var users domain.UserRepository = repo.NewUserRepo(dbtest.New(t))
	if wrap != nil {
		users = wrap(users)
	}
	j, err := auth.NewJWTer(testSecret, "")
	require.NoError(t, err)
	return authFixture{
		svc:   NewAuthService(users, auth.NewHasher(bcrypt.MinCost), j, zap.NewNop()),
		users: users,
		jwt:   j,
	}
}

func signupInput(email string) SignupInput {
	return SignupInput{Email: email, Password: "correct-horse", FirstName: "Ada", LastName: "Byron", Role: "LAWYER"}
}

func TestSignup_IssuesTokenForNewUser(t *testing.T) {
	f := newAuthFixture(t, nil)

	res, err := f.svc.Signup(context.Background(), signupInput("ada@firm.test"))
	require.NoError(t, err)
	assert.NotEmpty(t, res.User.ID)
	assert.Equal(t, "ada@firm.test", res.User.Email)
	assert.Equal(t, domain.RoleLawyer, res.User.Role)

	claims, err := f.jwt.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, domain.RoleLawyer, claims.Role)

	stored, err := f.users.FindByEmail(context.Background(), "ada@firm.test")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
	assert.Nil(t, stored.LastLogin)
}

func TestSignup_DuplicateEmailConflicts(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.Signup(ctx, signupInput("dup@firm.test"))
	require.NoError(t, err)

	_, err = f.svc.Signup(ctx, signupInput("dup@firm.test"))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Equal(t, "User with this email already exists", err.Error())
}

// racingUsers hides existing rows from the pre-check so the store's unique
// index is what rejects the second signup.
type racingUsers struct{ domain.UserRepository }

func (racingUsers) FindByEmail(context.Context, string) (*domain.User, error) { return nil, nil }

func TestSignup_StoreUniquenessIsAuthoritative(t *testing.T) {
	f := newAuthFixture(t, func(u domain.UserRepository) domain.UserRepository { return racingUsers{u} })
	ctx := context.Background()

	_, err := f.svc.Signup(ctx, signupInput("race@firm.test"))
	require.NoError(t, err)
	_, err = f.svc.Signup(ctx, signupInput("race@firm.test"))
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()
	signed, err := f.svc.Signup(ctx, signupInput("login@firm.test"))
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := f.svc.Login(ctx, LoginInput{Email: "login@firm.test", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, signed.User.ID, res.User.ID)

		stored, err := f.users.FindByID(ctx, signed.User.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.LastLogin)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, errPw := f.svc.Login(ctx, LoginInput{Email: "login@firm.test", Password: "wrong-horse"})
		_, errEmail := f.svc.Login(ctx, LoginInput{Email: "ghost@firm.test", Password: "correct-horse"})

		for _, err := range []error{errPw, errEmail} {
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
			assert.Equal(t, "Invalid credentials", err.Error())
		}
	})
}

type touchFails struct{ domain.UserRepository }

func (touchFails) TouchLastLogin(context.Context, string, time.Time) error {
	return errors.New("write refused")
}

func TestLogin_LastLoginFailureIsNotFatal(t *testing.T) {
	f := newAuthFixture(t, func(u domain.UserRepository) domain.UserRepository { return touchFails{u} })
	ctx := context.Background()
	_, err := f.svc.Signup(ctx, signupInput("touch@firm.test"))
	require.NoError(t, err)

	res, err := f.svc.Login(ctx, LoginInput{Email: "touch@firm.test", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	stored, err := f.users.FindByEmail(ctx, "touch@firm.test")
	require.NoError(t, err)
	assert.Nil(t, stored.LastLogin)
}

func TestLogin_AdvancesLastLogin(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()
	signed, err := f.svc.Signup(ctx, signupInput("twice@firm.test"))
	require.NoError(t, err)

	clock := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return clock }
	in := LoginInput{Email: "twice@firm.test", Password: "correct-horse"}

	_, err = f.svc.Login(ctx, in)
	require.NoError(t, err)
	first, err := f.users.FindByID(ctx, signed.User.ID)
	require.NoError(t, err)
	require.NotNil(t, first.LastLogin)
	assert.True(t, first.LastLogin.Equal(clock))

	clock = clock.Add(90 * time.Minute)
	_, err = f.svc.Login(ctx, in)
	require.NoError(t, err)
	second, err := f.users.FindByID(ctx, signed.User.ID)
	require.NoError(t, err)
	require.NotNil(t, second.LastLogin)
	assert.True(t, second.LastLogin.After(*first.LastLogin))
	assert.True(t, second.LastLogin.Equal(clock))
}

type brokenUsers struct{ domain.UserRepository }

func (brokenUsers) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, errors.New("connection reset")
}

func TestAuth_StoreFailureIsInternal(t *testing.T) {
	f := newAuthFixture(t, func(u domain.UserRepository) domain.UserRepository { return brokenUsers{u} })
	ctx := context.Background()

	_, err := f.svc.Signup(ctx, signupInput("x@firm.test"))
	assert.True(t, apperr.IsKind(err, apperr.KindInternal))
	assert.Equal(t, "Server error during registration", err.Error())

	_, err = f.svc.Login(ctx, LoginInput{Email: "x@firm.test", Password: "correct-horse"})
	assert.True(t, apperr.IsKind(err, apperr.KindInternal))
	assert.Equal(t, "Server error during login", err.Error())
}
