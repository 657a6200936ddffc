package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAuthService(repo *fakeUserRepo) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		UserRepo: repo,
		Hasher:   &fakeHasher{},
		TokenSvc: &fakeTokenSvc{},
		Logger:   testLogger(),
	})
}

func registerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Phone:    "0912345678",
		Address:  "1 Main St",
		Answer:   "blue",
	}
}

func TestRegister(t *testing.T) {
	t.Run("creates user with hashed credentials", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newTestAuthService(repo)

		output, err := svc.Register(context.Background(), registerInput())
		require.NoError(t, err)
		require.NotNil(t, output.User)

		assert.Equal(t, "alice@example.com", output.User.Email)
		assert.Equal(t, entity.RoleUser, output.User.Role)
		assert.NotEmpty(t, output.User.ID)

		stored := repo.byEmail["alice@example.com"]
		require.NotNil(t, stored)
		assert.Equal(t, "hashed:secret123", stored.PasswordHash)
		assert.Equal(t, "hashed:blue", stored.AnswerHash)
	})

	t.Run("duplicate email maps to already registered", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newTestAuthService(repo)

		_, err := svc.Register(context.Background(), registerInput())
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), registerInput())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrAlreadyRegistered))
	})

	t.Run("hash failure surfaces as internal error", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(AuthServiceParams{
			UserRepo: repo,
			Hasher:   &fakeHasher{hashErr: errors.New("bcrypt down")},
			TokenSvc: &fakeTokenSvc{},
			Logger:   testLogger(),
		})

		_, err := svc.Register(context.Background(), registerInput())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
		assert.Empty(t, repo.users)
	})
}

func TestLogin(t *testing.T) {
	seed := func(t *testing.T) (*fakeUserRepo, usecase.AuthUsecase) {
		t.Helper()
		repo := newFakeUserRepo()
		svc := newTestAuthService(repo)
		_, err := svc.Register(context.Background(), registerInput())
		require.NoError(t, err)

		return repo, svc
	}

	t.Run("valid credentials yield user and token", func(t *testing.T) {
		repo, svc := seed(t)

		output, err := svc.Login(context.Background(), &usecase.LoginInput{
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		stored := repo.byEmail["alice@example.com"]
		assert.Equal(t, stored.ID.Hex(), output.User.ID)
		assert.Equal(t, "token:"+stored.ID.Hex()+":user", output.Token)
	})

	t.Run("missing fields rejected before any lookup", func(t *testing.T) {
		_, svc := seed(t)

		for _, input := range []*usecase.LoginInput{
			{Email: "", Password: "secret123"},
			{Email: "alice@example.com", Password: ""},
			{},
		} {
			_, err := svc.Login(context.Background(), input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, svc := seed(t)

		_, err := svc.Login(context.Background(), &usecase.LoginInput{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrEmailNotRegistered))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, svc := seed(t)

		_, err := svc.Login(context.Background(), &usecase.LoginInput{
			Email:    "alice@example.com",
			Password: "not-the-password",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrWrongPassword))
	})
}

func TestForgotPassword(t *testing.T) {
	seed := func(t *testing.T) (*fakeUserRepo, usecase.AuthUsecase) {
		t.Helper()
		repo := newFakeUserRepo()
		svc := newTestAuthService(repo)
		_, err := svc.Register(context.Background(), registerInput())
		require.NoError(t, err)

		return repo, svc
	}

	t.Run("resets password when answer matches", func(t *testing.T) {
		repo, svc := seed(t)

		err := svc.ForgotPassword(context.Background(), &usecase.ForgotPasswordInput{
			Email:       "alice@example.com",
			Answer:      "blue",
			NewPassword: "evenbetter",
		})
		require.NoError(t, err)

		assert.Equal(t, "hashed:evenbetter", repo.byEmail["alice@example.com"].PasswordHash)

		// The old credential stops working and the new one logs in.
		svc2 := newTestAuthService(repo)
		_, err = svc2.Login(context.Background(), &usecase.LoginInput{Email: "alice@example.com", Password: "secret123"})
		assert.True(t, errors.Is(err, domainerrors.ErrWrongPassword))
		_, err = svc2.Login(context.Background(), &usecase.LoginInput{Email: "alice@example.com", Password: "evenbetter"})
		assert.NoError(t, err)
	})

	t.Run("each missing field short-circuits with its own error", func(t *testing.T) {
		_, svc := seed(t)

		cases := []struct {
			input *usecase.ForgotPasswordInput
			want  *domainerrors.BaseError
		}{
			{&usecase.ForgotPasswordInput{Answer: "blue", NewPassword: "x"}, domainerrors.ErrEmailRequired},
			{&usecase.ForgotPasswordInput{Email: "alice@example.com", NewPassword: "x"}, domainerrors.ErrAnswerRequired},
			{&usecase.ForgotPasswordInput{Email: "alice@example.com", Answer: "blue"}, domainerrors.ErrNewPasswordRequired},
		}
		for _, tc := range cases {
			err := svc.ForgotPassword(context.Background(), tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want))
		}
	})

	t.Run("wrong answer and unknown email share one error", func(t *testing.T) {
		repo, svc := seed(t)

		err := svc.ForgotPassword(context.Background(), &usecase.ForgotPasswordInput{
			Email:       "alice@example.com",
			Answer:      "red",
			NewPassword: "evenbetter",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrWrongEmailOrAnswer))

		err = svc.ForgotPassword(context.Background(), &usecase.ForgotPasswordInput{
			Email:       "nobody@example.com",
			Answer:      "blue",
			NewPassword: "evenbetter",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrWrongEmailOrAnswer))

		// Password unchanged after both rejections.
		assert.Equal(t, "hashed:secret123", repo.byEmail["alice@example.com"].PasswordHash)
	})
}

func TestUpdateProfile(t *testing.T) {
	seed := func(t *testing.T) (*fakeUserRepo, usecase.AuthUsecase, string) {
		t.Helper()
		repo := newFakeUserRepo()
		svc := newTestAuthService(repo)
		_, err := svc.Register(context.Background(), registerInput())
		require.NoError(t, err)
		userID := repo.byEmail["alice@example.com"].ID.Hex()

		return repo, svc, userID
	}

	t.Run("updates provided fields only", func(t *testing.T) {
		repo, svc, userID := seed(t)

		output, err := svc.UpdateProfile(context.Background(), &usecase.UpdateProfileInput{
			UserID: userID,
			Name:   "Alice B",
			Phone:  "0987654321",
		})
		require.NoError(t, err)

		assert.Equal(t, "Alice B", output.User.Name)
		assert.Equal(t, "0987654321", output.User.Phone)
		assert.Equal(t, "1 Main St", output.User.Address)
		assert.Equal(t, "hashed:secret123", repo.users[userID].PasswordHash)
	})

	t.Run("rehashes a provided password", func(t *testing.T) {
		repo, svc, userID := seed(t)

		_, err := svc.UpdateProfile(context.Background(), &usecase.UpdateProfileInput{
			UserID:   userID,
			Password: "brandnew",
		})
		require.NoError(t, err)
		assert.Equal(t, "hashed:brandnew", repo.users[userID].PasswordHash)
	})

	t.Run("short password rejected and hash untouched", func(t *testing.T) {
		repo, svc, userID := seed(t)

		_, err := svc.UpdateProfile(context.Background(), &usecase.UpdateProfileInput{
			UserID:   userID,
			Password: "tiny",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
		assert.Equal(t, "hashed:secret123", repo.users[userID].PasswordHash)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, svc, _ := seed(t)

		_, err := svc.UpdateProfile(context.Background(), &usecase.UpdateProfileInput{
			UserID: "64f000000000000000000000",
			Name:   "Ghost",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}
