// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 6

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	TokenSvc service.TokenService
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		tokenSvc: params.TokenSvc,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user account. Payload validation has already
// happened at the delivery boundary; the unique email index decides
// duplicates, so concurrent registrations of the same email cannot race.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	// The security answer is a credential too, so it gets the same treatment
	// as the password.
	answerHash, err := srv.hasher.Hash(input.Answer)
	if err != nil {
		srv.log(ctx).Error("Failed to hash security answer during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		PasswordHash: passwordHash,
		AnswerHash:   answerHash,
		Role:         entity.RoleUser,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			srv.log(ctx).Warn("Registration with existing email", slog.String("email", input.Email))

			return nil, domainerrors.ErrAlreadyRegistered.WrapMessage("duplicate registration")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", newUser.ID.Hex()))

	return &usecase.RegisterOutput{User: newUser.Public()}, nil
}

// Login verifies credentials and issues a session token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingCredentials.WrapMessage("login rejected")
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login with unregistered email", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailNotRegistered.WrapMessage("login rejected")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login password mismatch", slog.String("email", input.Email))

		return nil, domainerrors.ErrWrongPassword.WrapMessage("login rejected")
	}

	token, err := srv.tokenSvc.Issue(user.ID.Hex(), user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("User logged in", slog.String("userID", user.ID.Hex()))

	return &usecase.LoginOutput{User: user.Public(), Token: token}, nil
}

// ForgotPassword performs a direct credential reset after verifying the
// security answer. Each missing field short-circuits with its own error.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	if input.Email == "" {
		return domainerrors.ErrEmailRequired.WrapMessage("password reset rejected")
	}
	if input.Answer == "" {
		return domainerrors.ErrAnswerRequired.WrapMessage("password reset rejected")
	}
	if input.NewPassword == "" {
		return domainerrors.ErrNewPasswordRequired.WrapMessage("password reset rejected")
	}

	srv.log(ctx).Info("Starting password reset", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrWrongEmailOrAnswer.WrapMessage("password reset rejected")
	}
	if err != nil {
		return errors.Wrap(err, "failed to load user for password reset")
	}

	if !srv.hasher.Check(input.Answer, user.AnswerHash) {
		srv.log(ctx).Warn("Password reset answer mismatch", slog.String("email", input.Email))

		return domainerrors.ErrWrongEmailOrAnswer.WrapMessage("password reset rejected")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user.PasswordHash = newHash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist password reset")
	}

	srv.log(ctx).Info("Password reset completed", slog.String("userID", user.ID.Hex()))

	return nil
}

// UpdateProfile applies partial updates to the authenticated user. A provided
// password shorter than the minimum leaves the stored hash untouched.
func (srv *authService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*usecase.UpdateProfileOutput, error) {
	srv.log(ctx).Debug("Starting profile update", slog.String("userID", input.UserID))

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("profile update rejected")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for profile update")
	}

	if input.Password != "" && len(input.Password) < minPasswordLength {
		srv.log(ctx).Warn("Profile update with weak password", slog.String("userID", input.UserID))

		return nil, domainerrors.ErrWeakPassword.WrapMessage("profile update rejected")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Address != "" {
		user.Address = input.Address
	}
	if input.Password != "" {
		newHash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		user.PasswordHash = newHash
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist profile update")
	}

	srv.log(ctx).Debug("Profile updated", slog.String("userID", user.ID.Hex()))

	return &usecase.UpdateProfileOutput{User: user.Public()}, nil
}
