package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "autonomax/internal/delivery/context"
	"autonomax/internal/domain/entity"
	domainerrors "autonomax/internal/domain/errors"
	"autonomax/internal/domain/repository"
	"autonomax/internal/domain/service"
	"autonomax/internal/errors"
	"autonomax/internal/usecase"
)

// minUserNameLength matches the registration form.
const minUserNameLength = 3

// dummyHash is compared against when the email is unknown so that a failed
// login costs the same whether or not the account exists.
const dummyHash = "$2a$12$C6UzMDM.H6dfI/f/IKcEeO5WzL0cDClrKh3yXG2iZp0Q1mBqz8gFu"

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager      repository.TxManager
	UserRepo       repository.UserRepository
	PasswordHasher service.PasswordHasher
	TokenService   service.TokenService
	Logger         *slog.Logger
}

type userService struct {
	txManager      repository.TxManager
	userRepo       repository.UserRepository
	passwordHasher service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		passwordHasher: params.PasswordHasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user account. The email is stored trimmed and lower-cased.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	name, err := requiredName(input.Name, minUserNameLength)
	if err != nil {
		return nil, err
	}

	hash, err := srv.passwordHasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		users := factory.NewUserRepository()

		existing, findErr := users.FindByEmail(ctx, email)
		if findErr != nil && !errors.Is(findErr, repository.ErrUserNotFound) {
			return dbError(findErr, "failed to look up email")
		}
		if existing != nil {
			return domainerrors.ErrEmailTaken
		}

		if createErr := users.Create(ctx, user); createErr != nil {
			if errors.Is(createErr, repository.ErrEmailExists) {
				return domainerrors.ErrEmailTaken
			}

			return dbError(createErr, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	return user, nil
}

// Login verifies the credentials and issues an access token. Unknown email
// and wrong password fail identically.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, dbError(err, "failed to look up user")
		}
		srv.passwordHasher.Check(input.Password, dummyHash)
		srv.log(ctx).Info("Login rejected", slog.String("reason", "unknown_email"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.passwordHasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected",
			slog.String("reason", "bad_password"),
			slog.String("user_id", user.ID.String()),
		)

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := srv.tokenService.Issue(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed
	}

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Me returns the authenticated user's profile.
func (srv *userService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, "failed to load user")
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
