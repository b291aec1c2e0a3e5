package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autonomax/internal/domain/entity"
	domainerrors "autonomax/internal/domain/errors"
	"autonomax/internal/domain/repository"
	"autonomax/internal/usecase"
)

func newTestUserService(f *testFixture) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		TxManager:      f.txManager,
		UserRepo:       f.users,
		PasswordHasher: f.hasher,
		TokenService:   f.tokens,
		Logger:         f.logger,
	})
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes email and stores the hash", func(t *testing.T) {
		f := newTestFixture(t)
		srv := newTestUserService(f)
		newID := uuid.New()

		f.hasher.EXPECT().Hash("segredo123").Return("$2a$12$hash", nil)
		f.users.EXPECT().FindByEmail(mockAnyCtx, "ana@exemplo.com").Return(nil, repository.ErrUserNotFound)
		f.users.EXPECT().
			Create(mockAnyCtx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Email == "ana@exemplo.com" && u.Name == "Ana Souza" && u.PasswordHash == "$2a$12$hash"
			})).
			Run(func(args mock.Arguments) { args.Get(1).(*entity.User).ID = newID }).
			Return(nil)

		user, err := srv.Register(ctx, &usecase.RegisterInput{
			Name:     "  Ana Souza ",
			Email:    "  Ana@Exemplo.COM ",
			Password: "segredo123",
		})
		require.NoError(t, err)
		assert.Equal(t, newID, user.ID)
		assert.Equal(t, 1, f.txManager.Calls)
	})

	t.Run("taken email", func(t *testing.T) {
		f := newTestFixture(t)
		srv := newTestUserService(f)

		f.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil)
		f.users.EXPECT().FindByEmail(mockAnyCtx, "ana@exemplo.com").Return(&entity.User{ID: uuid.New()}, nil)

		user, err := srv.Register(ctx, &usecase.RegisterInput{Name: "Ana", Email: "ana@exemplo.com", Password: "segredo123"})
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
		f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unique violation on insert", func(t *testing.T) {
		f := newTestFixture(t)
		srv := newTestUserService(f)

		f.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil)
		f.users.EXPECT().FindByEmail(mockAnyCtx, mock.Anything).Return(nil, repository.ErrUserNotFound)
		f.users.EXPECT().Create(mockAnyCtx, mock.Anything).Return(repository.ErrEmailExists)

		_, err := srv.Register(ctx, &usecase.RegisterInput{Name: "Ana", Email: "ana@exemplo.com", Password: "segredo123"})
		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	})

	t.Run("name too short once trimmed", func(t *testing.T) {
		for name, want := range map[string]domainerrors.FieldError{
			"     ":  {Field: "nome", Rule: "required"},
			"  ab  ": {Field: "nome", Rule: "min", Param: "3"},
		} {
			f := newTestFixture(t)
			srv := newTestUserService(f)

			_, err := srv.Register(ctx, &usecase.RegisterInput{Name: name, Email: "ana@exemplo.com", Password: "segredo123"})

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr, "name %q", name)
			assert.Equal(t, []domainerrors.FieldError{want}, validationErr.Fields())
			assert.Equal(t, 0, f.txManager.Calls)
		}
	})

	t.Run("hash failure", func(t *testing.T) {
		f := newTestFixture(t)
		srv := newTestUserService(f)

		f.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("too long"))

		_, err := srv.Register(ctx, &usecase.RegisterInput{Name: "Ana", Email: "ana@exemplo.com", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
		assert.Equal(t, 0, f.txManager.Calls)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Ana", Email: "ana@exemplo.com", PasswordHash: "stored"}

	t.Run("success", func(t *testing.T) {
		f := newTestFixture(t)
		srv := newTestUserService(f)
		expires := time.Now().Add(8 * time.Hour)

		f.users.EXPECT().FindByEmail(mockAnyCtx, "ana@exemplo.com").Return(user, nil)
		f.hasher.EXPECT().Check("segredo123", "stored").Return(true)
		f.tokens.EXPECT().Issue(user).Return("signed.jwt.token", expires, nil)

		out, err := srv.Login(ctx, &usecase.LoginInput{Email: "ANA@exemplo.com", Password: "segredo123"})
		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", out.Token)
		assert.True(t, expires.Equal(out.ExpiresAt))
		assert.Equal(t, user, out.User)
	})

	t.Run("unknown email and wrong password fail the same way", func(t *testing.T) {
		f := newTestFixture(t)
		srv := newTestUserService(f)

		f.users.EXPECT().FindByEmail(mockAnyCtx, "ghost@exemplo.com").Return(nil, repository.ErrUserNotFound)
		f.hasher.EXPECT().Check("segredo123", dummyHash).Return(false)
		f.users.EXPECT().FindByEmail(mockAnyCtx, "ana@exemplo.com").Return(user, nil)
		f.hasher.EXPECT().Check("errada", "stored").Return(false)

		_, errUnknown := srv.Login(ctx, &usecase.LoginInput{Email: "ghost@exemplo.com", Password: "segredo123"})
		_, errWrong := srv.Login(ctx, &usecase.LoginInput{Email: "ana@exemplo.com", Password: "errada"})

		assert.ErrorIs(t, errUnknown, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, errUnknown, errWrong)
		f.tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("token failure", func(t *testing.T) {
		f := newTestFixture(t)
		srv := newTestUserService(f)

		f.users.EXPECT().FindByEmail(mockAnyCtx, mock.Anything).Return(user, nil)
		f.hasher.EXPECT().Check(mock.Anything, mock.Anything).Return(true)
		f.tokens.EXPECT().Issue(user).Return("", time.Time{}, errors.New("sign"))

		_, err := srv.Login(ctx, &usecase.LoginInput{Email: "ana@exemplo.com", Password: "segredo123"})
		assert.ErrorIs(t, err, domainerrors.ErrTokenIssueFailed)
	})
}

func TestUserService_Me_NotFound(t *testing.T) {
	f := newTestFixture(t)
	srv := newTestUserService(f)
	id := uuid.New()

	f.users.EXPECT().FindByID(mockAnyCtx, id).Return(nil, repository.ErrUserNotFound)

	_, err := srv.Me(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
