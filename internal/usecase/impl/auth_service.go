package impl

import (
	"context"
	"log/slog"
	"net/http"

	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/service"
	"vendorhub/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// loginResponse is the login envelope: the identity plus the bearer token
// in one user object.
type loginResponse struct {
	Message any `json:"message"`
	User    struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Token    string `json:"token"`
	} `json:"user"`
}

// authService implements the AuthUsecase interface.
type authService struct {
	api      service.APIClient
	session  usecase.SessionUsecase
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	api service.APIClient,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		api:      api,
		session:  session,
		validate: validator.New(),
		logger:   logger,
	}
}

// Login signs in and stores the returned identity in the session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*entity.User, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(validationDetails(err))
	}

	var response loginResponse
	if err := srv.api.Do(ctx, http.MethodPost, "/auth/login", input, &response); err != nil {
		return nil, errors.Wrap(err, "login")
	}

	user := entity.User{
		ID:       response.User.ID,
		Username: response.User.Username,
		Email:    response.User.Email,
	}.WithToken(response.User.Token)

	if err := srv.session.SetUser(ctx, user); err != nil {
		// The session is live in memory either way.
		srv.logger.Warn("Signed-in user not persisted", slog.Any("error", err))
	}

	srv.logger.Info("Signed in", slog.String("email", user.Email))

	return &user, nil
}

// Register creates an account. The user still signs in afterwards.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validationDetails(err))
	}

	if err := srv.api.Do(ctx, http.MethodPost, "/auth/registeration", input, nil); err != nil {
		return errors.Wrap(err, "register")
	}

	return nil
}

// ChangePassword rotates the signed-in account's password.
func (srv *authService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	user := srv.session.User()
	if !user.IsLoggedIn {
		return domainerrors.ErrNotLoggedIn
	}

	if err := srv.validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validationDetails(err))
	}

	if err := srv.api.Do(ctx, http.MethodPut, "/auth/change_password/"+user.Email, input, nil); err != nil {
		return errors.Wrap(err, "change password")
	}

	return nil
}

// ChangeNumber changes the signed-in account's phone number.
func (srv *authService) ChangeNumber(ctx context.Context, input usecase.ChangeNumberInput) error {
	user := srv.session.User()
	if !user.IsLoggedIn {
		return domainerrors.ErrNotLoggedIn
	}

	if err := srv.validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validationDetails(err))
	}

	if err := srv.api.Do(ctx, http.MethodPut, "/auth/change_number/"+user.Email, input, nil); err != nil {
		return errors.Wrap(err, "change number")
	}

	return nil
}
