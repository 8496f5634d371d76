package main

import (
	"context"
	"log/slog"

	"vendorhub/config"
	"vendorhub/internal/domain/service"
	"vendorhub/internal/infra/api"
	"vendorhub/internal/infra/auth"
	"vendorhub/internal/infra/geo"
	logs "vendorhub/internal/infra/log"
	"vendorhub/internal/infra/qrcode"
	"vendorhub/internal/infra/securestore"
	"vendorhub/internal/usecase"
	"vendorhub/internal/usecase/impl"

	"go.uber.org/fx"
)

type hydrateParams struct {
	fx.In
	fx.Lifecycle

	Logger  *slog.Logger
	Session usecase.SessionUsecase
	Wizard  usecase.WizardUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			hydrate,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		securestore.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenInspector,
			geo.New,
			newQRCodeService,
			newAPIClient,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", cfg.API.BaseURL)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// newAPIClient wires the request helper to the live session: the bearer
// token is read per request, and a 401 signs the session out.
func newAPIClient(
	cfg *config.Config,
	logger *slog.Logger,
	session usecase.SessionUsecase,
) service.APIClient {
	return api.New(cfg, logger,
		api.WithTokenSource(func() string {
			return session.User().Token
		}),
		api.WithUnauthorizedHook(func(ctx context.Context) {
			if err := session.Logout(ctx); err != nil {
				logger.Warn("Forced sign-out did not fully clear storage", slog.Any("error", err))
			}
		}),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewWizardService,
			impl.NewAuthService,
			impl.NewStoreService,
			impl.NewProductService,
			impl.NewOrderService,
		),
	)
}

// hydrate restores persisted state before anything reads the session.
func hydrate(params hydrateParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := params.Session.Hydrate(startCtx); err != nil {
				return err
			}
			if err := params.Wizard.Hydrate(startCtx); err != nil {
				return err
			}

			params.Logger.Info("State hydrated",
				slog.Bool("logged_in", params.Session.User().IsLoggedIn),
				slog.Int("wizard_progress", params.Wizard.Progress()))

			return nil
		},
	})
}
