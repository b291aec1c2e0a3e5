package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"autonomax/config"
	"autonomax/internal/delivery"
	"autonomax/internal/delivery/api"
	"autonomax/internal/delivery/api/middleware"
	"autonomax/internal/delivery/api/router/handler"
	"autonomax/internal/infra/auth"
	logs "autonomax/internal/infra/log"
	"autonomax/internal/infra/persistence/postgres"
	"autonomax/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		fx.Annotate(
			postgres.NewHealthCheck,
			fx.As(new(handler.HealthChecker)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewBusinessRepository,
			postgres.NewClientRepository,
			postgres.NewProductRepository,
			postgres.NewTransactionRepository,
			postgres.NewTxManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewBusinessService,
			impl.NewClientService,
			impl.NewProductService,
			impl.NewTransactionService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRateLimiters,
			middleware.NewMetrics,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewBusinessHandler,
			handler.NewClientHandler,
			handler.NewProductHandler,
			handler.NewTransactionHandler,
			handler.NewReportHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
