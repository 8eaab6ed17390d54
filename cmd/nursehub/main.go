package main

import (
	"context"
	"log/slog"
	"os"

	"nursehub/config"
	"nursehub/internal/delivery"
	"nursehub/internal/delivery/api"
	apimiddleware "nursehub/internal/delivery/api/middleware"
	"nursehub/internal/delivery/api/router/handler"
	"nursehub/internal/domain/service"
	"nursehub/internal/infra/auth"
	logs "nursehub/internal/infra/log"
	"nursehub/internal/infra/metrics"
	"nursehub/internal/infra/payment/stripe"
	"nursehub/internal/infra/persistence/postgres"
	"nursehub/internal/infra/pubsub"
	"nursehub/internal/infra/ratelimit"
	"nursehub/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			metrics.New,
			newMetricsRecorder,
			newHTTPObserver,
			newGatherer,
			newRegisterer,
		),
		pubsub.Module,
	)
}

func newMetricsRecorder(m *metrics.Metrics) service.MetricsRecorder {
	return m
}

func newHTTPObserver(m *metrics.Metrics) apimiddleware.HTTPObserver {
	return m
}

func newGatherer(m *metrics.Metrics) prometheus.Gatherer {
	return m.Registry()
}

func newRegisterer(m *metrics.Metrics) prometheus.Registerer {
	return m.Registry()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewEntitlementRepository,
			postgres.NewPurchaseRepository,
			postgres.NewProfileRepository,
			postgres.NewWebhookEventRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSessionVerifier,
			stripe.New,
			ratelimit.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewEntitlementService,
			impl.NewCheckoutService,
			impl.NewWebhookService,
			impl.NewClaimService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCheckoutHandler,
			handler.NewEntitlementHandler,
			handler.NewClaimHandler,
			handler.NewProfileHandler,
			handler.NewWebhookHandler,
			handler.NewSystemHandler,
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
