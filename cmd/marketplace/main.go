// Command marketplace serves the REST API for customers, stores and admins.
package main

import (
	"marketplace/internal/app"
	"marketplace/internal/delivery/api"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/infra/auth"
	"marketplace/internal/infra/notification"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/infra/pubsub"
	"marketplace/internal/infra/qrcode"
	"marketplace/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		app.Infra(),
		repositories(),
		services(),
		usecases(),
		handlers(),
		app.AsDelivery(api.NewServer),
		app.Serve(),
	).Run()
}

func repositories() fx.Option {
	return fx.Provide(
		postgres.NewTransactionManager,
		postgres.NewUserRepository,
		postgres.NewRefreshTokenRepository,
		postgres.NewProductRepository,
		postgres.NewSearchHistoryRepository,
		postgres.NewOrderRepository,
		postgres.NewPromotionRepository,
		postgres.NewReviewRepository,
		postgres.NewFeedbackRepository,
		postgres.NewNotificationRepository,
		postgres.NewDeviceRepository,
	)
}

func services() fx.Option {
	return fx.Provide(
		auth.NewBcryptHasher,
		auth.NewJWTService,
		notification.NewNotificationService,
		pubsub.NewEventPublisher,
		qrcode.NewQRCodeService,
	)
}

func usecases() fx.Option {
	return fx.Provide(
		impl.NewAuthService,
		impl.NewAccountService,
		impl.NewProductService,
		impl.NewOrderService,
		impl.NewPromotionService,
		impl.NewReviewService,
		impl.NewFeedbackService,
		impl.NewDeviceService,
		impl.NewNotificationService,
	)
}

func handlers() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
		handler.NewAuthHandler,
		handler.NewAccountHandler,
		handler.NewProductHandler,
		handler.NewOrderHandler,
		handler.NewPromotionHandler,
		handler.NewReviewHandler,
		handler.NewFeedbackHandler,
		handler.NewDeviceHandler,
		handler.NewNotificationHandler,
	)
}
