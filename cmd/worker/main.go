// Command worker receives order events from Pub/Sub push, sends them to
// customer devices and runs the scheduled maintenance jobs.
package main

import (
	"marketplace/internal/app"
	"marketplace/internal/delivery/worker"
	"marketplace/internal/delivery/worker/handler"
	"marketplace/internal/infra/auth"
	"marketplace/internal/infra/notification"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/jobs"
	"marketplace/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		app.Infra(),
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewPromotionRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
		),
		// Auth is only needed for the session cleanup job.
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			notification.NewNotificationService,
			impl.NewAuthService,
			impl.NewPromotionService,
			impl.NewNotificationService,
		),
		fx.Provide(
			handler.NewPushHandler,
			jobs.NewManager,
		),
		app.AsDelivery(worker.NewServer),
		app.Serve(),
	).Run()
}
