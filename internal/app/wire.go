//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"brokerage/internal/entities"
	"brokerage/internal/gateway/kafka/orderevents"
	"brokerage/internal/handlers/rest/login_post"
	"brokerage/internal/handlers/rest/notification_read_post"
	"brokerage/internal/handlers/rest/notifications_get"
	"brokerage/internal/handlers/rest/notifications_read_all_post"
	"brokerage/internal/handlers/rest/notifications_unread_count_get"
	"brokerage/internal/handlers/rest/order_assign_post"
	"brokerage/internal/handlers/rest/order_get"
	"brokerage/internal/handlers/rest/order_post"
	"brokerage/internal/handlers/rest/order_quote_post"
	"brokerage/internal/handlers/rest/order_status_put"
	"brokerage/internal/handlers/rest/order_track_get"
	"brokerage/internal/handlers/rest/orders_get"
	"brokerage/internal/handlers/rest/signup_post"
	"brokerage/internal/handlers/rest/user_role_put"
	"brokerage/internal/handlers/rest/vehicle_post"
	"brokerage/internal/handlers/rest/vehicles_get"
	"brokerage/internal/handlers/tasks/notification_cleanup"
	"brokerage/internal/pkg/config"
	"brokerage/internal/pkg/factory/notification_message"
	"brokerage/internal/pkg/factory/route_eta"
	"brokerage/internal/pkg/kafka"

	notificationRepo "brokerage/internal/repository/notification"
	orderRepo "brokerage/internal/repository/order"
	statusRepo "brokerage/internal/repository/status"
	userRepo "brokerage/internal/repository/user"
	vehicleRepo "brokerage/internal/repository/vehicle"
	authService "brokerage/internal/service/auth"
	notificationService "brokerage/internal/service/notification"
	orderService "brokerage/internal/service/order"
	"brokerage/internal/service/pricing"
	vehicleService "brokerage/internal/service/vehicle"

	"brokerage/pkg/background"
	"brokerage/pkg/logger"
	"brokerage/pkg/querier"
	"brokerage/pkg/tx"
)

type (
	CleanupInterval       time.Duration
	NotificationRetention time.Duration
)

type Application struct {
	ServiceAuth         ServiceAuth
	ServiceOrder        ServiceOrder
	ServiceVehicle      ServiceVehicle
	ServiceNotification ServiceNotification
	BackgroundWorkers   *background.Worker
}

type ServiceAuth interface {
	signup_post.Service
	login_post.Service
	user_role_put.Service
	ResolveToken(ctx context.Context, token string) (entities.Actor, error)
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
	order_quote_post.Service
	order_assign_post.Service
	order_status_put.Service
	order_track_get.Service
}

type ServiceVehicle interface {
	vehicle_post.Service
	vehicles_get.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_post.Service
	notifications_read_all_post.Service
	notifications_unread_count_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideNotificationRetention,

		provideOrderRepository,
		provideUserRepository,
		provideVehicleRepository,
		provideStatusRepository,
		provideNotificationRepository,

		pricing.New,
		route_eta.New,
		notification_message.New,

		provideKafkaProducer,
		provideOrderEventsGateway,

		provideServiceAuth,
		provideServiceOrder,
		provideServiceVehicle,
		provideServiceNotification,

		provideNotificationCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Service)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceVehicle), new(*vehicleService.Service)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Service)),

		wire.Bind(new(authService.UserRepository), new(*userRepo.Repository)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(orderService.VehicleRepository), new(*vehicleRepo.Repository)),
		wire.Bind(new(orderService.StatusRepository), new(*statusRepo.Repository)),
		wire.Bind(new(orderService.Pricing), new(*pricing.Service)),
		wire.Bind(new(orderService.RouteTimeFactory), new(*route_eta.RouteTimeFactory)),
		wire.Bind(new(orderService.Events), new(*orderevents.Gateway)),

		wire.Bind(new(vehicleService.Repository), new(*vehicleRepo.Repository)),
		wire.Bind(new(vehicleService.UserRepository), new(*userRepo.Repository)),

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.MessageFactory), new(*notification_message.MessageFactory)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(vehicleService.TxManager), new(*tx.Manager)),

		wire.Bind(new(notification_cleanup.Service), new(*notificationService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-notifications)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideNotificationRepository,
		notification_message.New,
		provideServiceNotification,

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.MessageFactory), new(*notification_message.MessageFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideVehicleRepository(querier *querier.Querier) *vehicleRepo.Repository {
	return vehicleRepo.New(querier)
}

func provideStatusRepository(querier *querier.Querier) *statusRepo.Repository {
	return statusRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideServiceAuth(
	cfg *config.Config,
	users authService.UserRepository,
) *authService.Service {
	return authService.New(users, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideServiceOrder(
	repository orderService.Repository,
	users orderService.UserRepository,
	vehicles orderService.VehicleRepository,
	statuses orderService.StatusRepository,
	pricing orderService.Pricing,
	timeFactory orderService.RouteTimeFactory,
	events orderService.Events,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(
		repository,
		users,
		vehicles,
		statuses,
		pricing,
		timeFactory,
		events,
		txManager,
	)
}

func provideServiceVehicle(
	repository vehicleService.Repository,
	users vehicleService.UserRepository,
	txManager vehicleService.TxManager,
) *vehicleService.Service {
	return vehicleService.New(repository, users, txManager)
}

func provideServiceNotification(
	repository notificationService.Repository,
	messages notificationService.MessageFactory,
) *notificationService.Service {
	return notificationService.New(repository, messages)
}

func provideKafkaProducer(log logger.Logger, cfg *config.Config) (sarama.SyncProducer, error) {
	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return kafka.NewSyncProducer(log, &cfg.Kafka, brokers)
}

func provideOrderEventsGateway(
	log logger.Logger,
	producer sarama.SyncProducer,
	cfg *config.Config,
) *orderevents.Gateway {
	return orderevents.New(log, producer, cfg.Kafka.Topic)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.NotificationCleanupInterval)
}

func provideNotificationRetention(cfg *config.Config) NotificationRetention {
	return NotificationRetention(cfg.Tasks.NotificationRetention)
}

func provideNotificationCleanupTask(
	log logger.Logger,
	notificationService notification_cleanup.Service,
	interval CleanupInterval,
	retention NotificationRetention,
) *notification_cleanup.NotificationCleanup {
	return notification_cleanup.NewNotificationCleanup(
		log,
		notificationService,
		time.Duration(interval),
		time.Duration(retention),
	)
}

func provideTaskList(
	notificationCleanupTask *notification_cleanup.NotificationCleanup,
) []background.Task {
	return []background.Task{
		notificationCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
