//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	loadEventsGateway "loadboard/internal/gateway/kafka/load_events"
	"loadboard/internal/handlers/rest/bid_accept_post"
	"loadboard/internal/handlers/rest/bid_post"
	"loadboard/internal/handlers/rest/bid_withdraw_post"
	"loadboard/internal/handlers/rest/load_bids_get"
	"loadboard/internal/handlers/rest/load_cancel_post"
	"loadboard/internal/handlers/rest/load_complete_post"
	"loadboard/internal/handlers/rest/load_get"
	"loadboard/internal/handlers/rest/load_messages_get"
	"loadboard/internal/handlers/rest/load_post"
	"loadboard/internal/handlers/rest/load_put"
	"loadboard/internal/handlers/rest/load_transit_post"
	"loadboard/internal/handlers/rest/loads_get"
	"loadboard/internal/handlers/rest/message_post"
	"loadboard/internal/handlers/rest/saved_load_post"
	"loadboard/internal/handlers/rest/saved_loads_get"
	"loadboard/internal/handlers/rest/stats_get"
	"loadboard/internal/handlers/rest/user_get"
	"loadboard/internal/handlers/rest/users_get"
	"loadboard/internal/handlers/tasks/board_metrics"
	"loadboard/internal/pkg/config"

	bidRepo "loadboard/internal/repository/bid"
	loadRepo "loadboard/internal/repository/load"
	messageRepo "loadboard/internal/repository/message"
	savedLoadRepo "loadboard/internal/repository/savedload"
	statsRepo "loadboard/internal/repository/stats"
	userRepo "loadboard/internal/repository/user"
	assignmentService "loadboard/internal/service/assignment"
	bidService "loadboard/internal/service/bid"
	loadService "loadboard/internal/service/load"
	messageService "loadboard/internal/service/message"
	savedLoadService "loadboard/internal/service/savedload"
	statsService "loadboard/internal/service/stats"
	userService "loadboard/internal/service/user"

	"loadboard/pkg/background"
	"loadboard/pkg/logger"
	"loadboard/pkg/querier"
	"loadboard/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	BoardMetricsInterval time.Duration
)

type Application struct {
	ServiceLoad       ServiceLoad
	ServiceBid        ServiceBid
	ServiceAssignment ServiceAssignment
	ServiceMessage    ServiceMessage
	ServiceSavedLoad  ServiceSavedLoad
	ServiceUser       ServiceUser
	ServiceStats      ServiceStats
	BackgroundWorkers *background.Worker
}

type ServiceLoad interface {
	load_post.Service
	load_get.Service
	loads_get.Service
	load_put.Service
}

type ServiceBid interface {
	bid_post.Service
	bid_withdraw_post.Service
	load_bids_get.Service
}

type ServiceAssignment interface {
	bid_accept_post.Service
	load_cancel_post.Service
	load_transit_post.Service
	load_complete_post.Service
}

type ServiceMessage interface {
	message_post.Service
	load_messages_get.Service
}

type ServiceSavedLoad interface {
	saved_load_post.Service
	saved_loads_get.Service
}

type ServiceUser interface {
	user_get.Service
	users_get.Service
}

type ServiceStats interface {
	stats_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideBoardMetricsInterval,

		provideLoadRepository,
		provideBidRepository,
		provideMessageRepository,
		provideSavedLoadRepository,
		provideUserRepository,
		provideStatsRepository,

		provideLoadEventGateway,

		provideServiceLoad,
		provideServiceBid,
		provideServiceAssignment,
		provideServiceMessage,
		provideServiceSavedLoad,
		provideServiceUser,
		provideServiceStats,

		provideBoardMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLoad), new(*loadService.Load)),
		wire.Bind(new(ServiceBid), new(*bidService.Bid)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServiceMessage), new(*messageService.Message)),
		wire.Bind(new(ServiceSavedLoad), new(*savedLoadService.SavedLoad)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceStats), new(*statsService.Stats)),

		wire.Bind(new(loadService.Repository), new(*loadRepo.Repository)),
		wire.Bind(new(bidService.Repository), new(*bidRepo.Repository)),
		wire.Bind(new(bidService.LoadService), new(*loadService.Load)),
		wire.Bind(new(assignmentService.LoadRepository), new(*loadRepo.Repository)),
		wire.Bind(new(assignmentService.BidLedger), new(*bidRepo.Repository)),
		wire.Bind(new(assignmentService.EventPublisher), new(*loadEventsGateway.LoadEventGateway)),
		wire.Bind(new(messageService.Repository), new(*messageRepo.Repository)),
		wire.Bind(new(messageService.LoadService), new(*loadService.Load)),
		wire.Bind(new(messageService.UserService), new(*userService.User)),
		wire.Bind(new(messageService.BidLedger), new(*bidRepo.Repository)),
		wire.Bind(new(savedLoadService.Repository), new(*savedLoadRepo.Repository)),
		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(statsService.Repository), new(*statsRepo.Repository)),

		wire.Bind(new(loadService.TxManager), new(*tx.Manager)),
		wire.Bind(new(bidService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(messageService.TxManager), new(*tx.Manager)),
		wire.Bind(new(savedLoadService.TxManager), new(*tx.Manager)),

		wire.Bind(new(board_metrics.Service), new(*statsService.Stats)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideLoadRepository(querier *querier.Querier) *loadRepo.Repository {
	return loadRepo.New(querier)
}

func provideBidRepository(querier *querier.Querier) *bidRepo.Repository {
	return bidRepo.New(querier)
}

func provideMessageRepository(querier *querier.Querier) *messageRepo.Repository {
	return messageRepo.New(querier)
}

func provideSavedLoadRepository(querier *querier.Querier) *savedLoadRepo.Repository {
	return savedLoadRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideStatsRepository(querier *querier.Querier) *statsRepo.Repository {
	return statsRepo.New(querier)
}

func provideLoadEventGateway(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *loadEventsGateway.LoadEventGateway {
	return loadEventsGateway.New(log, producer, cfg.Kafka.Topic)
}

func provideServiceLoad(
	repository loadService.Repository,
	txManager loadService.TxManager,
) *loadService.Load {
	return loadService.New(repository, txManager)
}

func provideServiceBid(
	repository bidService.Repository,
	loads bidService.LoadService,
	txManager bidService.TxManager,
) *bidService.Bid {
	return bidService.New(repository, loads, txManager)
}

func provideServiceAssignment(
	loads assignmentService.LoadRepository,
	bids assignmentService.BidLedger,
	events assignmentService.EventPublisher,
	txManager assignmentService.TxManager,
) *assignmentService.Assignment {
	return assignmentService.New(loads, bids, events, txManager)
}

func provideServiceMessage(
	repository messageService.Repository,
	loads messageService.LoadService,
	users messageService.UserService,
	bids messageService.BidLedger,
	txManager messageService.TxManager,
) *messageService.Message {
	return messageService.New(repository, loads, users, bids, txManager)
}

func provideServiceSavedLoad(
	repository savedLoadService.Repository,
	txManager savedLoadService.TxManager,
) *savedLoadService.SavedLoad {
	return savedLoadService.New(repository, txManager)
}

func provideServiceUser(repository userService.Repository) *userService.User {
	return userService.New(repository)
}

func provideServiceStats(repository statsService.Repository) *statsService.Stats {
	return statsService.New(repository)
}

func provideBoardMetricsInterval(cfg *config.Config) BoardMetricsInterval {
	return BoardMetricsInterval(cfg.Tasks.BoardStatsUpdateInterval)
}

func provideBoardMetricsTask(
	log logger.Logger,
	statsService board_metrics.Service,
	interval BoardMetricsInterval,
) *board_metrics.BoardMetrics {
	return board_metrics.NewBoardMetrics(log, statsService, time.Duration(interval))
}

func provideTaskList(
	boardMetricsTask *board_metrics.BoardMetrics,
) []background.Task {
	return []background.Task{
		boardMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
