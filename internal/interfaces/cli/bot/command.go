package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	supportUC "github.com/oncabito/sentinela/internal/application/support/usecases"
	ticketUC "github.com/oncabito/sentinela/internal/application/ticket/usecases"
	"github.com/oncabito/sentinela/internal/domain/shared/events"
	"github.com/oncabito/sentinela/internal/domain/ticket"
	"github.com/oncabito/sentinela/internal/infrastructure/cache"
	"github.com/oncabito/sentinela/internal/infrastructure/config"
	"github.com/oncabito/sentinela/internal/infrastructure/database"
	"github.com/oncabito/sentinela/internal/infrastructure/eventlog"
	"github.com/oncabito/sentinela/internal/infrastructure/hubsoft"
	"github.com/oncabito/sentinela/internal/infrastructure/persistence/models"
	"github.com/oncabito/sentinela/internal/infrastructure/repository"
	"github.com/oncabito/sentinela/internal/infrastructure/scheduler"
	"github.com/oncabito/sentinela/internal/infrastructure/telegram"
	httpRouter "github.com/oncabito/sentinela/internal/interfaces/http"
	"github.com/oncabito/sentinela/internal/interfaces/http/handlers"
	"github.com/oncabito/sentinela/internal/shared/biztime"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
	"github.com/oncabito/sentinela/internal/shared/version"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Start the support bot",
		Long:  `Start the Telegram support bot, the background sweeps and the admin API.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply database schema on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.NewLogger()

	log.Infow("starting sentinela",
		"environment", env,
		"version", version.Version,
		"auto_migrate", autoMigrate,
	)

	if err := biztime.Init(cfg.Biztime.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if err := database.Get().AutoMigrate(&models.TicketModel{}, &models.ConversationModel{}); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
		log.Infow("schema applied")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	dispatcher := events.NewInMemoryEventDispatcher(100)
	if err := dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	defer func() {
		if err := dispatcher.Stop(); err != nil {
			log.Errorw("failed to stop event dispatcher", "error", err)
		}
	}()
	if err := eventlog.Register(dispatcher, eventlog.NewAuditTrailHandler(log.Named("audit"))); err != nil {
		return fmt.Errorf("failed to register audit trail: %w", err)
	}

	// Infrastructure
	ticketRepo := repository.NewTicketRepository(database.Get())
	convRepo := repository.NewConversationRepository(database.Get())
	guard := cache.NewRedisConversationGuard(redisClient, cfg.Support.ConversationTimeout())
	protocolGen := ticket.NewDefaultProtocolGenerator()

	botService := telegram.NewBotService(cfg.Telegram)
	notifier := telegram.NewNotifier(botService, cfg.Telegram, log.Named("notifier"))

	var gateway ticketUC.HubSoftGateway
	if cfg.HubSoft.Enabled {
		gateway = hubsoft.NewClient(&cfg.HubSoft, log.Named("hubsoft"))
	} else {
		gateway = disabledGateway{}
	}

	// Support flow use cases
	supportUseCases := telegram.SupportUseCases{
		StartConversation:     supportUC.NewStartConversationUseCase(convRepo, guard, dispatcher, cfg.Support.ConversationTimeout(), log),
		SelectCategory:        supportUC.NewSelectCategoryUseCase(convRepo, guard, log),
		SelectGame:            supportUC.NewSelectGameUseCase(convRepo, guard, log),
		SelectTiming:          supportUC.NewSelectTimingUseCase(convRepo, guard, log),
		SetDescription:        supportUC.NewSetDescriptionUseCase(convRepo, guard, log),
		AddAttachment:         supportUC.NewAddAttachmentUseCase(convRepo, guard, log),
		ProceedToConfirmation: supportUC.NewProceedToConfirmationUseCase(convRepo, guard, log),
		ConfirmTicket:         supportUC.NewConfirmTicketUseCase(convRepo, ticketRepo, protocolGen, guard, dispatcher, notifier, log),
		CancelConversation:    supportUC.NewCancelConversationUseCase(convRepo, guard, dispatcher, log),
		GetActiveConversation: supportUC.NewGetActiveConversationUseCase(convRepo, log),
		ListTickets:           ticketUC.NewListTicketsUseCase(ticketRepo, log),
	}

	// Admin API use cases
	ticketUseCases := handlers.TicketUseCases{
		Get:            ticketUC.NewGetTicketUseCase(ticketRepo, log),
		List:           ticketUC.NewListTicketsUseCase(ticketRepo, log),
		Assign:         ticketUC.NewAssignTicketUseCase(ticketRepo, dispatcher, notifier, log),
		ChangeStatus:   ticketUC.NewChangeStatusUseCase(ticketRepo, dispatcher, notifier, log),
		Close:          ticketUC.NewCloseTicketUseCase(ticketRepo, dispatcher, notifier, log),
		ElevateUrgency: ticketUC.NewElevateUrgencyUseCase(ticketRepo, dispatcher, log),
		Sync:           ticketUC.NewSyncTicketUseCase(ticketRepo, gateway, dispatcher, log),
	}

	// Background sweeps
	schedulerManager, err := scheduler.NewSchedulerManager(log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	expireJob := supportUC.NewExpireConversationsUseCase(convRepo, guard, dispatcher, cfg.Support.ConversationTimeoutMinutes, log)
	cleanupJob := supportUC.NewCleanupConversationsUseCase(convRepo, cfg.Support.CleanupAfterDays, log)
	if err := schedulerManager.RegisterConversationJobs(expireJob, cleanupJob); err != nil {
		return fmt.Errorf("failed to register conversation jobs: %w", err)
	}
	if cfg.HubSoft.Enabled {
		syncJob := ticketUC.NewProcessPendingSyncUseCase(ticketRepo, gateway, 20, log)
		if err := schedulerManager.RegisterHubSoftJobs(syncJob); err != nil {
			return fmt.Errorf("failed to register hubsoft jobs: %w", err)
		}
	}

	// Telegram polling
	botHandler := telegram.NewBotHandler(botService, supportUseCases, log.Named("bot"))
	pollingService := telegram.NewPollingService(botService, botHandler, log.Named("polling"))

	if err := botService.SetMyCommands(telegram.GetDefaultCommands()); err != nil {
		log.Warnw("failed to register bot commands", "error", err)
	}

	// Admin API
	ticketHandler := handlers.NewTicketHandler(ticketUseCases, log)
	router := httpRouter.NewRouter(ticketHandler, cfg, log.Named("http"))
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("admin API listening", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("admin API server failed", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := pollingService.Start(ctx); err != nil {
		return fmt.Errorf("failed to start polling: %w", err)
	}
	schedulerManager.Start()

	log.Infow("sentinela is running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("admin API shutdown failed", "error", err)
	}

	pollingService.Stop()
	if err := schedulerManager.Stop(); err != nil {
		log.Errorw("scheduler shutdown failed", "error", err)
	}

	log.Infow("sentinela stopped")
	return nil
}

// disabledGateway rejects sync attempts when the HubSoft integration is
// turned off. On-demand syncs surface the state to the caller.
type disabledGateway struct{}

func (disabledGateway) CreateServiceOrder(ctx context.Context, t *ticket.Ticket) (string, error) {
	return "", errors.NewInvalidStateError("hubsoft integration is disabled")
}
