package main

import (
	"flag"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"

	apiHttp "auxite/internal/api/http"
	"auxite/internal/controllers"
	mongoRepo "auxite/internal/repository/mongo"
	"auxite/internal/repository/postgres"
	redisRepo "auxite/internal/repository/redis"
	"auxite/internal/usecasees"
)

func main() {
	var app App
	var confFileName string

	app.Name = "auxite-trading"

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.Parse()

	if err := app.loadConfig(confFileName); err != nil {
		panic(err)
	}

	app.initLogger()

	if err := app.initTgBot(); err != nil {
		panic(err)
	}

	if err := app.initRedis(); err != nil {
		panic(err)
	}

	if err := app.InitDB(app.Config.DB); err != nil {
		panic(err)
	}

	if err := app.initMongo(); err != nil {
		panic(err)
	}

	if err := app.initPromTail(); err != nil {
		panic(err)
	}

	app.initHTTPClient()
	app.InitMetrics()

	chatId, err := strconv.ParseInt(app.Config.TelegramChatID, 10, 64)
	if err != nil {
		panic(err)
	}

	orderRepo := redisRepo.NewOrderRepository(app.Redis)
	balanceRepo := redisRepo.NewBalanceRepository(app.Redis)
	lockRepo := redisRepo.NewLockRepository(app.Redis)
	txRepo := postgres.NewTransactionRepository(app.DB)
	settingsRepo := mongoRepo.NewSettingsRepository(app.Mongo)

	if err := settingsRepo.SetDefault(); err != nil {
		panic(err)
	}

	clientController := controllers.NewClientController(
		app.HTTPClient,
		app.Config.LedgerApiKey,
		app.Logger,
	)
	cryptoController := controllers.NewCryptoController(
		app.Config.LedgerSecretKey,
	)
	chainController := controllers.NewChainController(
		clientController,
		cryptoController,
		app.Config.LedgerUrl,
		app.Logger,
	)
	tgmController := controllers.NewTgmController(
		app.TGM,
		chatId,
	)

	notifier := usecasees.NewNotifier(tgmController, app.Logger)
	notifier.Start()
	defer notifier.Stop()

	orderUseCase := usecasees.NewOrderUseCase(
		chainController,
		orderRepo,
		balanceRepo,
		lockRepo,
		txRepo,
		settingsRepo,
		notifier,
		app.Metrics.Order,
		app.PromTail,
		app.Logger,
	)

	priceUseCase := usecasees.NewPriceUseCase(
		clientController,
		app.Config.PriceUrl,
		app.Logger,
	)

	sweepUseCase := usecasees.NewSweepUseCase(
		orderUseCase,
		orderRepo,
		settingsRepo,
		priceUseCase,
		cron.New(),
		notifier,
		app.PromTail,
		app.Logger,
	)

	if err := sweepUseCase.Schedule(); err != nil {
		panic(err)
	}

	f := fiber.New()

	apiHttp.NewMiddleware(f).UseMetrics()
	apiHttp.RegisterHTTPEndpoints(f, orderUseCase, sweepUseCase, app.Logger)

	if err := f.Listen(app.Config.HTTPAddr); err != nil {
		app.Logger.Error(err)
	}
}
