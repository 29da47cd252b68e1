package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mflstudio/concours/pkg/api"
	"github.com/mflstudio/concours/pkg/config"
	"github.com/mflstudio/concours/pkg/game"
	"github.com/mflstudio/concours/pkg/grid"
	"github.com/mflstudio/concours/pkg/log"
	"github.com/mflstudio/concours/pkg/network"
	"github.com/mflstudio/concours/pkg/questions"
	"github.com/mflstudio/concours/pkg/queue"
	"github.com/mflstudio/concours/pkg/repositories"
	"github.com/mflstudio/concours/pkg/state"
	"github.com/mflstudio/concours/pkg/version"
	"github.com/mflstudio/concours/pkg/workers"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "Path to a yaml or json config file")
	wsPort := flag.Int("ws-port", 0, "WebSocket port to listen on, overrides the config")
	apiPort := flag.Int("api-port", 0, "API port to listen on, overrides the config")
	logLevel := flag.String("log-level", "", "Log level, overrides the config")
	importQuestions := flag.Bool("import-questions", false, "Store the questions file in the database and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *wsPort != 0 {
		cfg.WSPort = *wsPort
	}
	if *apiPort != 0 {
		cfg.APIPort = *apiPort
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", parsedLogLevel)
	log.SetDefaultLogger(logger)
	defer log.Sync()
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting server version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repository, err := repositories.NewRepository(ctx, cfg.DatabaseURL, cfg.MigrationsDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(context.Background())

	if *importQuestions {
		if err := importQuestionsFile(ctx, repository, cfg.QuestionsFile); err != nil {
			log.Error("Failed to import questions: %v", err)
			os.Exit(1)
		}
		return
	}

	questionPool, err := loadQuestions(ctx, repository, cfg.QuestionsFile)
	if err != nil {
		panic(fmt.Sprintf("Failed to load questions: %v", err))
	}
	if questionPool.Size() == 0 {
		log.Warn("The question pool is empty, tiles cannot be revealed")
	}
	log.Info("Loaded %d questions across %d themes", questionPool.Size(), len(questionPool.Themes()))

	clientManager := network.NewClientManager()
	clientMessageQueue := queue.NewInMemoryQueue(10000)
	connectionEventQueue := queue.NewInMemoryQueue(1000)

	networkManager := network.NewNetworkManager(network.NewNetworkManagerOptions{
		ClientManager:      clientManager,
		ClientMessageQueue: clientMessageQueue,
		WSPort:             cfg.WSPort,
		AllowedOrigins:     cfg.AllowedOrigins,
	})

	connectionEventWorker := workers.NewConnectionEventWorker(workers.NewConnectionEventWorkerOptions{
		ClientEventChan:      clientManager.GetClientEventChan(),
		ConnectionEventQueue: connectionEventQueue,
	})

	serverMessageChannelSize := 1000
	serverMessageChan := make(chan workers.ServerMessage, serverMessageChannelSize)
	serverMessageWorker := workers.NewServerMessageWorker(workers.NewServerMessageWorkerOptions{
		Sender:            networkManager,
		ServerMessageChan: serverMessageChan,
	})

	stateManager := state.NewInMemoryStateManager()
	saveRoundChannelSize := 100
	saveRoundChan := make(chan workers.SaveRoundRequest, saveRoundChannelSize)
	saveGameStateWorker := workers.NewSaveGameStateWorker(workers.NewSaveGameStateWorkerOptions{
		Repository:    repository,
		SaveRoundChan: saveRoundChan,
		StateManager:  stateManager,
		Interval:      cfg.SaveInterval,
	})

	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		ClientMessageQueue:   clientMessageQueue,
		ConnectionEventQueue: connectionEventQueue,
		StateManager:         stateManager,
		ServerMessageChan:    serverMessageChan,
		SaveRoundChan:        saveRoundChan,
		Roster:               cfg.Roster,
		Questions:            questionPool,
		Grid:                 grid.OptionsFromConfig(cfg.Grid),
		MemorizeSeconds:      cfg.MemorizeSeconds,
		FeedbackDelay:        cfg.FeedbackDelay,
		GameLoopInterval:     cfg.GameLoopInterval,
	})

	apiServer := api.NewAPIServer(api.NewAPIServerOptions{
		Port:         cfg.APIPort,
		StateManager: stateManager,
		Repository:   repository,
		Roster:       cfg.Roster,
	})

	// The save worker outlives the game loop so the round archived on
	// shutdown still reaches the repository.
	saveCtx, cancelSave := context.WithCancel(context.Background())
	saveDone := make(chan struct{})
	go func() {
		defer close(saveDone)
		saveGameStateWorker.Start(saveCtx)
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return networkManager.Start(gctx)
	})
	g.Go(func() error {
		return apiServer.Start(gctx)
	})
	g.Go(func() error {
		connectionEventWorker.Start(gctx)
		return nil
	})
	g.Go(func() error {
		serverMessageWorker.Start(gctx)
		return nil
	})
	g.Go(func() error {
		defer cancelSave()
		log.Info("Starting game manager")
		return gameManager.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server stopped: %v", err)
	}
	<-saveDone
	log.Info("Server stopped")
}

// loadQuestions reads the pool from path, or from the repository when no
// file is configured.
func loadQuestions(ctx context.Context, repository repositories.Repository, path string) (*questions.Pool, error) {
	if path != "" {
		return questions.LoadFile(path)
	}

	qs, err := repository.LoadQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions from the repository: %v", err)
	}
	return questions.NewPool(qs)
}

func importQuestionsFile(ctx context.Context, repository repositories.Repository, path string) error {
	if path == "" {
		return fmt.Errorf("questions_file must be set to import questions")
	}

	qs, err := questions.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := questions.NewPool(qs); err != nil {
		return err
	}
	if err := repository.SaveQuestions(ctx, qs); err != nil {
		return fmt.Errorf("failed to save questions: %v", err)
	}

	log.Info("Imported %d questions from %s", len(qs), path)
	return nil
}
