package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/averyhall/tempo/internal/calendar"
	"github.com/averyhall/tempo/internal/cli"
	"github.com/averyhall/tempo/internal/db"
	"github.com/averyhall/tempo/internal/generator"
	"github.com/averyhall/tempo/internal/llm"
	"github.com/averyhall/tempo/internal/repository"
	"github.com/averyhall/tempo/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// API keys and calendar tokens can live in a local .env file.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.tempo/tempo.db
	dbPath := os.Getenv("TEMPO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tempo", "tempo.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	suggestionRepo := repository.NewSQLiteSuggestionRepo(database)
	historyRepo := repository.NewSQLiteHistoryRepo(database)
	feedbackRepo := repository.NewSQLiteFeedbackRepo(database)
	prefRepo := repository.NewSQLitePreferenceRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	workoutRepo := repository.NewSQLiteWorkoutRepo(database)
	episodeRepo := repository.NewSQLiteEpisodeRepo(database)

	// Calendar adapter; without a token it reports every week as empty.
	cal := calendar.NewClient(calendar.LoadConfig())

	// Wire generative backends in preference order. Backends without an API
	// key are simply absent from the chain; the deterministic fallback always
	// remains behind them.
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	var providers []generator.Provider
	if llmCfg.AnthropicAPIKey != "" {
		providers = append(providers, generator.NewLLMProvider(llm.NewAnthropicClient(llmCfg, observer)))
	}
	if llmCfg.OpenAIAPIKey != "" {
		providers = append(providers, generator.NewLLMProvider(llm.NewOpenAIClient(llmCfg, observer)))
	}

	scheduleSvc := service.NewScheduleService(
		suggestionRepo,
		feedbackRepo,
		prefRepo,
		goalRepo,
		workoutRepo,
		episodeRepo,
		cal,
		providers,
	)

	userID := os.Getenv("TEMPO_USER")
	if userID == "" {
		userID = "default"
	}

	app := &cli.App{
		Schedules: scheduleSvc,
		Rebalance: service.NewRebalanceService(suggestionRepo, historyRepo, feedbackRepo, prefRepo, cal, scheduleSvc),
		Feedback:  service.NewFeedbackService(feedbackRepo),
		UserID:    userID,
	}

	// Detect interactive terminal for output decisions in commands.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
