package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/turkuspot/spotbot/internal/anonymizer"
	"github.com/turkuspot/spotbot/internal/bot"
	"github.com/turkuspot/spotbot/internal/config"
	"github.com/turkuspot/spotbot/internal/flow"
	"github.com/turkuspot/spotbot/internal/repository/sqlite"
	"github.com/turkuspot/spotbot/internal/service"
	"github.com/turkuspot/spotbot/internal/session"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spotbot",
		Short: "Telegram bot for reporting environmental issues and improvements in Turku",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot()
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start the bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot()
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all submissions to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport()
		},
	}

	rootCmd.AddCommand(runCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to run: %v", err)
	}
}

func runBot() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}

	db, err := sqlite.New(cfg.DatabasePath, cfg.PoolSize, cfg.AcquireTimeout)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	nicknames := sqlite.NewNicknameRepository(db)
	preferences := sqlite.NewPreferenceRepository(db)
	submissions := sqlite.NewSubmissionRepository(db)

	anon := anonymizer.New(nicknames)
	reports := service.NewReportService(anon, preferences, submissions)
	sessions := session.NewMemoryStore()

	tgBot, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	engine := flow.NewEngine(sessions, reports, tgBot, cfg.DefaultLanguage)
	tgBot.SetEngine(engine)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		tgBot.Stop()
	}()

	log.Println("Bot started")
	tgBot.Start()

	return nil
}

func runExport() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sqlite.New(cfg.DatabasePath, cfg.PoolSize, cfg.AcquireTimeout)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	submissions := sqlite.NewSubmissionRepository(db)
	exports := service.NewExportService(submissions)

	path, err := exports.Export(cfg.ExportDir)
	if err != nil {
		return fmt.Errorf("failed to export submissions: %w", err)
	}

	log.Printf("Exported submissions to %s", path)
	return nil
}
