// Package root contains the root command for the application
package root

import (
	"fjacquet/finance-tracker/internal/config"
	"fjacquet/finance-tracker/internal/dateutils"
	"fjacquet/finance-tracker/internal/export"
	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the resolved application configuration
	Cfg *config.Config

	// Ledger holds the aggregate for the lifetime of the invocation
	Ledger *ledger.Store

	// Files is the persistence adapter the ledger is loaded from and
	// saved back to
	Files *storage.FileStore

	// dirty tracks whether any dispatch happened, so PostRun only writes
	// when something changed
	dirty bool

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finance-tracker",
		Short: "A CLI tool to track monthly income, expenses, transfers, and savings goals.",
		Long: `finance-tracker records income, expenses, and inter-account transfers by
calendar month. Account balances are never stored: they are derived by
replaying each month's transactions over its starting balances, and every
new month starts from the previous month's computed ending balances.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finance-tracker!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}

			storage.SetLogger(Log)
			export.SetLogger(Log)
			export.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])

			Files = storage.NewFileStore(Cfg.Data.File)
			Files.BackupEnabled = Cfg.Data.BackupEnabled

			state, err := Files.Load()
			if err != nil {
				// Persistence trouble is never fatal: run on a fresh
				// in-memory ledger for this session.
				Log.Warnf("Failed to load ledger, starting fresh: %v", err)
				year, month := dateutils.CurrentYearMonth()
				state = ledger.InitialState(year, month)
			}

			Ledger = ledger.NewStore(state)
			Ledger.Subscribe(func(models.AppState) {
				dirty = true
			})
		},
		// Save the ledger back to disk after any command that dispatched
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if !dirty {
				return
			}
			if err := Files.Save(Ledger.State()); err != nil {
				Log.Warnf("Failed to save ledger: %v", err)
			}
		},
	}
)
