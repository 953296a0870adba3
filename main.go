package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/finance-tracker/cmd/account"
	"fjacquet/finance-tracker/cmd/category"
	"fjacquet/finance-tracker/cmd/expense"
	"fjacquet/finance-tracker/cmd/goal"
	"fjacquet/finance-tracker/cmd/income"
	"fjacquet/finance-tracker/cmd/month"
	"fjacquet/finance-tracker/cmd/report"
	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/cmd/transfer"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure global log level directly - this affects ALL new loggers
	configureLogLevelDirectly()

	// 3. Add all subcommands
	root.Cmd.AddCommand(account.Cmd)
	root.Cmd.AddCommand(category.Cmd)
	root.Cmd.AddCommand(income.Cmd)
	root.Cmd.AddCommand(expense.Cmd)
	root.Cmd.AddCommand(transfer.Cmd)
	root.Cmd.AddCommand(month.Cmd)
	root.Cmd.AddCommand(goal.Cmd)
	root.Cmd.AddCommand(report.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	// Try to find .env file in current directory
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	// Load .env file silently without logging
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info" // Default log level
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		// Don't log here, just use default info level if we can't parse
		logLevel = logrus.InfoLevel
	}

	// Set the global logrus level before any logging happens
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
