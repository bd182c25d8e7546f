// Package main is the entry point for the FreshBox cost analyzer. It prints
// the cost report by default, or runs the interactive dashboard.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/freshbox-analyzer/internal/app"
	"github.com/j-veylop/freshbox-analyzer/internal/config"
	"github.com/j-veylop/freshbox-analyzer/internal/logger"
	"github.com/j-veylop/freshbox-analyzer/internal/report"
	"github.com/j-veylop/freshbox-analyzer/internal/services"
	"github.com/j-veylop/freshbox-analyzer/internal/ui/tabs/dashboard"
	"github.com/j-veylop/freshbox-analyzer/internal/ui/tabs/history"
	"github.com/j-veylop/freshbox-analyzer/internal/ui/tabs/info"
	"github.com/j-veylop/freshbox-analyzer/internal/ui/tabs/trends"
	"github.com/j-veylop/freshbox-analyzer/internal/version"
)

// logFileName is the TUI log file, written inside the output directory.
const logFileName = "freshbox.log"

func main() {
	mode := "report"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	var err error
	switch mode {
	case "-v", "--version":
		fmt.Println(version.Info())
		return
	case "-h", "--help":
		printUsage()
		return
	case "report":
		err = runReport()
	case "tui":
		err = runTUI()
	default:
		err = fmt.Errorf("unknown command %q (see --help)", mode)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runReport performs one analysis and prints the report to stdout.
func runReport() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Configure(logger.ParseLevel(cfg.LogLevel), os.Stderr)

	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			logger.Warn("error closing services", "error", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := svcManager.Run(ctx)
	if err != nil {
		return err
	}

	return report.Write(os.Stdout, results)
}

// runTUI starts the interactive dashboard.
func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logs go to a file so they never draw over the alternate screen
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	logFile, err := os.OpenFile(filepath.Join(cfg.OutputDir, logFileName),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger.Configure(logger.ParseLevel(cfg.LogLevel), logFile)

	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			logger.Warn("error closing services", "error", closeErr)
		}
	}()

	if err := svcManager.StartWatcher(); err != nil {
		logger.Warn("artifact watcher unavailable", "dir", cfg.OutputDir, "error", err)
	}

	model := app.NewModel(svcManager)

	// Tabs share the root model's state
	state := model.GetState()
	model.SetTabs([]app.Tab{
		dashboard.New(state),           // Tab 1: Dashboard - metrics table and highlights
		trends.New(state),              // Tab 2: Trends - cost charts and volatility
		history.New(state, svcManager), // Tab 3: History - recorded runs
		info.New(state, svcManager),    // Tab 4: Info - configuration and output files
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`FreshBox Analyzer - monthly logistics cost analysis

Usage:
  freshbox [command]

Commands:
  report          Print the cost report (default)
  tui             Open the interactive dashboard

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts (tui):
  1-4             Switch between tabs (Dashboard, Trends, History, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Select month / scroll
  c               Cycle trend chart
  t               Cycle history range
  r               Re-run analysis
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  OUTPUT_DIR       Artifact directory (default: outputs)
  CHART_ENABLED    Write the PNG trend chart (default: true)
  WORKBOOK_EXPORT  Write the xlsx workbook (default: false)
  HISTORY_ENABLED  Record runs in SQLite (default: false)
  DATABASE_PATH    SQLite database path
  HISTORY_RETENTION_DAYS
                   Prune recorded runs older than this on startup (default: 0, keep all)
  NOTIFY_ON_SHIFT  Desktop notification when the target changes (default: false)
  LOG_LEVEL        debug, info, warn or error (default: warn)
  WATCH_DEBOUNCE   Output directory watcher debounce (default: 250ms)

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/freshbox/.env
  - ~/.freshbox/.env`)
}
