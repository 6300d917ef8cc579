package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campusops/roomcheck/cmd/cli/commands"
	"github.com/campusops/roomcheck/internal/config"
	"github.com/campusops/roomcheck/pkg/clients/sheetsclient"
	"github.com/campusops/roomcheck/pkg/ingest"
	"github.com/campusops/roomcheck/pkg/utils/logging"
)

var (
	configPath string
	useSheets  bool
	verbose    bool
	app        = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roomcheck",
		Short: "Roomcheck - assign student workers to classroom checks",
		Long:  `A CLI tool that assigns student workers to check unoccupied classrooms during their shifts, avoiding class conflicts and prioritizing high-priority rooms zone by zone.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to roomcheck.yaml (default: search current and home directory)")
	rootCmd.PersistentFlags().BoolVar(&useSheets, "sheets", false, "Load inputs from the configured Google Sheets tabs instead of CSV exports")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")

	rootCmd.AddCommand(commands.AssignCmd(app))
	rootCmd.AddCommand(commands.AssignTwoWeeksCmd(app))
	rootCmd.AddCommand(commands.ListRoomsCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger, configuration and input source
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger("roomcheck", verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded",
		zap.String("output_dir", app.Cfg.OutputDir),
		zap.Int("room_check_minutes", app.Cfg.RoomCheckMinutes))

	if useSheets {
		app.Source, err = newSheetsSource()
		if err != nil {
			return err
		}
		app.Logger.Info("Using Google Sheets input source",
			zap.String("spreadsheet_id", app.Cfg.Sheets.SpreadsheetID))
	} else {
		app.Source = ingest.NewCSVSource(app.Cfg.ScheduleCSV, app.Cfg.ShiftsCSV, app.Cfg.RoomsCSV, app.Logger)
		app.Logger.Debug("Using CSV input source",
			zap.String("schedule", app.Cfg.ScheduleCSV),
			zap.String("shifts", app.Cfg.ShiftsCSV),
			zap.String("rooms", app.Cfg.RoomsCSV))
	}

	return nil
}

// newSheetsSource builds the Google Sheets input source, running the
// OAuth flow if needed.
func newSheetsSource() (*sheetsclient.Source, error) {
	if app.Cfg.Sheets == nil {
		return nil, fmt.Errorf("--sheets requires a sheets block in the config file")
	}

	oauthCfg, err := config.LoadOAuthClient()
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	client, err := sheetsclient.NewClient(app.Ctx, oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return sheetsclient.NewSource(client, app.Cfg.Sheets, app.Logger), nil
}
