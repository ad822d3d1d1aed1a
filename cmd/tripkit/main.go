// Package main is the entry point for the tripkit terminal app.
// Its sole responsibility is wiring dependencies together and starting the
// event loop. No business logic belongs here.
package main

import (
	"flag"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plannit/tripkit/internal/api"
	"github.com/plannit/tripkit/internal/config"
	"github.com/plannit/tripkit/internal/session"
	"github.com/plannit/tripkit/internal/storage"
	"github.com/plannit/tripkit/internal/tui"
	"github.com/plannit/tripkit/internal/validate"
	"github.com/plannit/tripkit/internal/wizard"
)

func main() {
	// An invite link opens the guest confirmation flow instead of resuming
	// the owner's saved session.
	inviteTrip := flag.String("trip", "", "trip id from an invite link")
	inviteParticipant := flag.String("participant", "", "participant id from an invite link")
	flag.Parse()

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// The terminal belongs to the UI, so structured JSON logs go to a file
	// under the data directory.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logFile, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		slog.Error("failed to open log file", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	store, err := storage.Open(cfg.DBPath())
	if err != nil {
		slog.Error("failed to open session store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// --- Engine -----------------------------------------------------------
	client := api.New(cfg.APIBaseURL, cfg.HTTPTimeout)
	wiz := wizard.New(validate.Email)
	coord := session.New(client, client, store, validate.Email, logger)

	// --- UI ---------------------------------------------------------------
	logger.Info("starting", "api_url", cfg.APIBaseURL, "data_dir", cfg.DataDir)
	model := tui.New(coord, wiz, logger, *inviteTrip, *inviteParticipant)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		slog.Error("ui error", "error", err)
		os.Exit(1)
	}
	logger.Info("stopped")
}
