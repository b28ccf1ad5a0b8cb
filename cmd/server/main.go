package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"folio/internal/config"
	"folio/internal/db"
	"folio/internal/handler"
	folioh "folio/internal/http"
	"folio/internal/repository"
	"folio/internal/service"
	"folio/pkg/logger"
	"folio/pkg/snowflake"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := run(cfg); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := snowflake.Init(cfg.NodeID); err != nil {
		return err
	}

	secret := cfg.JWTSecret
	if secret == "" {
		// Sessions will not survive a restart without a configured secret.
		secret = randomSecret()
		logger.Warn("FOLIO_JWT_SECRET not set, using an ephemeral secret")
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	folderRepo := repository.NewFolderRepository(database)
	noteRepo := repository.NewNoteRepository(database)
	userRepo := repository.NewUserRepository(database)

	folderService := service.NewFolderService(folderRepo)
	noteService := service.NewNoteService(noteRepo, folderRepo)
	authService := service.NewAuthService(userRepo, secret)

	e := folioh.NewRouter(
		handler.NewFolderHandler(folderService),
		handler.NewNoteHandler(noteService),
		handler.NewAuthHandler(authService),
		authService,
	)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr, "db", cfg.DBPath)
		errCh <- e.Start(cfg.Addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(ctx); err != nil {
			return err
		}
	}

	return nil
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
