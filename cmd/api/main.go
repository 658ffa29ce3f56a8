package main

import (
	"os"

	"github.com/yigit/academy/internal/pkg/logger"
	"github.com/yigit/academy/internal/server"
)

// @title Academy API
// @version 1.0
// @description Course, student, teacher, lesson and feedback administration with student enrollment.

// @host localhost:3001
// @BasePath /api
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Use the default logger setup by the logger package's init
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until shutdown
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
