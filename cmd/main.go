package main

import (
	"log/slog"
	"os"

	"github.com/diploma-nedashkivska/pet-care-service/config"
	"github.com/diploma-nedashkivska/pet-care-service/routes"
	"github.com/diploma-nedashkivska/pet-care-service/utils"

	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelInfo,
	})))

	config.InitDB()
	if os.Getenv("JWT_SECRET") == "" {
		slog.Error("server misconfigured: JWT_SECRET not set")
		os.Exit(1)
	}
	utils.InitS3()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("listening", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
