package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/sqs_consumer/config"
	"github.com/Gunvolt24/sqs_consumer/internal/app"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// SIGINT/SIGTERM отменяют контекст: консьюмеры завершают текущее сообщение и выходят
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap: %v\n", err)
		os.Exit(1)
	}

	runErr := application.Run(ctx)
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "consumer stopped: %v\n", runErr)
		os.Exit(1)
	}
}
