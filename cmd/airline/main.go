package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airledger/config"
	"github.com/Domenick1991/airledger/internal/bootstrap"
	"github.com/Domenick1991/airledger/internal/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	if err := logger.Init(cfg.Log, os.Stderr); err != nil {
		logrus.Fatalf("init logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		logrus.Fatalf("airline ledger: %v", err)
	}
}
