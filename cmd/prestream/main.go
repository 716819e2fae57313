// Command prestream shows an animated "stream starting soon" screen: a
// desk scene with a monitor whose text retypes itself as the countdown
// ticks toward the stream start time.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/prestream/prestream/internal/app"
	"github.com/prestream/prestream/internal/config"
	"github.com/prestream/prestream/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		config.Usage()
		os.Exit(2)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, true); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting prestream",
		zap.String("topic", cfg.Stream.Topic),
		zap.Time("start_time", cfg.Stream.StartTime),
	)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer a.Close()

	a.Run()
}
