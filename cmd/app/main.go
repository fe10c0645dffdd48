package main

import (
	"context"
	"flag"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"scheduler-node-editor/internal/config"
	"scheduler-node-editor/internal/gui"
)

const appID = "com.schedulernode.editor"

func main() {
	debugMode := flag.Bool("debug", false, "Enable debug mode with verbose logging")
	flag.Parse()

	logger := initLogger(*debugMode)

	settings := config.Load(logger)
	if !*debugMode {
		logger.SetLevel(settings.LogLevel())
	}

	logger.WithFields(logrus.Fields{
		"debug_mode": *debugMode,
		"settings":   settings.Path(),
	}).Info("Starting Scheduler Node Editor")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	myApp := app.NewWithID(appID)
	gui.NewApplication(myApp, settings, logger).Run(ctx)

	logger.Info("Application shutting down gracefully")
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
