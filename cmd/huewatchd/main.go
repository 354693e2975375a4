package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wheelibin/huelib/internal/config"
	"github.com/wheelibin/huelib/internal/hue"
	"github.com/wheelibin/huelib/internal/mqtt"
	"github.com/wheelibin/huelib/internal/repos"
	"github.com/wheelibin/huelib/internal/watcher"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {

	flags := pflag.NewFlagSet("huewatchd", pflag.ExitOnError)
	configFile := flags.String("config", "", "config file")
	logFile := flags.String("log-file", "logs/huewatchd.log", "log file, rotated daily")
	flags.String("log-level", "", "debug, info, warn or error")
	_ = flags.Parse(os.Args[1:])
	_ = viper.BindPFlag("logLevel", flags.Lookup("log-level"))

	if err := config.InitialiseConfig(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(&lumberjack.Logger{
		Filename: *logFile,
		MaxAge:   3,
	}, log.Options{
		Level:      cfg.Level(),
		TimeFormat: "2006/01/02 15:04:05",
	})
	logger.Info("huewatchd starting")

	if err := run(cfg, logger); err != nil {
		logger.Error("huewatchd stopped", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Info("huewatchd is closing")
}

func run(cfg config.Config, logger *log.Logger) error {
	if cfg.BridgeIP == "" || cfg.Username == "" {
		return fmt.Errorf("bridgeIp and username must be configured")
	}

	db, err := sql.Open("sqlite3", cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	lightRepo, err := repos.NewLightRepo(logger, db)
	if err != nil {
		return err
	}

	bridge := hue.NewBridge(hue.NewClient(cfg.BridgeIP, cfg.Username, logger), logger)
	events := hue.NewEventConsumer(cfg.BridgeIP, cfg.Username, logger)

	w := watcher.NewWatcher(logger, cfg.PollInterval, bridge, events, lightRepo, nil)
	if cfg.MQTT.Broker != "" {
		publisher, err := mqtt.Connect(cfg.MQTT, logger)
		if err != nil {
			return err
		}
		defer publisher.Close()
		w = watcher.NewWatcher(logger, cfg.PollInterval, bridge, events, lightRepo, publisher)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w.Run(ctx)
	return nil
}
