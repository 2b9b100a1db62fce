package main

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"siigosync/impl/auth"
	"siigosync/impl/core"
	"siigosync/internal/config"
	"siigosync/internal/http-server/api"
	"siigosync/internal/siigo"
	"siigosync/lib/logger"
	"siigosync/lib/sl"
)

func main() {
	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "", "path to log file directory, overrides config")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	if *logPath != "" {
		conf.Log.Path = *logPath
	}
	log := logger.SetupLogger(conf.Env, conf.Log.Path)
	log.Info("starting siigosync",
		slog.String("config", *configPath),
		slog.String("env", conf.Env),
		sl.Secret("siigo_token", conf.Siigo.AccessToken),
		slog.Int("users", len(conf.Users)))

	siigoClient := siigo.NewClient(siigo.Config{
		BaseURL:     conf.Siigo.BaseURL,
		AccessToken: conf.Siigo.AccessToken,
		PartnerID:   conf.Siigo.PartnerID,
		Timeout:     conf.Siigo.Timeout,
	}, log)

	handler := core.New(siigo.NewInvoices(siigoClient), log)
	handler.SetAuthService(auth.New(auth.NewUserList(conf.Users)))

	if err := api.New(conf, log, handler); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", sl.Err(err))
		os.Exit(1)
	}
}
