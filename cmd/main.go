package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/config"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/interaction"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/logging"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/repository/downstreams/winipayerapi"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/server"
)

func main() {
	configFile := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	logger := logging.NoCtx()

	conf, err := config.LoadConfiguration(*configFile, logger.Error)
	if err != nil {
		logger.Fatal("failed to load configuration from %s: %s", *configFile, err.Error())
	}

	logging.Setup(conf.Logging.Severity, conf.Logging.Style)
	logger = logging.NoCtx()

	transport, err := winipayerapi.New()
	if err != nil {
		logger.Fatal("failed to set up winipayer client: %s", err.Error())
	}

	i, err := interaction.NewServiceInteractor(transport, &conf.Winipayer)
	if err != nil {
		logger.Fatal("failed to set up interactor: %s", err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := server.CreateRouter(i, conf.Security)
	srv := server.NewServer(ctx, &conf.Server, handler)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
		logger.Info("Stopping services now")

		tCtx, tcancel := context.WithTimeout(context.Background(), time.Second*5)
		defer tcancel()

		if err := srv.Shutdown(tCtx); err != nil {
			logger.Error("Couldn't shutdown server gracefully: %s", err.Error())
		}
	}()

	logger.Info("serving winipayer adapter (%s) on %s", conf.Winipayer.Env, srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed: %s", err.Error())
	}
}
