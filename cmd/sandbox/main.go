package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/config"
	"github.com/fhirfly/namaste-sdk/internal/app/delivery/http/routers"
	"github.com/fhirfly/namaste-sdk/internal/app/drivers/logger"
	"github.com/fhirfly/namaste-sdk/internal/app/services/sandbox"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		panic(err)
	}
	accessLog := logger.NewLogrusLogger(internalConfig)

	bootstrap := &config.Bootstrap{
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	handler, err := routers.NewHandler(internalConfig, log, accessLog, sandbox.NewStore())
	if err != nil {
		log.Fatal("Failed to build sandbox routes", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.Sandbox.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Sandbox listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	accessLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.Sandbox.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	accessLog.Println("Server exiting")
}
