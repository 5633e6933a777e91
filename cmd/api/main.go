package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/joho/godotenv"

	_ "github.com/saulo-duarte/chronos-aiquiz/docs"
	"github.com/saulo-duarte/chronos-aiquiz/internal/config"
	"github.com/saulo-duarte/chronos-aiquiz/internal/container"
	"github.com/saulo-duarte/chronos-aiquiz/internal/router"
)

// @title       Chronos AI Quiz API
// @version     1.0
// @BasePath    /
func main() {
	envErr := godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := container.New(ctx)
	log := config.WithContext(ctx)
	if envErr != nil {
		log.Debug("No .env file found, using process environment")
	}

	r := router.New(router.RouterConfig{
		AIQuizHandler:  c.AIQuizContainer.Handler,
		AllowedOrigins: c.Settings.AllowedOrigins,
	})

	if c.Settings.IsLambda() {
		log.Infof("Starting Lambda handler %s", c.Settings.LambdaFunction)
		lambda.Start(chiadapter.New(r).ProxyWithContext)
		return
	}

	srv := &http.Server{
		Addr:              ":" + c.Settings.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
