package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/service"
	amqpinfra "github.com/itsmzaid/OLS-Backend/pkg/infrastructure/amqp"
	"github.com/itsmzaid/OLS-Backend/pkg/infrastructure/firebase"
	firestorerepo "github.com/itsmzaid/OLS-Backend/pkg/infrastructure/firestore"
	"github.com/itsmzaid/OLS-Backend/pkg/transport"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	app := &cli.App{
		Name:   "laundryservice",
		Usage:  "laundry ordering backend",
		Action: runService,
	}
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("service terminated")
	}
}

func runService(cliCtx *cli.Context) error {
	cfg, err := parseConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fbApp, err := firebase.NewApp(ctx, firebase.Config{
		ProjectID:       cfg.FirebaseProjectID,
		CredentialsFile: cfg.FirebaseCredentialsFile,
		WebAPIKey:       cfg.FirebaseWebAPIKey,
	})
	if err != nil {
		return err
	}

	fsClient, err := firebase.NewFirestoreClient(ctx, fbApp)
	if err != nil {
		return err
	}
	defer fsClient.Close()

	provider, err := firebase.NewIdentityProvider(ctx, fbApp, cfg.FirebaseWebAPIKey)
	if err != nil {
		return err
	}

	dispatcher, closeDispatcher, err := newDispatcher(cfg)
	if err != nil {
		return err
	}
	defer closeDispatcher()

	serviceRepo := firestorerepo.NewServiceRepository(fsClient)
	itemRepo := firestorerepo.NewItemRepository(fsClient)
	orderRepo := firestorerepo.NewOrderRepository(fsClient)
	userRepo := firestorerepo.NewUserRepository(fsClient)

	handler := transport.NewHandler(
		service.NewCatalogService(serviceRepo),
		service.NewItemService(itemRepo, serviceRepo),
		service.NewOrderService(orderRepo, userRepo, dispatcher),
		service.NewUserService(provider, userRepo, dispatcher),
		provider,
	)

	srv := &http.Server{
		Addr:    cfg.ServeRESTAddress,
		Handler: transport.Router(handler),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("address", cfg.ServeRESTAddress).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newDispatcher(cfg *config) (service.EventDispatcher, func(), error) {
	if cfg.AMQPAddress == "" {
		log.Warn("AMQP address not configured, events will only be logged")
		return logDispatcher{}, func() {}, nil
	}

	dispatcher, err := amqpinfra.NewDispatcher(cfg.AMQPAddress, cfg.AMQPExchange)
	if err != nil {
		return nil, nil, err
	}
	return dispatcher, func() {
		if err := dispatcher.Close(); err != nil {
			log.WithError(err).Error("failed to close amqp dispatcher")
		}
	}, nil
}

type logDispatcher struct{}

func (logDispatcher) Dispatch(event service.Event) error {
	log.WithField("event", event.Type()).Info("domain event")
	return nil
}
