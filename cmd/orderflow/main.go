package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/velstore/orderflow/internal/adapter/auth"
	"github.com/velstore/orderflow/internal/adapter/client/catalog"
	"github.com/velstore/orderflow/internal/adapter/client/payment"
	"github.com/velstore/orderflow/internal/adapter/config"
	"github.com/velstore/orderflow/internal/adapter/handler/http"
	"github.com/velstore/orderflow/internal/adapter/logger"
	"github.com/velstore/orderflow/internal/adapter/metrics"
	"github.com/velstore/orderflow/internal/adapter/notify"
	"github.com/velstore/orderflow/internal/adapter/storage"
	"github.com/velstore/orderflow/internal/adapter/storage/repository"
	"github.com/velstore/orderflow/internal/core/service"
	"github.com/velstore/orderflow/internal/jobs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("order repo creating error", zap.Error(err))
		return
	}

	sessionTokens, err := auth.NewSessionTokens()
	if err != nil {
		log.Error("session token service creating error", zap.Error(err))
		return
	}
	orderTokens, err := auth.NewOrderTokens()
	if err != nil {
		log.Error("order token service creating error", zap.Error(err))
		return
	}

	catalogClient, err := catalog.NewClient(conf.Catalog, log.Named("Catalog"))
	if err != nil {
		log.Error("catalog client creating error", zap.Error(err))
		return
	}
	paymentClient, err := payment.NewClient(conf.Payment, log.Named("Payment"))
	if err != nil {
		log.Error("payment client creating error", zap.Error(err))
		return
	}
	notifier, err := notify.NewKafkaNotifier(conf.Kafka, log.Named("Notify"))
	if err != nil {
		log.Error("notifier creating error", zap.Error(err))
		return
	}
	defer func() { _ = notifier.Close() }()

	svc, err := service.NewService(repo, orderTokens, catalogClient, paymentClient, notifier,
		service.Settings{
			AdminEmail: conf.Approval.AdminEmail,
			LinkBase:   conf.Approval.LinkBase,
		}, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	m := metrics.New("approvals")

	orderHandler, err := http.NewOrderHandler(svc, m, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	itemHandler, err := http.NewItemHandler(svc, log.Named("Item handler"))
	if err != nil {
		log.Error("item handler creating error", zap.Error(err))
		return
	}
	resubmitHandler, err := http.NewResubmitHandler(svc, log.Named("Resubmit handler"))
	if err != nil {
		log.Error("resubmit handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(svc, m, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, sessionTokens, m,
		orderHandler, itemHandler, resubmitHandler, paymentHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	reminder := jobs.NewReminderJob(svc, conf.Approval.ReminderSpec, log.Named("Reminder"))
	if err := reminder.Start(); err != nil {
		log.Error("reminder job start error", zap.Error(err))
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.Serve(conf.HTTP.HostString)
	})
	g.Go(func() error {
		<-gctx.Done()
		reminder.Stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", zap.Error(err))
	}
}
