package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadp "greentracker-backend/internal/adapter/http"
	"greentracker-backend/internal/adapter/middleware"
	"greentracker-backend/internal/adapter/repository/mysql"
	"greentracker-backend/internal/config"
	"greentracker-backend/internal/infrastructure/cache"
	"greentracker-backend/internal/infrastructure/db"
	"greentracker-backend/internal/infrastructure/logging"
	"greentracker-backend/internal/infrastructure/mailer"
	"greentracker-backend/internal/infrastructure/metrics"
	"greentracker-backend/internal/infrastructure/scheduler"
	"greentracker-backend/internal/infrastructure/storage"
	"greentracker-backend/internal/usecase/activity"
	"greentracker-backend/internal/usecase/admin"
	"greentracker-backend/internal/usecase/auth"
	"greentracker-backend/internal/usecase/category"
	"greentracker-backend/internal/usecase/criterion"
	"greentracker-backend/internal/usecase/evidence"
	"greentracker-backend/internal/usecase/feedback"
	"greentracker-backend/internal/usecase/indicator"
	"greentracker-backend/internal/usecase/reminder"
	"greentracker-backend/internal/usecase/report"
	"greentracker-backend/internal/usecase/unit"
	"greentracker-backend/internal/usecase/uploadperiod"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("config")
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.WithError(err).Fatal("logging")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), cfg.DBLogLevel)
	if err != nil {
		log.WithError(err).Fatal("open mysql")
	}
	if cfg.DBAutoMigrate {
		if err := gdb.AutoMigrate(mysql.Models()...); err != nil {
			log.WithError(err).Fatal("automigrate")
		}
		log.Info("schema migrated")
	}

	m := metrics.New()
	tx := mysql.NewGormUoW(gdb)

	files, err := storage.NewLocal(cfg.UploadDir, cfg.UploadURLPrefix)
	if err != nil {
		log.WithError(err).Fatal("upload dir")
	}

	var mail mailer.Mailer = mailer.LogMailer{Log: log.WithField("component", "mailer")}
	if cfg.SMTP.Host != "" {
		relay, err := mailer.NewSMTP(mailer.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		if err != nil {
			log.WithError(err).Fatal("smtp")
		}
		mail = relay
	}

	periods := uploadperiod.NewUsecase(tx, cfg.UploadPeriodID)
	evidenceUC := evidence.NewUsecase(tx, periods, files, log.WithField("component", "evidence"))
	authUC := auth.NewUsecase(tx, cfg.JWTSecret, cfg.JWTExpiry)
	adminUC := admin.NewUsecase(tx)
	reminderUC := reminder.NewUsecase(tx, periods, mail, m, log.WithField("component", "reminder"))

	if err := adminUC.EnsureSuperadmin(ctx, admin.Seed{
		ID:       cfg.SuperadminID,
		Password: cfg.SuperadminPassword,
		Name:     cfg.SuperadminName,
		Email:    cfg.SuperadminEmail,
	}); err != nil {
		log.WithError(err).Fatal("superadmin")
	}

	sched := scheduler.New(log.WithField("component", "scheduler"), m)
	if err := sched.Add(reminder.JobWeekly, cfg.CronWeekly, reminderUC.RemindUnitsWithoutActivities); err != nil {
		log.WithError(err).Fatal("scheduler")
	}
	if err := sched.Add(reminder.JobDaily, cfg.CronDaily, reminderUC.AnnounceUploadPeriodStart); err != nil {
		log.WithError(err).Fatal("scheduler")
	}
	sched.Start()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Validator = httpadp.NewValidator()
	e.HTTPErrorHandler = httpadp.ErrorHandler(log)
	e.Use(
		echomw.Recover(),
		echomw.RequestID(),
		middleware.Metrics(m),
		middleware.RequestLog(log.WithField("component", "http")),
	)

	sqlDB, err := gdb.DB()
	if err != nil {
		log.WithError(err).Fatal("sql handle")
	}
	checks := []httpadp.Check{{Name: "mysql", Ping: sqlDB.PingContext}}

	var extra []echo.MiddlewareFunc
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.WithError(err).Fatal("redis")
		}
		defer rdb.Close()
		checks = append(checks, httpadp.Check{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }})
		extra = append(extra, middleware.Idempotency(rdb, cfg.IdempotencyTTL(), log.WithField("component", "idempotency")))
	} else {
		log.Warn("REDIS_ADDR empty, Idempotency-Key is ignored")
	}

	// routes
	h := httpadp.NewHandler(checks...)
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.Static(cfg.UploadURLPrefix, cfg.UploadDir)

	handlers := httpadp.Handlers{
		Auth:         httpadp.NewAuthHandler(authUC),
		Indicators:   httpadp.NewIndicatorHandler(indicator.NewUsecase(tx)),
		Categories:   httpadp.NewCategoryHandler(category.NewUsecase(tx)),
		Criteria:     httpadp.NewCriterionHandler(criterion.NewUsecase(tx)),
		Activities:   httpadp.NewActivityHandler(activity.NewUsecase(tx, periods, evidenceUC)),
		Evidence:     httpadp.NewEvidenceHandler(evidenceUC),
		Feedback:     httpadp.NewFeedbackHandler(feedback.NewUsecase(tx)),
		Units:        httpadp.NewUnitHandler(unit.NewUsecase(tx)),
		Admins:       httpadp.NewAdminHandler(adminUC),
		UploadPeriod: httpadp.NewUploadPeriodHandler(periods),
		Reports:      httpadp.NewReportHandler(report.NewUsecase(tx)),
	}
	if cfg.LoginRatePerMin > 0 {
		handlers.LoginLimit = middleware.LoginRateLimit(cfg.LoginRatePerMin, cfg.LoginBurst, log.WithField("component", "ratelimit"))
	}
	httpadp.Register(e.Group("/api"), handlers, authUC, extra...)

	addr := ":" + cfg.AppPort
	go func() {
		log.WithField("addr", addr).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("http shutdown")
	}
	sched.Stop(shutdownCtx)
	_ = sqlDB.Close()
}
