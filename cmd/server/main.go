package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/skillbridge/skillbridge/internal/config"
	"github.com/skillbridge/skillbridge/internal/db"
	"github.com/skillbridge/skillbridge/internal/events"
	"github.com/skillbridge/skillbridge/internal/httpserver"
	"github.com/skillbridge/skillbridge/internal/logging"
	mw "github.com/skillbridge/skillbridge/internal/middleware"
	"github.com/skillbridge/skillbridge/internal/models"
	"github.com/skillbridge/skillbridge/internal/recommend"
	"github.com/skillbridge/skillbridge/internal/repo"
	"github.com/skillbridge/skillbridge/internal/search"
	"github.com/skillbridge/skillbridge/internal/service"
	"github.com/skillbridge/skillbridge/internal/tokens"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.JobPosting{},
		&models.Course{},
		&models.Certificate{},
	); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	tokenMgr := &tokens.Manager{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      cfg.TokenTTL,
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	var courseIndex *search.CourseIndex
	if cfg.ESURL != "" {
		esClient, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		courseIndex = search.NewCourseIndex(esClient, "")
	}

	r := &repo.GormRepo{DB: gdb}

	deps := &httpserver.Deps{
		Auth:         &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: r, Tokens: tokenMgr, Events: producer}},
		Users:        &httpserver.UserHTTP{Svc: &service.UserService{Repo: r}},
		Companies:    &httpserver.CompanyHTTP{Svc: &service.CompanyService{Repo: r}},
		Jobs:         &httpserver.JobPostingHTTP{Svc: &service.JobPostingService{Repo: r}},
		Courses:      &httpserver.CourseHTTP{Svc: &service.CourseService{Repo: r, Index: courseIndex}},
		Certificates: &httpserver.CertificateHTTP{Svc: &service.CertificateService{Repo: r, Events: producer}},
		Recommend:    &httpserver.RecommendHTTP{Client: recommend.NewClient(cfg.RecommenderURL, nil)},

		Tokens:        tokenMgr,
		SearchEnabled: courseIndex != nil,
	}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(mw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("server stopped")
}
