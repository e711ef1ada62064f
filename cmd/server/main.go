package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jasswanth/portfolio-backend/internal/config"
	"github.com/jasswanth/portfolio-backend/internal/handler"
	"github.com/jasswanth/portfolio-backend/internal/logging"
	"github.com/jasswanth/portfolio-backend/internal/mail"
	"github.com/jasswanth/portfolio-backend/internal/repository"
	"github.com/jasswanth/portfolio-backend/internal/service"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	mailer, err := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.EmailHost,
		Port:     cfg.EmailPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPassword,
	})
	if err != nil {
		logging.Fatal("failed to build mail transport", "error", err)
	}

	// A broken mail account should not keep the whole site's backend down:
	// submissions still persist, so verification failure only warns.
	verifyCtx, cancelVerify := context.WithTimeout(ctx, 10*time.Second)
	if err := mailer.Verify(verifyCtx); err != nil {
		slog.Warn("smtp verification failed, emails may not deliver", "error", err)
	}
	cancelVerify()

	contactRepo := repository.NewPgContactRepository(pool)
	dispatcher := mail.NewDispatcher(mailer, mail.DispatcherConfig{
		FromAddress: cfg.EmailUser,
		NotifyTo:    cfg.NotificationEmail,
		OwnerName:   cfg.OwnerName,
	})
	// Long-running process: email dispatch is detached from the response path.
	contactService := service.NewContactService(contactRepo, dispatcher, false)

	h := handler.New(pool, cfg.Origins(), cfg.AppEnv)
	contactHandler := handler.NewContactHandler(contactService)

	apiLimiter := handler.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow,
		"Too many requests from this IP, please try again later.")
	contactLimiter := handler.NewRateLimiter(cfg.ContactRateLimitMax, cfg.ContactRateLimitWindow,
		"Too many contact submissions. Please try again later.")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("GET /health", h.Health)
	mux.Handle("POST /api/contact", contactLimiter.Middleware(http.HandlerFunc(contactHandler.Submit)))

	// Admin surface; an external gateway is expected to enforce auth.
	mux.HandleFunc("GET /api/contact", contactHandler.List)
	mux.HandleFunc("GET /api/contact/{id}", contactHandler.Get)
	mux.HandleFunc("PATCH /api/contact/{id}/read", contactHandler.MarkRead)
	mux.HandleFunc("DELETE /api/contact/{id}", contactHandler.Delete)

	var root http.Handler = mux
	root = handler.MaxBody(root)
	root = handler.LimitPrefix("/api", apiLimiter.Middleware)(root)
	root = h.CORS(root)
	root = handler.SecurityHeaders(root)
	root = handler.RequestLogger(root)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
