// Package handler is the stateless deployment shape of the contact pipeline,
// laid out for function platforms that route requests straight to an exported
// http.HandlerFunc. No background work survives the response here, so email
// dispatch is awaited on the request's critical path and its per-channel
// outcome is reported in the response body.
package handler

import (
	"net/http"
	"sync"

	"github.com/jasswanth/portfolio-backend/internal/config"
	"github.com/jasswanth/portfolio-backend/internal/handler"
	"github.com/jasswanth/portfolio-backend/internal/logging"
	"github.com/jasswanth/portfolio-backend/internal/mail"
	"github.com/jasswanth/portfolio-backend/internal/repository"
	"github.com/jasswanth/portfolio-backend/internal/service"
)

var (
	setupOnce  sync.Once
	setupErr   error
	cfg        *config.Config
	dispatcher *mail.Dispatcher
	corsChain  func(http.Handler) http.Handler
)

// setup runs once per process. The database pool is NOT created here: the
// platform may freeze and thaw the process, so every invocation goes through
// repository.Connect, which reuses the cached pool only while it is live.
func setup() {
	logging.Setup()

	cfg, setupErr = config.Load()
	if setupErr != nil {
		return
	}

	var mailer *mail.SMTPMailer
	mailer, setupErr = mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.EmailHost,
		Port:     cfg.EmailPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPassword,
	})
	if setupErr != nil {
		return
	}
	dispatcher = mail.NewDispatcher(mailer, mail.DispatcherConfig{
		FromAddress: cfg.EmailUser,
		NotifyTo:    cfg.NotificationEmail,
		OwnerName:   cfg.OwnerName,
	})

	h := handler.New(nil, cfg.Origins(), cfg.AppEnv)
	corsChain = func(next http.Handler) http.Handler {
		return h.CORS(handler.MaxBody(next))
	}
}

// Handler is the function entry point: POST /api/contact plus CORS preflight.
func Handler(w http.ResponseWriter, r *http.Request) {
	setupOnce.Do(setup)
	if setupErr != nil {
		handler.WriteServerError(w, "function setup failed", setupErr)
		return
	}
	corsChain(http.HandlerFunc(serve)).ServeHTTP(w, r)
}

func serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		handler.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	pool, err := repository.Connect(r.Context(), cfg.DatabaseURL)
	if err != nil {
		handler.WriteServerError(w, "database connect failed", err)
		return
	}

	repo := repository.NewPgContactRepository(pool)
	// Stateless shape: await email dispatch before the response is framed.
	svc := service.NewContactService(repo, dispatcher, true)
	handler.NewContactHandler(svc).Submit(w, r)
}
