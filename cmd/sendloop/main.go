package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/sendloop/sendloop/internal/config"
	"github.com/sendloop/sendloop/internal/handlers"
	"github.com/sendloop/sendloop/internal/progress"
	"github.com/sendloop/sendloop/internal/sendjob"
	"github.com/sendloop/sendloop/internal/server"
	"github.com/sendloop/sendloop/internal/session"
	"github.com/sendloop/sendloop/pkg/cookie"
	"github.com/sendloop/sendloop/pkg/logger"
	"github.com/sendloop/sendloop/pkg/mailer"
	"github.com/sendloop/sendloop/pkg/mailer/resend"
	"github.com/sendloop/sendloop/pkg/mailer/smtp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load() // optional .env for local development

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(cfg.Logger, cfg.Sentry, server.RequestIDExtractor())

	cookies, err := cookie.New(cfg.SessionSecret, cfg.SecureCookies)
	if err != nil {
		return err
	}

	var transport mailer.Transport
	switch cfg.Provider {
	case config.ProviderResend:
		transport = resend.New()
	default:
		transport = smtp.New(cfg.SMTP)
	}

	sessions := session.NewManager()
	jobs := sendjob.NewStore()
	runner := sendjob.NewRunner(jobs, transport,
		sendjob.WithDelay(cfg.SendDelay),
		sendjob.WithLogger(log),
	)
	streamer := progress.NewStreamer(jobs,
		progress.WithInterval(cfg.ProgressInterval),
		progress.WithLogger(log),
	)

	h := handlers.New(sessions, jobs, runner, streamer, transport, log)
	router := server.NewRouter(log, cookies, h)

	srv := server.New(cfg.Addr, router, log,
		server.WithShutdownTimeout(cfg.ShutdownTimeout),
	)
	return srv.Run(context.Background())
}
