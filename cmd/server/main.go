package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"supportbridge/backend/internal/config"
	"supportbridge/backend/internal/httpserver"
	"supportbridge/backend/internal/infrastructure/signature"
	"supportbridge/backend/internal/infrastructure/token"
	verifyusecase "supportbridge/backend/internal/usecase/verify"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	authenticator := token.NewAuthenticator(cfg.AuthSecret)
	signer := signature.NewSigner(cfg.SigningSecret)
	verifyService := verifyusecase.NewService(authenticator, signer)

	server := httpserver.NewServer(cfg, verifyService)
	log.Printf("HTTP server listening on %s", server.Addr())

	go func() {
		if err := server.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Printf("HTTP server closed: %v", err)
				return
			}
			log.Fatalf("server error: %v", err)
		}
		log.Printf("HTTP server stopped accepting new connections")
	}()

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	} else {
		log.Printf("graceful shutdown completed")
	}
}
