package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/CodyT21/todos/internal/config"
	"github.com/CodyT21/todos/internal/repositories"
	"github.com/CodyT21/todos/internal/routes"
	"github.com/CodyT21/todos/internal/services"
)

func main() {
	// .env は任意。無ければ環境変数のみを使う
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Fatal: invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionRepo := repositories.NewSessionRepository(cfg.SessionTTL)
	jwtService := services.NewJWTService(cfg.SessionSecret, cfg.TokenTTL())
	go purgeSessions(ctx, sessionRepo, cfg.PurgeInterval())

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.SetupRouter(cfg, sessionRepo, jwtService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
}

// purgeSessions は期限切れのセッションを定期的に削除します。
func purgeSessions(ctx context.Context, sessionRepo *repositories.SessionRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessionRepo.PurgeExpired(); n > 0 {
				log.Printf("Purged %d expired sessions", n)
			}
		}
	}
}
