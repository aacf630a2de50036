package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elampillai/storefront/internal/config"
	"elampillai/storefront/internal/httpapi"
	"elampillai/storefront/internal/persist"
	"elampillai/storefront/internal/persist/memory"
	pgstore "elampillai/storefront/internal/persist/postgres"
	redisstore "elampillai/storefront/internal/persist/redis"
	"elampillai/storefront/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	kv, closers := selectSliceStore(ctx, cfg)

	clock := service.SystemClock()
	auth := service.NewAuthManager(cfg.AuthSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute, clock)
	manager := service.NewManager(kv, auth, clock, service.Options{
		LoginDelay:   time.Duration(cfg.LoginDelayMillis) * time.Millisecond,
		PaymentDelay: time.Duration(cfg.PaymentDelayMs) * time.Millisecond,
		NoticeTTL:    time.Duration(cfg.NoticeTTLMillis) * time.Millisecond,
		ClampToStock: cfg.ClampCartToStock,
	})
	api := httpapi.New(manager, cfg.AllowedOrigin, cfg.WhatsAppLink)

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("storefront listening on %s", cfg.Address())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}

	manager.Close()
	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			log.Printf("close error: %v", err)
		}
	}

	log.Println("server stopped")
}

// selectSliceStore picks the persistence backend: Postgres when DATABASE_URL
// is set, otherwise Redis when reachable, otherwise in-memory.
func selectSliceStore(ctx context.Context, cfg config.Config) (persist.SliceStore, []func() error) {
	closers := make([]func() error, 0, 1)

	if cfg.DatabaseURL != "" {
		pg, err := pgstore.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres unavailable (%v) and DATABASE_URL is set; refusing to start with in-memory fallback", err)
		}
		closers = append(closers, pg.Close)
		log.Println("persistence: postgres")
		return pg, closers
	}

	if cfg.RedisAddr != "" {
		rs := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rs.Ping(ctx); err != nil {
			log.Printf("redis unavailable (%v), using in-memory persistence", err)
		} else {
			closers = append(closers, rs.Close)
			log.Println("persistence: redis")
			return rs, closers
		}
	}

	log.Println("persistence: in-memory")
	return memory.New(), closers
}
