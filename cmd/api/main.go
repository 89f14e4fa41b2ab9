package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	openai "github.com/sashabaranov/go-openai"

	"collectapi/internal/auth"
	"collectapi/internal/coin"
	"collectapi/internal/collection"
	"collectapi/internal/config"
	"collectapi/internal/country"
	"collectapi/internal/httpx"
	"collectapi/internal/i18n"
	"collectapi/internal/marketplace"
	"collectapi/internal/metrics"
	"collectapi/internal/nft"
	"collectapi/internal/payment"
	"collectapi/internal/photo"
	"collectapi/internal/stamp"
	"collectapi/internal/theme"
	"collectapi/internal/user"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339,
	})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	dbPool := mustOpenDB(cfg.DatabaseDSN)
	defer dbPool.Close()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	stampService := stamp.NewService(stamp.NewPostgresRepo(dbPool, cfg.DBTimeout))
	coinService := coin.NewService(coin.NewPostgresRepo(dbPool, cfg.DBTimeout))
	marketplaceService := marketplace.NewService(marketplace.NewPostgresRepo(dbPool, cfg.DBTimeout))
	collectionService := collection.NewService(collection.NewPostgresRepo(dbPool, cfg.DBTimeout))
	userRepo := user.NewPostgresRepo(dbPool, cfg.DBTimeout)
	authService := auth.NewService(userRepo, cfg.JWTSecret)

	var completer theme.ChatCompleter
	if cfg.OpenAIAPIKey != "" {
		completer = openai.NewClient(cfg.OpenAIAPIKey)
	} else {
		slog.Warn("OPENAI_API_KEY not set, theme generation will use fallback palettes")
	}
	themeService := theme.NewService(completer)

	mintClient := nft.NewClient(cfg.PluralityAPIURL, cfg.PluralityAPIKey, 5, 2)
	nftService := nft.NewService(stampService, mintClient, nft.NewPostgresRepo(dbPool, cfg.DBTimeout))

	paymentService := payment.NewStripeService(cfg.StripeSecretKey)
	countryService := country.NewService()

	stampHandler := stamp.NewHTTPHandler(stampService)
	coinHandler := coin.NewHTTPHandler(coinService)
	marketplaceHandler := marketplace.NewHTTPHandler(marketplaceService)
	collectionHandler := collection.NewHTTPHandler(collectionService)
	authHandler := auth.NewHTTPHandler(authService, cfg.EnableHSTS)
	themeHandler := theme.NewHTTPHandler(themeService)
	nftHandler := nft.NewHTTPHandler(nftService)
	paymentHandler := payment.NewHTTPHandler(paymentService)
	countryHandler := country.NewHTTPHandler(countryService)
	i18nHandler := i18n.NewHTTPHandler()
	photoHandler := photo.NewHTTPHandler()

	authRequired := httpx.AuthMiddleware(cfg.JWTSecret)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := dbPool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", metrics.Handler(registry))

	// handle registers a route with request metrics under the group label.
	handle := func(pattern, group string, h http.HandlerFunc) {
		router.Handle(pattern, collector.Middleware(group, h))
	}
	protected := func(pattern, group string, h http.HandlerFunc) {
		router.Handle(pattern, collector.Middleware(group, authRequired(h)))
	}

	handle("GET /stamps", "/stamps", stampHandler.List)
	handle("GET /stamps/categories", "/stamps", stampHandler.ListCategories)
	handle("GET /stamps/{id}", "/stamps", stampHandler.GetByID)
	protected("POST /stamps", "/stamps", stampHandler.Create)
	protected("PUT /stamps/{id}", "/stamps", stampHandler.Update)
	protected("DELETE /stamps/{id}", "/stamps", stampHandler.Delete)

	handle("GET /coins", "/coins", coinHandler.List)
	handle("GET /coins/categories", "/coins", coinHandler.ListCategories)
	handle("GET /coins/{id}", "/coins", coinHandler.GetByID)
	protected("POST /coins", "/coins", coinHandler.Create)
	protected("PUT /coins/{id}", "/coins", coinHandler.Update)
	protected("DELETE /coins/{id}", "/coins", coinHandler.Delete)

	handle("GET /marketplace", "/marketplace", marketplaceHandler.Search)
	handle("GET /marketplace/{id}", "/marketplace", marketplaceHandler.GetByID)
	protected("POST /marketplace", "/marketplace", marketplaceHandler.Create)
	protected("PATCH /marketplace/{id}/status", "/marketplace", marketplaceHandler.UpdateStatus)

	protected("GET /collection", "/collection", collectionHandler.List)
	protected("POST /collection", "/collection", collectionHandler.Add)
	protected("PUT /collection/{id}", "/collection", collectionHandler.Update)
	protected("DELETE /collection/{id}", "/collection", collectionHandler.Remove)

	handle("POST /auth/register", "/auth", authHandler.Register)
	handle("POST /auth/login", "/auth", authHandler.Login)
	handle("POST /auth/logout", "/auth", authHandler.Logout)
	protected("GET /auth/me", "/auth", authHandler.Me)

	protected("POST /themes/generate", "/themes", themeHandler.Generate)

	protected("POST /nft/mint", "/nft", nftHandler.Mint)
	protected("GET /nft", "/nft", nftHandler.ListMine)

	protected("POST /payments/create-intent", "/payments", paymentHandler.CreateIntent)

	handle("GET /countries/detect", "/countries", countryHandler.Detect)
	handle("GET /countries/{code}", "/countries", countryHandler.GetByCode)

	handle("GET /i18n/languages", "/i18n", i18nHandler.ListLanguages)
	handle("GET /i18n/{locale}", "/i18n", i18nHandler.GetTable)

	handle("POST /photos/enhance", "/photos", photoHandler.Enhance)

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	var handler http.Handler = router
	handler = rateLimiter.Handler(handler)
	handler = httpx.RequestSizeLimitMiddleware(cfg.MaxRequestSize)(handler)
	handler = httpx.SecurityHeadersMiddleware(cfg.EnableHSTS)(handler)
	handler = httpx.CORSMiddleware(cfg.AllowedOrigins)(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)
	handler = httpx.RecoveryMiddleware(handler)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("starting server", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func mustOpenDB(dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		slog.Error("cannot create db pool", "error", err)
		os.Exit(1)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		slog.Error("cannot ping database", "dsn", redactDSN(dsn), "error", err)
		os.Exit(1)
	}
	slog.Info("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
