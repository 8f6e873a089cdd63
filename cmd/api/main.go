// Executável principal: carrega a configuração, escolhe o store e sobe painel, API e métricas no mesmo servidor HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/marcelojr/integracoes-prioridade/internal/app/httpapi"
	"github.com/marcelojr/integracoes-prioridade/internal/app/voting"
	"github.com/marcelojr/integracoes-prioridade/internal/app/web"
	"github.com/marcelojr/integracoes-prioridade/internal/domain"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/antifraude"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/clock"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/config"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/health"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/ids"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/logger"
	redisstorage "github.com/marcelojr/integracoes-prioridade/internal/platform/storage/redis"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuracao invalida", "err", err)
	}
	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))

	st := montarStore(ctx, cfg)
	if st.sqlDB != nil {
		defer st.sqlDB.Close()
	}

	// Redis só serve ao rate limit; se cair na subida seguimos sem limite.
	var (
		antifraudeSvc domain.Antifraude = antifraude.NewNoop()
		redisClient   *redis.Client
	)
	if cfg.RateLimitAtivo() {
		client, err := redisstorage.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("redis indisponivel, rate limit desativado", "err", err, "addr", cfg.RedisAddr)
		} else {
			redisClient = client
			defer redisClient.Close()
			antifraudeSvc = antifraude.NewLimitadorRedis(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow, cfg.RateLimitPrefix)
		}
	}

	servico := voting.NewService(
		st.votos,
		st.integracoes,
		antifraudeSvc,
		clock.NewSystemClock(),
		ids.NewGenerator(),
		cfg.Configurado(),
	)

	frontend, err := web.New(servico)
	if err != nil {
		logger.Fatal("erro ao carregar templates", "err", err)
	}
	checker := health.NewChecker(st.sqlDB, redisClient, cfg.Configurado())

	r := chi.NewRouter()
	r.Use(httpapi.RequestID, httpapi.Logging(logger.L()), middleware.Recoverer)
	r.Get("/healthz", checker.LiveHandler())
	r.Get("/readyz", checker.ReadyHandler())
	r.Handle("/metrics", promhttp.Handler())
	httpapi.New(servico, logger.L(), cfg.CORSAllowedOrigins).Register(r)
	frontend.Register(r)

	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("falha ao encerrar servidor", "err", err)
		}
	}()

	logger.Info("api ouvindo", "addr", cfg.HTTPAddress, "configurado", cfg.Configurado())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("erro no servidor", "err", err)
	}
	logger.Info("servidor encerrado")
}
