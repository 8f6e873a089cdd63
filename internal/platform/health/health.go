// Pacote health expõe o readiness: store e Redis, quando presentes, precisam responder.
package health

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

type Checker struct {
	db          *sql.DB
	redis       *redis.Client
	configurado bool
}

// NewChecker recebe db nulo quando não há store aberto. Sem configuração o serviço fica pronto e degradado;
// configurado e sem conexão, o readiness falha.
func NewChecker(db *sql.DB, redis *redis.Client, configurado bool) *Checker {
	return &Checker{db: db, redis: redis, configurado: configurado}
}

func (c *Checker) LiveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

func (c *Checker) ReadyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		// Store configurado sem conexão aberta significa que a subida caiu no modo fora do ar.
		if c.configurado && c.db == nil {
			http.Error(w, "store indisponivel", http.StatusServiceUnavailable)
			return
		}
		if c.db != nil {
			if err := c.db.PingContext(ctx); err != nil {
				http.Error(w, "store indisponivel", http.StatusServiceUnavailable)
				return
			}
		}

		if c.redis != nil {
			if err := c.redis.Ping(ctx).Err(); err != nil {
				http.Error(w, "redis indisponivel", http.StatusServiceUnavailable)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		if !c.configurado {
			_, _ = w.Write([]byte("degradado"))
			return
		}
		_, _ = w.Write([]byte("ok"))
	}
}
