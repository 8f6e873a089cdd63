package main

import (
	"context"
	"database/sql"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/config"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/logger"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/migrations"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/storage/foradoar"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/storage/naoconfigurado"
	postgresstorage "github.com/marcelojr/integracoes-prioridade/internal/platform/storage/postgres"
)

// store é o que a subida conseguiu montar; sqlDB fica nulo quando não há conexão aberta.
type store struct {
	votos       domain.VotoRepository
	integracoes domain.IntegracaoRepository
	sqlDB       *sql.DB
}

// montarStore nunca derruba o processo: sem credenciais cai no modo não configurado,
// e com o Postgres fora do ar as leituras degradam para vazio e o readiness responde 503.
func montarStore(ctx context.Context, cfg config.Config) store {
	if !cfg.Configurado() {
		logger.Warn("store nao configurado: leituras vazias e escritas recusadas",
			"variaveis", "INTEGRACOES_STORE_URL, INTEGRACOES_STORE_KEY")
		return store{votos: naoconfigurado.Votos{}, integracoes: naoconfigurado.Integracoes{}}
	}

	dsn, err := cfg.StoreDSN()
	if err != nil {
		logger.Error("url do store invalida, seguindo fora do ar", "err", err)
		return foraDoAr(err)
	}

	db, err := postgresstorage.Open(ctx, dsn, cfg.DBMaxOpenConns)
	if err != nil {
		logger.Error("falha ao conectar no postgres, seguindo fora do ar", "err", err)
		return foraDoAr(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("falha ao resgatar sql.DB, seguindo fora do ar", "err", err)
		return foraDoAr(err)
	}

	if cfg.AutoMigrate {
		// Schema já existente continua utilizável; a falha fica registrada.
		if err := migrations.Run(db); err != nil {
			logger.Error("falha na migracao automatica", "err", err)
		}
	}

	return store{
		votos:       postgresstorage.NewVotoRepository(db),
		integracoes: postgresstorage.NewIntegracaoRepository(db),
		sqlDB:       sqlDB,
	}
}

func foraDoAr(causa error) store {
	return store{votos: foradoar.Votos{Causa: causa}, integracoes: foradoar.Integracoes{Causa: causa}}
}
