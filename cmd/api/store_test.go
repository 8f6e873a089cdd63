package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/config"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/storage/foradoar"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/storage/naoconfigurado"
)

func TestMontarStore_QuandoNaoConfigurado_DeveUsarModoDegradado(t *testing.T) {
	s := montarStore(context.Background(), config.Config{})

	assert.Equal(t, naoconfigurado.Votos{}, s.votos)
	assert.Equal(t, naoconfigurado.Integracoes{}, s.integracoes)
	assert.Nil(t, s.sqlDB)
}

func TestMontarStore_QuandoPostgresInacessivel_DeveSeguirForaDoAr(t *testing.T) {
	cfg := config.Config{
		StoreURL:       "postgres://app@127.0.0.1:1/integracoes?sslmode=disable&connect_timeout=1",
		StoreKey:       "segredo",
		DBMaxOpenConns: 1,
	}

	s := montarStore(context.Background(), cfg)

	assert.Nil(t, s.sqlDB)
	assert.IsType(t, foradoar.Votos{}, s.votos)
	_, err := s.votos.Listar(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreIndisponivel)
	assert.ErrorIs(t, s.integracoes.GarantirExistencia(context.Background(), domain.Integracao{Nome: "Sage"}), domain.ErrStoreIndisponivel)
}

func TestMontarStore_QuandoURLComEsquemaInvalido_DeveSeguirForaDoAr(t *testing.T) {
	cfg := config.Config{StoreURL: "https://projeto.supabase.co", StoreKey: "segredo"}

	s := montarStore(context.Background(), cfg)

	assert.Nil(t, s.sqlDB)
	assert.IsType(t, foradoar.Integracoes{}, s.integracoes)
}
