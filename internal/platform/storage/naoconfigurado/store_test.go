package naoconfigurado

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
)

func TestVotos_QuandoNaoConfigurado_DeveLerVazioERecusarEscrita(t *testing.T) {
	ctx := context.Background()

	votos, err := Votos{}.Listar(ctx)
	assert.NoError(t, err)
	assert.Empty(t, votos)

	assert.ErrorIs(t, Votos{}.Registrar(ctx, domain.Voto{}), domain.ErrNaoConfigurado)
	assert.ErrorIs(t, Votos{}.Remover(ctx, "01J0000000000000000000000"), domain.ErrNaoConfigurado)
}

func TestIntegracoes_QuandoNaoConfigurado_DeveLerVazioERecusarEscrita(t *testing.T) {
	ctx := context.Background()

	integracoes, err := Integracoes{}.Listar(ctx)
	assert.NoError(t, err)
	assert.Empty(t, integracoes)

	assert.ErrorIs(t, Integracoes{}.GarantirExistencia(ctx, domain.Integracao{Nome: "Sage"}), domain.ErrNaoConfigurado)
}
