package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/ids"
)

func novoVoto(gen *ids.Generator, restaurante string, mrr string, criadoEm time.Time) domain.Voto {
	return domain.Voto{
		ID:              domain.VotoID(gen.New()),
		NomeRestaurante: restaurante,
		MRRPotencial:    decimal.RequireFromString(mrr),
		NomeIntegracao:  "Deliveroo",
		Comercial:       "Claire",
		TipoCliente:     domain.TipoClienteAtual,
		CriadoEm:        criadoEm,
	}
}

func TestVotoRepository_Registrar_QuandoValido_DevePersistirComColunaLegada(t *testing.T) {
	db := setupPostgres(t)
	repo := NewVotoRepository(db)

	ctx := context.Background()
	gen := ids.NewGenerator()

	// Arrange
	link := "https://acme.my.salesforce.com/006XYZ"
	voto := novoVoto(gen, "Le Gourmet", "1200.5", time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC))
	voto.LinkSalesforce = &link

	// Act
	require.NoError(t, repo.Registrar(ctx, voto))

	// Assert
	var model votoModel
	require.NoError(t, db.First(&model, "id = ?", string(voto.ID)).Error)
	assert.True(t, model.MRR.Equal(model.MRRPotential))
	assert.True(t, decimal.RequireFromString("1200.5").Equal(model.MRRPotential))

	votos, err := repo.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, votos, 1)
	assert.Equal(t, "Le Gourmet", votos[0].NomeRestaurante)
	require.NotNil(t, votos[0].LinkSalesforce)
	assert.Equal(t, link, *votos[0].LinkSalesforce)
	assert.Nil(t, votos[0].Notas)
}

func TestVotoRepository_Listar_QuandoExistemVotos_DeveOrdenarDoMaisRecente(t *testing.T) {
	db := setupPostgres(t)
	repo := NewVotoRepository(db)

	ctx := context.Background()
	gen := ids.NewGenerator()
	base := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	// Arrange
	antigo := novoVoto(gen, "Bistro A", "100", base)
	recente := novoVoto(gen, "Bistro B", "200", base.Add(2*time.Hour))
	meio := novoVoto(gen, "Bistro C", "300", base.Add(time.Hour))
	for _, v := range []domain.Voto{antigo, recente, meio} {
		require.NoError(t, repo.Registrar(ctx, v))
	}

	// Act
	votos, err := repo.Listar(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, votos, 3)
	assert.Equal(t, recente.ID, votos[0].ID)
	assert.Equal(t, meio.ID, votos[1].ID)
	assert.Equal(t, antigo.ID, votos[2].ID)
}

func TestVotoRepository_Listar_QuandoVazio_DeveRetornarListaVazia(t *testing.T) {
	db := setupPostgres(t)
	repo := NewVotoRepository(db)

	votos, err := repo.Listar(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, votos)
	assert.Empty(t, votos)
}

func TestVotoRepository_Remover_QuandoExiste_DeveApagarApenasOVoto(t *testing.T) {
	db := setupPostgres(t)
	repo := NewVotoRepository(db)

	ctx := context.Background()
	gen := ids.NewGenerator()
	agora := time.Now().UTC()

	// Arrange
	alvo := novoVoto(gen, "Chez Paul", "500", agora)
	outro := novoVoto(gen, "Chez Anne", "700", agora)
	require.NoError(t, repo.Registrar(ctx, alvo))
	require.NoError(t, repo.Registrar(ctx, outro))

	// Act
	err := repo.Remover(ctx, alvo.ID)

	// Assert
	require.NoError(t, err)
	votos, err := repo.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, votos, 1)
	assert.Equal(t, outro.ID, votos[0].ID)
}

func TestVotoRepository_Remover_QuandoNaoExiste_DeveRetornarErrNotFound(t *testing.T) {
	db := setupPostgres(t)
	repo := NewVotoRepository(db)

	err := repo.Remover(context.Background(), domain.VotoID(ids.NewGenerator().New()))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
