package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgruparCatalogo_QuandoSemTermo_DeveAgruparNaOrdemDoCatalogo(t *testing.T) {
	grupos := AgruparCatalogo(Catalogo, "")

	categorias := make([]string, len(grupos))
	total := 0
	for i, g := range grupos {
		categorias[i] = g.Categoria
		total += len(g.Itens)
	}

	assert.Equal(t, []string{"Réservation", "Hôtellerie", "Comptabilité", "Hygiène", "Livraison", "Third Party Integrator"}, categorias)
	assert.Equal(t, len(Catalogo), total)
}

func TestAgruparCatalogo_QuandoTermoCasaCategoria_DeveRetornarApenasGrupo(t *testing.T) {
	grupos := AgruparCatalogo(Catalogo, "LIVRAISON")

	if assert.Len(t, grupos, 1) {
		assert.Equal(t, "Livraison", grupos[0].Categoria)
		assert.Len(t, grupos[0].Itens, 2)
	}
}

func TestAgruparCatalogo_QuandoTermoNaoCasa_DeveRetornarListaVazia(t *testing.T) {
	grupos := AgruparCatalogo(Catalogo, "inexistente")

	assert.NotNil(t, grupos)
	assert.Empty(t, grupos)
}

func TestBuscarNoCatalogo(t *testing.T) {
	item, ok := BuscarNoCatalogo("Chift API")
	assert.True(t, ok)
	assert.Equal(t, "Third Party Integrator", item.Categoria)

	_, ok = BuscarNoCatalogo("chift api")
	assert.False(t, ok)
}

func TestContemIgnorandoCaixa_QuandoAcentoMaiusculo_DeveCasar(t *testing.T) {
	assert.True(t, ContemIgnorandoCaixa("HÔTELLERIE", "hôtel"))
	assert.True(t, ContemIgnorandoCaixa("Le Gourmet", ""))
	assert.False(t, ContemIgnorandoCaixa("Le Gourmet", "bistro"))
}

func TestChaveNormalizada_DeveIgnorarCaixaEEspacos(t *testing.T) {
	assert.Equal(t, ChaveNormalizada("Le  Gourmet "), ChaveNormalizada("le gourmet"))
}
