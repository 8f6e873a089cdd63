package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_New_DeveGerarIDsCrescentesEValidos(t *testing.T) {
	gen := NewGenerator()

	anterior := gen.New()
	for i := 0; i < 100; i++ {
		atual := gen.New()
		assert.Len(t, atual, 26)
		assert.True(t, Valido(atual))
		assert.Greater(t, atual, anterior)
		anterior = atual
	}
}

func TestValido_QuandoTextoInvalido_DeveRetornarFalse(t *testing.T) {
	assert.False(t, Valido(""))
	assert.False(t, Valido("42"))
	assert.False(t, Valido("01HXXXXXXXXXXXXXXXXXXXXXX!"))
}
