// Pacote ids gera os identificadores substitutos (ULID) de votos e integrações.
package ids

import (
	"io"
	"sync"

	"github.com/oklog/ulid/v2"
)

// Generator produz ULIDs monotônicos; a ordem lexicográfica acompanha a ordem de criação.
type Generator struct {
	entropy io.Reader
}

// NewGenerator usa a entropia monotônica da lib, já protegida para uso concorrente.
func NewGenerator() *Generator {
	return &Generator{entropy: ulid.DefaultEntropy()}
}

func (g *Generator) New() string {
	return ulid.MustNew(ulid.Now(), g.entropy).String()
}

var (
	padraoOnce sync.Once
	padrao     *Generator
)

func DefaultGenerator() *Generator {
	padraoOnce.Do(func() {
		padrao = NewGenerator()
	})
	return padrao
}

// Valido confere se o texto é um ULID canônico antes de ir ao banco.
func Valido(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}
