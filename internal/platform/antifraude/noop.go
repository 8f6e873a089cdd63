package antifraude

import (
	"context"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
)

// Noop é usado quando o rate limit está desligado ou o Redis não respondeu na inicialização.
type Noop struct{}

func NewNoop() Noop {
	return Noop{}
}

func (Noop) Validar(context.Context, domain.OrigemSubmissao) error {
	return nil
}

var _ domain.Antifraude = Noop{}
