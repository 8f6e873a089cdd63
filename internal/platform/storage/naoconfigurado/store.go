// Pacote naoconfigurado substitui o store quando as credenciais estão ausentes:
// leituras vazias e escritas recusadas com domain.ErrNaoConfigurado.
package naoconfigurado

import (
	"context"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
)

type Votos struct{}

func (Votos) Listar(context.Context) ([]domain.Voto, error) {
	return []domain.Voto{}, nil
}

func (Votos) Registrar(context.Context, domain.Voto) error {
	return domain.ErrNaoConfigurado
}

func (Votos) Remover(context.Context, domain.VotoID) error {
	return domain.ErrNaoConfigurado
}

type Integracoes struct{}

func (Integracoes) Listar(context.Context) ([]domain.Integracao, error) {
	return []domain.Integracao{}, nil
}

func (Integracoes) GarantirExistencia(context.Context, domain.Integracao) error {
	return domain.ErrNaoConfigurado
}

var (
	_ domain.VotoRepository       = Votos{}
	_ domain.IntegracaoRepository = Integracoes{}
)
