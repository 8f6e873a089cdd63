// Pacote foradoar ocupa o lugar do store configurado que não respondeu na subida.
// Toda operação falha com domain.ErrStoreIndisponivel; quem lê degrada para listas vazias.
package foradoar

import (
	"context"
	"fmt"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
)

type Votos struct {
	Causa error
}

func (v Votos) Listar(context.Context) ([]domain.Voto, error) {
	return nil, indisponivel(v.Causa)
}

func (v Votos) Registrar(context.Context, domain.Voto) error {
	return indisponivel(v.Causa)
}

func (v Votos) Remover(context.Context, domain.VotoID) error {
	return indisponivel(v.Causa)
}

type Integracoes struct {
	Causa error
}

func (i Integracoes) Listar(context.Context) ([]domain.Integracao, error) {
	return nil, indisponivel(i.Causa)
}

func (i Integracoes) GarantirExistencia(context.Context, domain.Integracao) error {
	return indisponivel(i.Causa)
}

func indisponivel(causa error) error {
	if causa == nil {
		return domain.ErrStoreIndisponivel
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreIndisponivel, causa)
}

var (
	_ domain.VotoRepository       = Votos{}
	_ domain.IntegracaoRepository = Integracoes{}
)
