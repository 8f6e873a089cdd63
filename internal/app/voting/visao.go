package voting

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/logger"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/metrics"
)

// Visao é o estado lido numa única ida ao store. Cada lista degrada sozinha:
// se a leitura falha, ela fica vazia e o erro fica registrado no campo Falha correspondente.
type Visao struct {
	Votos            []domain.Voto
	Integracoes      []domain.Integracao
	FalhaVotos       error
	FalhaIntegracoes error
}

// Carregar busca votos e integrações em paralelo.
func (s *Service) Carregar(ctx context.Context) Visao {
	var (
		v Visao
		g errgroup.Group
	)

	g.Go(func() error {
		votos, err := s.votos.Listar(ctx)
		if err != nil {
			v.FalhaVotos = err
			votos = []domain.Voto{}
		}
		v.Votos = votos
		return nil
	})

	g.Go(func() error {
		integracoes, err := s.integracoes.Listar(ctx)
		if err != nil {
			v.FalhaIntegracoes = err
			integracoes = []domain.Integracao{}
		}
		v.Integracoes = integracoes
		return nil
	})

	_ = g.Wait()

	if v.FalhaVotos != nil {
		metrics.IncFalhaLeitura("votes")
		logger.DoContexto(ctx).Error("falha ao ler votos", "erro", v.FalhaVotos)
	}
	if v.FalhaIntegracoes != nil {
		metrics.IncFalhaLeitura("integrations")
		logger.DoContexto(ctx).Error("falha ao ler integracoes", "erro", v.FalhaIntegracoes)
	}
	return v
}
