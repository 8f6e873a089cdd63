// Pacote voting implementa as regras das demandas de integração: submissão, remoção e leituras do painel e do histórico.
package voting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/marcelojr/integracoes-prioridade/internal/app/historico"
	"github.com/marcelojr/integracoes-prioridade/internal/app/ranking"
	"github.com/marcelojr/integracoes-prioridade/internal/domain"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/antifraude"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/ids"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/logger"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/metrics"
)

var (
	ErrVotoInvalido           = errors.New("voto invalido")
	ErrIntegracaoDesconhecida = errors.New("integracao fora do catalogo")
	ErrConfirmacaoNecessaria  = errors.New("remocao exige confirmacao")
	ErrVotoIDInvalido         = errors.New("id de voto invalido")
	ErrHistoricoIndisponivel  = errors.New("historico indisponivel")
)

// VotosRecentes é quantos votos o painel lista abaixo do ranking.
const VotosRecentes = 10

// Service concentra as regras e fala com o store apenas pelas portas do domínio.
type Service struct {
	votos       domain.VotoRepository
	integracoes domain.IntegracaoRepository
	antifraude  domain.Antifraude
	clock       domain.Clock
	ids         *ids.Generator
	configurado bool
}

func NewService(
	votos domain.VotoRepository,
	integracoes domain.IntegracaoRepository,
	antifraude domain.Antifraude,
	clock domain.Clock,
	idsGen *ids.Generator,
	configurado bool,
) *Service {
	if idsGen == nil {
		idsGen = ids.DefaultGenerator()
	}
	return &Service{
		votos:       votos,
		integracoes: integracoes,
		antifraude:  antifraude,
		clock:       clock,
		ids:         idsGen,
		configurado: configurado,
	}
}

func (s *Service) Configurado() bool {
	return s.configurado
}

// SubmeterVoto normaliza e valida antes de qualquer chamada ao store. A integração é
// criada se ainda não existir e só então o voto é inserido; falhas não são repetidas.
func (s *Service) SubmeterVoto(ctx context.Context, form domain.FormularioVoto, origem domain.OrigemSubmissao) (domain.Voto, error) {
	voto, err := s.submeter(ctx, form, origem)
	metrics.ObserveSubmissao(statusSubmissao(err))
	return voto, err
}

func (s *Service) submeter(ctx context.Context, form domain.FormularioVoto, origem domain.OrigemSubmissao) (domain.Voto, error) {
	voto, err := NormalizarFormulario(form)
	if err != nil {
		return domain.Voto{}, err
	}

	item, ok := domain.BuscarNoCatalogo(voto.NomeIntegracao)
	if !ok {
		return domain.Voto{}, fmt.Errorf("%w: %q", ErrIntegracaoDesconhecida, voto.NomeIntegracao)
	}

	if !s.configurado {
		return domain.Voto{}, domain.ErrNaoConfigurado
	}

	if s.antifraude != nil {
		if origem.Comercial == "" {
			origem.Comercial = voto.Comercial
		}
		if err := s.antifraude.Validar(ctx, origem); err != nil {
			return domain.Voto{}, err
		}
	}

	agora := s.clock.Agora()

	if err := s.integracoes.GarantirExistencia(ctx, domain.Integracao{
		ID:        domain.IntegracaoID(s.ids.New()),
		Nome:      item.Nome,
		Status:    domain.StatusSolicitada,
		Descricao: item.Descricao,
		CriadoEm:  agora,
	}); err != nil {
		return domain.Voto{}, fmt.Errorf("garantir integracao: %w", err)
	}

	voto.ID = domain.VotoID(s.ids.New())
	voto.CriadoEm = agora

	if err := s.votos.Registrar(ctx, voto); err != nil {
		return domain.Voto{}, fmt.Errorf("registrar voto: %w", err)
	}

	logger.DoContexto(ctx).Info("voto registrado",
		"voto_id", voto.ID,
		"integracao", voto.NomeIntegracao,
		"tipo_cliente", voto.TipoCliente,
	)
	return voto, nil
}

// RemoverVoto só chega ao store com confirmação explícita e id não vazio.
func (s *Service) RemoverVoto(ctx context.Context, id domain.VotoID, confirmado bool) error {
	err := s.remover(ctx, id, confirmado)
	metrics.ObserveRemocao(statusRemocao(err))
	return err
}

func (s *Service) remover(ctx context.Context, id domain.VotoID, confirmado bool) error {
	if !confirmado {
		return ErrConfirmacaoNecessaria
	}
	// Qualquer formato de id segue para o store; ids de bases existentes podem não ser ULID.
	if strings.TrimSpace(string(id)) == "" {
		return fmt.Errorf("%w: vazio", ErrVotoIDInvalido)
	}
	if !s.configurado {
		return domain.ErrNaoConfigurado
	}

	if err := s.votos.Remover(ctx, id); err != nil {
		return fmt.Errorf("remover voto: %w", err)
	}

	logger.DoContexto(ctx).Info("voto removido", "voto_id", id)
	return nil
}

// Painel recalcula o ranking do zero a cada leitura; falhas de leitura viram listas vazias.
func (s *Service) Painel(ctx context.Context) domain.Painel {
	inicio := time.Now()
	defer func() {
		metrics.ObserveDuracaoPainel(time.Since(inicio).Seconds())
	}()

	visao := s.Carregar(ctx)
	prioridades := ranking.Calcular(visao.Votos, visao.Integracoes)

	recentes := visao.Votos
	if len(recentes) > VotosRecentes {
		recentes = recentes[:VotosRecentes]
	}

	return domain.Painel{
		Configurado: s.configurado,
		Prioridades: prioridades,
		Totais:      ranking.Totais(prioridades),
		Votos:       recentes,
	}
}

// Historico diferencia "falha de leitura" (erro) de "nenhum voto casa o filtro" (SemResultados).
func (s *Service) Historico(ctx context.Context, filtro domain.FiltroHistorico) (domain.ResultadoHistorico, error) {
	votos, err := s.votos.Listar(ctx)
	if err != nil {
		metrics.IncFalhaLeitura("votes")
		logger.DoContexto(ctx).Error("falha ao ler historico", "erro", err)
		return domain.ResultadoHistorico{Configurado: s.configurado}, fmt.Errorf("%w: %v", ErrHistoricoIndisponivel, err)
	}

	res := historico.Filtrar(votos, filtro)
	res.Configurado = s.configurado
	return res, nil
}

func (s *Service) Catalogo(busca string) []domain.GrupoCatalogo {
	return domain.AgruparCatalogo(domain.Catalogo, busca)
}

func statusSubmissao(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrVotoInvalido), errors.Is(err, ErrIntegracaoDesconhecida):
		return "invalido"
	case errors.Is(err, domain.ErrNaoConfigurado):
		return "nao_configurado"
	case errors.Is(err, domain.ErrStoreIndisponivel):
		return "indisponivel"
	case errors.Is(err, antifraude.ErrLimiteExcedido):
		return "limitado"
	default:
		return "erro"
	}
}

func statusRemocao(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrConfirmacaoNecessaria):
		return "sem_confirmacao"
	case errors.Is(err, domain.ErrNotFound):
		return "nao_encontrado"
	case errors.Is(err, ErrVotoIDInvalido):
		return "invalido"
	case errors.Is(err, domain.ErrNaoConfigurado):
		return "nao_configurado"
	case errors.Is(err, domain.ErrStoreIndisponivel):
		return "indisponivel"
	default:
		return "erro"
	}
}

var _ domain.VotingService = (*Service)(nil)
