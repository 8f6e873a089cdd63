// Pacote historico filtra a lista plana de votos exibida na tela de histórico.
package historico

import (
	"slices"
	"strings"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
)

func ativo(valor string) bool {
	v := strings.TrimSpace(valor)
	return v != "" && v != domain.FiltroTodos
}

// FiltroAtivo indica se algum dos três predicados está em uso.
func FiltroAtivo(f domain.FiltroHistorico) bool {
	return ativo(f.Busca) || ativo(f.Integracao) || ativo(f.TipoCliente)
}

// Filtrar mantém a ordem de entrada (mais recentes primeiro) e aplica só os predicados ativos.
func Filtrar(votos []domain.Voto, f domain.FiltroHistorico) domain.ResultadoHistorico {
	busca := strings.TrimSpace(f.Busca)
	integracao := strings.TrimSpace(f.Integracao)
	tipo := strings.TrimSpace(f.TipoCliente)

	filtrados := make([]domain.Voto, 0, len(votos))
	for _, v := range votos {
		if ativo(busca) && !casaBusca(v, busca) {
			continue
		}
		if ativo(integracao) && v.NomeIntegracao != integracao {
			continue
		}
		if ativo(tipo) && string(v.TipoCliente) != tipo {
			continue
		}
		filtrados = append(filtrados, v)
	}

	return domain.ResultadoHistorico{
		Votos:         filtrados,
		Total:         len(filtrados),
		Integracoes:   IntegracoesDistintas(votos),
		FiltrosAtivos: FiltroAtivo(f),
		SemResultados: len(filtrados) == 0,
	}
}

func casaBusca(v domain.Voto, termo string) bool {
	return domain.ContemIgnorandoCaixa(v.NomeRestaurante, termo) ||
		domain.ContemIgnorandoCaixa(v.NomeIntegracao, termo) ||
		domain.ContemIgnorandoCaixa(v.Comercial, termo)
}

// IntegracoesDistintas alimenta o seletor de integração, em ordem alfabética.
func IntegracoesDistintas(votos []domain.Voto) []string {
	nomes := make([]string, 0)
	vistos := make(map[string]struct{})
	for _, v := range votos {
		if _, ok := vistos[v.NomeIntegracao]; ok {
			continue
		}
		vistos[v.NomeIntegracao] = struct{}{}
		nomes = append(nomes, v.NomeIntegracao)
	}
	slices.Sort(nomes)
	return nomes
}
