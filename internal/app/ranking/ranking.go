// Pacote ranking calcula, a partir dos votos crus, o resumo por integração e a ordem de prioridade.
// Nada aqui acessa o store; o chamador passa o estado completo a cada leitura.
package ranking

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
)

var cem = decimal.NewFromInt(100)

// Calcular agrega e ranqueia numa só chamada, como o painel consome.
func Calcular(votos []domain.Voto, integracoes []domain.Integracao) []domain.Prioridade {
	return Ranquear(Agregar(votos, integracoes))
}

// Agregar soma os votos por integração. Só aparecem integrações com pelo menos um voto,
// na ordem em que surgem na lista de votos; o status vem do cadastro ou cai em requested.
func Agregar(votos []domain.Voto, integracoes []domain.Integracao) []domain.Prioridade {
	cadastro := make(map[string]domain.Integracao, len(integracoes))
	for _, it := range integracoes {
		cadastro[it.Nome] = it
	}

	type acumulado struct {
		prioridade domain.Prioridade
		clientes   map[string]struct{}
		prospects  map[string]struct{}
	}

	porNome := make(map[string]*acumulado)
	ordem := make([]string, 0)

	for _, v := range votos {
		acc, ok := porNome[v.NomeIntegracao]
		if !ok {
			p := domain.Prioridade{
				Nome:              v.NomeIntegracao,
				Status:            domain.StatusSolicitada,
				TotalMRRPotencial: decimal.Zero,
				MRREmRisco:        decimal.Zero,
				MRRProspects:      decimal.Zero,
				MRRMedio:          decimal.Zero,
			}
			if it, existe := cadastro[v.NomeIntegracao]; existe {
				if it.Status != "" {
					p.Status = it.Status
				}
				p.Descricao = it.Descricao
				p.InicioDesenvolvimento = it.InicioDesenvolvimento
				p.PrevisaoConclusao = it.PrevisaoConclusao
			}
			acc = &acumulado{
				prioridade: p,
				clientes:   make(map[string]struct{}),
				prospects:  make(map[string]struct{}),
			}
			porNome[v.NomeIntegracao] = acc
			ordem = append(ordem, v.NomeIntegracao)
		}

		chave := domain.ChaveNormalizada(v.NomeRestaurante)
		switch v.TipoCliente {
		case domain.TipoClienteAtual:
			acc.prioridade.MRREmRisco = acc.prioridade.MRREmRisco.Add(v.MRRPotencial)
			acc.clientes[chave] = struct{}{}
		case domain.TipoClienteProspect:
			acc.prioridade.MRRProspects = acc.prioridade.MRRProspects.Add(v.MRRPotencial)
			acc.prospects[chave] = struct{}{}
		}
		acc.prioridade.TotalVotos++
	}

	prioridades := make([]domain.Prioridade, 0, len(ordem))
	for _, nome := range ordem {
		acc := porNome[nome]
		p := acc.prioridade
		// risco + prospects == total
		p.TotalMRRPotencial = p.MRREmRisco.Add(p.MRRProspects)
		p.ClientesAtuais = len(acc.clientes)
		p.Prospects = len(acc.prospects)
		if p.TotalVotos > 0 {
			p.MRRMedio = p.TotalMRRPotencial.Div(decimal.NewFromInt(int64(p.TotalVotos))).Round(2)
		}
		prioridades = append(prioridades, p)
	}
	return prioridades
}

// Ranquear ordena por total decrescente (empate por nome), numera as posições,
// marca o primeiro como destaque e calcula o percentual relativo ao maior total.
func Ranquear(prioridades []domain.Prioridade) []domain.Prioridade {
	ranqueadas := slices.Clone(prioridades)
	slices.SortStableFunc(ranqueadas, func(a, b domain.Prioridade) int {
		if c := b.TotalMRRPotencial.Cmp(a.TotalMRRPotencial); c != 0 {
			return c
		}
		return strings.Compare(a.Nome, b.Nome)
	})

	maximo := decimal.Zero
	if len(ranqueadas) > 0 {
		maximo = ranqueadas[0].TotalMRRPotencial
	}

	for i := range ranqueadas {
		ranqueadas[i].Posicao = i + 1
		ranqueadas[i].Destaque = i == 0
		ranqueadas[i].Percentual = Percentual(ranqueadas[i].TotalMRRPotencial, maximo)
	}
	return ranqueadas
}

// Percentual devolve total/maximo em %, limitado a [0, 100].
//
// Com máximo a partir de 1 o resultado coincide com dividir por max(maximo, 1).
// Abaixo de 1 divide-se pelo máximo real, para que o topo do ranking seja sempre 100
// (com piso 1, um topo de 0,50 € ficaria em 50%). Máximo zero: todos empatam em 100.
func Percentual(total, maximo decimal.Decimal) float64 {
	if !maximo.IsPositive() {
		return 100
	}

	pct := total.Div(maximo).Mul(cem)
	switch {
	case pct.GreaterThan(cem):
		pct = cem
	case pct.IsNegative():
		pct = decimal.Zero
	}
	return pct.Round(2).InexactFloat64()
}

// Totais resume a lista ranqueada para os cartões do topo do painel.
func Totais(prioridades []domain.Prioridade) domain.TotaisPainel {
	totais := domain.TotaisPainel{
		TotalMRRPotencial: decimal.Zero,
		MRREmRisco:        decimal.Zero,
		MRRProspects:      decimal.Zero,
	}
	for _, p := range prioridades {
		totais.TotalMRRPotencial = totais.TotalMRRPotencial.Add(p.TotalMRRPotencial)
		totais.MRREmRisco = totais.MRREmRisco.Add(p.MRREmRisco)
		totais.MRRProspects = totais.MRRProspects.Add(p.MRRProspects)
		totais.TotalVotos += p.TotalVotos
		totais.ClientesAtuais += p.ClientesAtuais
		totais.Prospects += p.Prospects
	}
	return totais
}
