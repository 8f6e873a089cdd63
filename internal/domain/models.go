package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	VotoID           string
	IntegracaoID     string
	TipoCliente      string
	StatusIntegracao string
)

const (
	TipoClienteAtual    TipoCliente = "current_client"
	TipoClienteProspect TipoCliente = "prospect"
)

const (
	StatusSolicitada        StatusIntegracao = "requested"
	StatusEmDesenvolvimento StatusIntegracao = "in_development"
	StatusConcluida         StatusIntegracao = "completed"
)

func (t TipoCliente) Valido() bool {
	return t == TipoClienteAtual || t == TipoClienteProspect
}

// Voto é uma demanda de integração registrada por um comercial para um restaurante.
type Voto struct {
	ID              VotoID          `json:"id"`
	NomeRestaurante string          `json:"restaurant_name"`
	MRRPotencial    decimal.Decimal `json:"mrr_potential"`
	NomeIntegracao  string          `json:"integration_name"`
	Comercial       string          `json:"sales_person"`
	TipoCliente     TipoCliente     `json:"client_type"`
	LinkSalesforce  *string         `json:"salesforce_link,omitempty"`
	Notas           *string         `json:"notes,omitempty"`
	CriadoEm        time.Time       `json:"created_at"`
}

// Integracao guarda o status de ciclo de vida, mantido fora deste serviço.
type Integracao struct {
	ID                    IntegracaoID     `json:"id"`
	Nome                  string           `json:"name"`
	Status                StatusIntegracao `json:"status"`
	Descricao             string           `json:"description,omitempty"`
	InicioDesenvolvimento *time.Time       `json:"development_start,omitempty"`
	PrevisaoConclusao     *time.Time       `json:"estimated_completion,omitempty"`
	CriadoEm              time.Time        `json:"created_at"`
}

// Prioridade é o resumo derivado de uma integração, sempre recalculado a partir dos votos.
type Prioridade struct {
	Nome                  string           `json:"name"`
	Status                StatusIntegracao `json:"status"`
	Descricao             string           `json:"description,omitempty"`
	InicioDesenvolvimento *time.Time       `json:"development_start,omitempty"`
	PrevisaoConclusao     *time.Time       `json:"estimated_completion,omitempty"`
	TotalMRRPotencial     decimal.Decimal  `json:"total_mrr_potential"`
	MRREmRisco            decimal.Decimal  `json:"mrr_at_risk"`
	MRRProspects          decimal.Decimal  `json:"mrr_prospects"`
	MRRMedio              decimal.Decimal  `json:"avg_mrr"`
	TotalVotos            int              `json:"vote_count"`
	ClientesAtuais        int              `json:"current_clients_count"`
	Prospects             int              `json:"prospects_count"`
	Percentual            float64          `json:"priority_percent"`
	Posicao               int              `json:"rank"`
	Destaque              bool             `json:"top"`
}

type TotaisPainel struct {
	TotalMRRPotencial decimal.Decimal `json:"total_mrr_potential"`
	MRREmRisco        decimal.Decimal `json:"mrr_at_risk"`
	MRRProspects      decimal.Decimal `json:"mrr_prospects"`
	TotalVotos        int             `json:"vote_count"`
	ClientesAtuais    int             `json:"current_clients_count"`
	Prospects         int             `json:"prospects_count"`
}

type Painel struct {
	Configurado bool         `json:"configured"`
	Prioridades []Prioridade `json:"priorities"`
	Totais      TotaisPainel `json:"totals"`
	Votos       []Voto       `json:"recent_votes"`
}

// Destaque devolve a integração no topo do ranking, se houver.
func (p Painel) Destaque() (Prioridade, bool) {
	if len(p.Prioridades) == 0 {
		return Prioridade{}, false
	}
	return p.Prioridades[0], true
}

// FormularioVoto é o payload bruto da submissão, ainda sem normalização.
type FormularioVoto struct {
	NomeRestaurante string `json:"restaurant_name"`
	MRRPotencial    string `json:"mrr_potential"`
	NomeIntegracao  string `json:"integration_name"`
	Comercial       string `json:"sales_person"`
	TipoCliente     string `json:"client_type"`
	LinkSalesforce  string `json:"salesforce_link"`
	Notas           string `json:"notes"`
}

// OrigemSubmissao identifica quem enviou o formulário, usada pelo antifraude.
type OrigemSubmissao struct {
	Comercial string
	IP        string
	UserAgent string
}

// FiltroTodos é o valor que os seletores da tela usam para "sem filtro".
const FiltroTodos = "all"

type FiltroHistorico struct {
	Busca       string `json:"search"`
	Integracao  string `json:"integration"`
	TipoCliente string `json:"client_type"`
}

type ResultadoHistorico struct {
	Configurado   bool     `json:"configured"`
	Votos         []Voto   `json:"votes"`
	Total         int      `json:"total"`
	Integracoes   []string `json:"integrations"`
	FiltrosAtivos bool     `json:"filters_active"`
	SemResultados bool     `json:"no_results"`
}
