package web

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
)

var impressora = message.NewPrinter(language.French)

type painelPageData struct {
	Configurado bool
	Message     string
	Totais      totaisView
	Prioridades []prioridadeView
	Recentes    []votoView
}

type totaisView struct {
	TotalMRR       string
	MRREmRisco     string
	MRRProspects   string
	TotalVotos     int
	ClientesAtuais int
	Prospects      int
}

type prioridadeView struct {
	Posicao        int
	Nome           string
	Descricao      string
	Status         string
	StatusClasse   string
	Destaque       bool
	TotalMRR       string
	MRREmRisco     string
	MRRProspects   string
	MRRMedio       string
	TotalVotos     int
	ClientesAtuais int
	Prospects      int
	Percentual     string
	Largura        string
	Inicio         string
	Previsao       string
}

type votoView struct {
	ID             string
	Restaurante    string
	Integracao     string
	Comercial      string
	TipoCliente    string
	Prospect       bool
	MRR            string
	LinkSalesforce string
	Notas          string
	CriadoEm       string
}

type votarPageData struct {
	Configurado bool
	Busca       string
	Grupos      []domain.GrupoCatalogo
	Form        domain.FormularioVoto
	Erros       map[string]string
	Error       string
}

type historicoPageData struct {
	Configurado   bool
	Filtro        domain.FiltroHistorico
	Integracoes   []string
	Votos         []votoView
	Total         int
	FiltrosAtivos bool
	SemResultados bool
	Retorno       string
	URLAtual      string
	ErroLeitura   string
	Error         string
	Message       string
}

func makeTotaisView(t domain.TotaisPainel) totaisView {
	return totaisView{
		TotalMRR:       formatarEuros(t.TotalMRRPotencial),
		MRREmRisco:     formatarEuros(t.MRREmRisco),
		MRRProspects:   formatarEuros(t.MRRProspects),
		TotalVotos:     t.TotalVotos,
		ClientesAtuais: t.ClientesAtuais,
		Prospects:      t.Prospects,
	}
}

func makePrioridadesView(prioridades []domain.Prioridade) []prioridadeView {
	views := make([]prioridadeView, 0, len(prioridades))
	for _, p := range prioridades {
		views = append(views, prioridadeView{
			Posicao:        p.Posicao,
			Nome:           p.Nome,
			Descricao:      p.Descricao,
			Status:         rotuloStatus(p.Status),
			StatusClasse:   string(p.Status),
			Destaque:       p.Destaque,
			TotalMRR:       formatarEuros(p.TotalMRRPotencial),
			MRREmRisco:     formatarEuros(p.MRREmRisco),
			MRRProspects:   formatarEuros(p.MRRProspects),
			MRRMedio:       formatarEuros(p.MRRMedio),
			TotalVotos:     p.TotalVotos,
			ClientesAtuais: p.ClientesAtuais,
			Prospects:      p.Prospects,
			Percentual:     formatarPercentual(p.Percentual),
			Largura:        strconv.Itoa(int(p.Percentual+0.5)) + "%",
			Inicio:         formatarData(p.InicioDesenvolvimento),
			Previsao:       formatarData(p.PrevisaoConclusao),
		})
	}
	return views
}

func makeVotosView(votos []domain.Voto) []votoView {
	views := make([]votoView, 0, len(votos))
	for _, v := range votos {
		view := votoView{
			ID:          string(v.ID),
			Restaurante: v.NomeRestaurante,
			Integracao:  v.NomeIntegracao,
			Comercial:   v.Comercial,
			TipoCliente: rotuloTipoCliente(v.TipoCliente),
			Prospect:    v.TipoCliente == domain.TipoClienteProspect,
			MRR:         formatarEuros(v.MRRPotencial),
			CriadoEm:    v.CriadoEm.Format("02/01/2006 15:04"),
		}
		if v.LinkSalesforce != nil {
			view.LinkSalesforce = *v.LinkSalesforce
		}
		if v.Notas != nil {
			view.Notas = *v.Notas
		}
		views = append(views, view)
	}
	return views
}

func rotuloStatus(s domain.StatusIntegracao) string {
	switch s {
	case domain.StatusEmDesenvolvimento:
		return "En développement"
	case domain.StatusConcluida:
		return "Terminé"
	default:
		return "Demandé"
	}
}

func rotuloTipoCliente(t domain.TipoCliente) string {
	if t == domain.TipoClienteProspect {
		return "Prospect"
	}
	return "Client actuel"
}

// formatarEuros segue a convenção francesa: vírgula decimal e espaço como separador de milhar.
func formatarEuros(d decimal.Decimal) string {
	return impressora.Sprint(number.Decimal(d.InexactFloat64(), number.MinFractionDigits(0), number.MaxFractionDigits(2))) + " €"
}

func formatarPercentual(p float64) string {
	return impressora.Sprint(number.Decimal(p, number.MaxFractionDigits(1))) + " %"
}

func formatarData(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
