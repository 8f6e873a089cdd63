// Pacote web centraliza a camada de apresentação HTML (SSR): painel, formulário e histórico.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/marcelojr/integracoes-prioridade/internal/app/voting"
	"github.com/marcelojr/integracoes-prioridade/internal/domain"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/antifraude"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/logger"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Frontend renderiza os templates Go das telas de painel, nova demanda e histórico.
type Frontend struct {
	templates *template.Template
	service   domain.VotingService
}

// New carrega os templates embutidos e confere que todos os blocos existem.
func New(service domain.VotingService) (*Frontend, error) {
	if service == nil {
		return nil, fmt.Errorf("frontend: serviço de votação inexistente")
	}
	tmpl, err := template.ParseFS(templateFS,
		"templates/layout.gohtml",
		"templates/painel.gohtml",
		"templates/votar.gohtml",
		"templates/historico.gohtml",
	)
	if err != nil {
		return nil, err
	}

	for _, name := range []string{"painel_body", "votar_body", "historico_body", "layout"} {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("frontend: template %s não encontrado", name)
		}
	}

	return &Frontend{templates: tmpl, service: service}, nil
}

func (f *Frontend) Register(r chi.Router) {
	r.Get("/", f.handleRoot)
	r.Get("/painel", f.handlePainel)
	r.Get("/votar", f.handleVotar)
	r.Post("/votar", f.handleVotar)
	r.Get("/historico", f.handleHistorico)
	r.Post("/historico/{id}/remover", f.handleRemover)
}

func (f *Frontend) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/painel", http.StatusFound)
}

func (f *Frontend) handlePainel(w http.ResponseWriter, r *http.Request) {
	painel := f.service.Painel(r.Context())

	data := painelPageData{
		Configurado: painel.Configurado,
		Totais:      makeTotaisView(painel.Totais),
		Prioridades: makePrioridadesView(painel.Prioridades),
		Recentes:    makeVotosView(painel.Votos),
	}
	if r.URL.Query().Get("status") == "ok" {
		data.Message = "Demande ajoutée avec succès !"
	}

	f.render(w, http.StatusOK, "painel_body", data)
}

func (f *Frontend) handleVotar(w http.ResponseWriter, r *http.Request) {
	busca := strings.TrimSpace(r.URL.Query().Get("busca"))
	data := votarPageData{
		Configurado: f.service.Configurado(),
		Busca:       busca,
		Grupos:      f.service.Catalogo(busca),
		Erros:       map[string]string{},
	}

	if r.Method != http.MethodPost {
		f.render(w, http.StatusOK, "votar_body", data)
		return
	}

	if err := r.ParseForm(); err != nil {
		data.Error = "Impossible de lire le formulaire. Veuillez réessayer."
		f.render(w, http.StatusBadRequest, "votar_body", data)
		return
	}

	form := domain.FormularioVoto{
		NomeRestaurante: r.PostFormValue("restaurant_name"),
		MRRPotencial:    r.PostFormValue("mrr_potential"),
		NomeIntegracao:  r.PostFormValue("integration_name"),
		Comercial:       r.PostFormValue("sales_person"),
		TipoCliente:     r.PostFormValue("client_type"),
		LinkSalesforce:  r.PostFormValue("salesforce_link"),
		Notas:           r.PostFormValue("notes"),
	}
	// Seletor de integração mostra o catálogo inteiro depois de um envio.
	data.Grupos = f.service.Catalogo("")
	data.Busca = ""

	if _, err := f.service.SubmeterVoto(r.Context(), form, antifraude.OrigemDe(r, form.Comercial)); err != nil {
		logger.DoContexto(r.Context()).Warn("falha ao submeter voto pelo formulario", "err", err)
		data.Form = form
		data.Error = traduzirErro(err)
		var ev *voting.ErroValidacao
		if errors.As(err, &ev) {
			data.Erros = ev.Campos
		}
		f.render(w, statusPagina(err), "votar_body", data)
		return
	}

	http.Redirect(w, r, "/painel?status=ok", http.StatusSeeOther)
}

func (f *Frontend) handleHistorico(w http.ResponseWriter, r *http.Request) {
	data := f.historicoData(r)
	switch r.URL.Query().Get("status") {
	case "removido":
		data.Message = "Demande supprimée."
	}

	status := http.StatusOK
	if data.ErroLeitura != "" {
		status = http.StatusServiceUnavailable
	}
	f.render(w, status, "historico_body", data)
}

// handleRemover só altera a lista exibida depois do sucesso no store: redireciona e a próxima leitura já vem sem o voto.
func (f *Frontend) handleRemover(w http.ResponseWriter, r *http.Request) {
	id := domain.VotoID(strings.TrimSpace(chi.URLParam(r, "id")))

	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulario invalido", http.StatusBadRequest)
		return
	}
	confirmado, _ := strconv.ParseBool(r.PostFormValue("confirmado"))
	retorno := filtrosQuery(r.PostFormValue("retorno"))

	if err := f.service.RemoverVoto(r.Context(), id, confirmado); err != nil {
		logger.DoContexto(r.Context()).Warn("falha ao remover voto pelo historico", "err", err, "voto_id", id)

		// Re-renderiza com os mesmos filtros; a lista continua igual.
		req := r.Clone(r.Context())
		req.URL.RawQuery = retorno.Encode()
		data := f.historicoData(req)
		data.Error = traduzirErro(err)
		f.render(w, statusPagina(err), "historico_body", data)
		return
	}

	retorno.Set("status", "removido")
	http.Redirect(w, r, "/historico?"+retorno.Encode(), http.StatusSeeOther)
}

func (f *Frontend) historicoData(r *http.Request) historicoPageData {
	q := r.URL.Query()
	filtro := domain.FiltroHistorico{
		Busca:       strings.TrimSpace(q.Get("busca")),
		Integracao:  strings.TrimSpace(q.Get("integracao")),
		TipoCliente: strings.TrimSpace(q.Get("tipo_cliente")),
	}

	data := historicoPageData{
		Configurado: f.service.Configurado(),
		Filtro:      filtro,
		Retorno:     filtroValues(filtro).Encode(),
		URLAtual:    r.URL.RequestURI(),
	}

	res, err := f.service.Historico(r.Context(), filtro)
	if err != nil {
		data.ErroLeitura = "Impossible de charger l'historique des demandes."
		return data
	}

	data.Configurado = res.Configurado
	data.Votos = makeVotosView(res.Votos)
	data.Total = res.Total
	data.Integracoes = res.Integracoes
	data.FiltrosAtivos = res.FiltrosAtivos
	data.SemResultados = res.SemResultados
	return data
}

func filtroValues(f domain.FiltroHistorico) url.Values {
	v := url.Values{}
	if f.Busca != "" {
		v.Set("busca", f.Busca)
	}
	if f.Integracao != "" && f.Integracao != domain.FiltroTodos {
		v.Set("integracao", f.Integracao)
	}
	if f.TipoCliente != "" && f.TipoCliente != domain.FiltroTodos {
		v.Set("tipo_cliente", f.TipoCliente)
	}
	return v
}

// filtrosQuery aceita de volta só os três parâmetros de filtro.
func filtrosQuery(raw string) url.Values {
	q, _ := url.ParseQuery(raw)
	return filtroValues(domain.FiltroHistorico{
		Busca:       strings.TrimSpace(q.Get("busca")),
		Integracao:  strings.TrimSpace(q.Get("integracao")),
		TipoCliente: strings.TrimSpace(q.Get("tipo_cliente")),
	})
}

func (f *Frontend) render(w http.ResponseWriter, status int, tmpl string, data any) {
	var content strings.Builder
	if err := f.templates.ExecuteTemplate(&content, tmpl, data); err != nil {
		logger.Error("erro ao montar a pagina", "template", tmpl, "err", err)
		http.Error(w, "erro ao montar a página", http.StatusInternalServerError)
		return
	}

	page := struct {
		Title   string
		Ativa   string
		Content template.HTML
	}{
		Title:   pageTitle(tmpl),
		Ativa:   tmpl,
		Content: template.HTML(content.String()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := f.templates.ExecuteTemplate(w, "layout", page); err != nil {
		logger.Error("erro ao renderizar layout", "template", tmpl, "err", err)
	}
}

func pageTitle(body string) string {
	switch body {
	case "painel_body":
		return "Priorités d'intégration"
	case "votar_body":
		return "Nouvelle demande"
	case "historico_body":
		return "Historique des demandes"
	default:
		return "Intégrations"
	}
}

func traduzirErro(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, voting.ErrVotoInvalido):
		return "Veuillez corriger les champs signalés."
	case errors.Is(err, voting.ErrIntegracaoDesconhecida):
		return "Veuillez sélectionner une intégration de la liste."
	case errors.Is(err, domain.ErrNaoConfigurado):
		return "La base de données n'est pas configurée. Veuillez configurer vos variables d'environnement."
	case errors.Is(err, antifraude.ErrLimiteExcedido):
		return "Trop de demandes envoyées. Patientez un instant avant de réessayer."
	case errors.Is(err, voting.ErrConfirmacaoNecessaria):
		return "Cochez la case de confirmation pour supprimer la demande."
	case errors.Is(err, domain.ErrNotFound):
		return "Cette demande n'existe plus."
	case errors.Is(err, voting.ErrVotoIDInvalido):
		return "Identifiant de demande invalide."
	case errors.Is(err, domain.ErrStoreIndisponivel):
		return "La base de données ne répond pas. Réessayez dans quelques instants."
	default:
		return "Erreur lors de l'enregistrement : " + err.Error()
	}
}

func statusPagina(err error) int {
	switch {
	case errors.Is(err, voting.ErrVotoInvalido),
		errors.Is(err, voting.ErrIntegracaoDesconhecida),
		errors.Is(err, voting.ErrVotoIDInvalido):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNaoConfigurado):
		return http.StatusConflict
	case errors.Is(err, antifraude.ErrLimiteExcedido):
		return http.StatusTooManyRequests
	case errors.Is(err, voting.ErrConfirmacaoNecessaria):
		return http.StatusPreconditionRequired
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStoreIndisponivel):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
