// Pacote httpapi expõe a API JSON e traduz requisições HTTP para o serviço de votação.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/marcelojr/integracoes-prioridade/internal/app/voting"
	"github.com/marcelojr/integracoes-prioridade/internal/domain"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/antifraude"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/logger"
)

const limiteCorpo = 64 << 10

// API empacota handlers HTTP ligados ao serviço de votação e ao logger.
type API struct {
	service domain.VotingService
	logger  *slog.Logger
	origens []string
}

func New(service domain.VotingService, logger *slog.Logger, origensCORS []string) *API {
	if len(origensCORS) == 0 {
		origensCORS = []string{"*"}
	}
	return &API{service: service, logger: logger, origens: origensCORS}
}

// Register monta as rotas em /api com CORS próprio; páginas HTML não passam por ele.
func (a *API) Register(r chi.Router) {
	c := cors.New(cors.Options{
		AllowedOrigins: a.origens,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(c.Handler)
		r.Get("/catalogo", a.listarCatalogo)
		r.Get("/painel", a.obterPainel)
		r.Get("/votos", a.listarVotos)
		r.Post("/votos", a.submeterVoto)
		r.Delete("/votos/{id}", a.removerVoto)
	})
}

func (a *API) listarCatalogo(w http.ResponseWriter, r *http.Request) {
	responderJSON(w, http.StatusOK, a.service.Catalogo(strings.TrimSpace(r.URL.Query().Get("busca"))))
}

func (a *API) obterPainel(w http.ResponseWriter, r *http.Request) {
	responderJSON(w, http.StatusOK, a.service.Painel(r.Context()))
}

func (a *API) listarVotos(w http.ResponseWriter, r *http.Request) {
	resultado, err := a.service.Historico(r.Context(), FiltroDaQuery(r))
	if err != nil {
		a.log(r).Error("erro ao listar votos", "err", err)
		responderErro(w, err)
		return
	}

	responderJSON(w, http.StatusOK, resultado)
}

func (a *API) submeterVoto(w http.ResponseWriter, r *http.Request) {
	var form domain.FormularioVoto
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limiteCorpo)).Decode(&form); err != nil {
		a.log(r).Warn("payload invalido ao submeter voto", "err", err)
		responderJSON(w, http.StatusBadRequest, respostaErro{Erro: "payload invalido", Codigo: "payload_invalido"})
		return
	}

	voto, err := a.service.SubmeterVoto(r.Context(), form, antifraude.OrigemDe(r, form.Comercial))
	if err != nil {
		a.log(r).Warn("falha ao submeter voto", "err", err, "integracao", form.NomeIntegracao)
		responderErro(w, err)
		return
	}

	responderJSON(w, http.StatusCreated, voto)
}

func (a *API) removerVoto(w http.ResponseWriter, r *http.Request) {
	id := domain.VotoID(strings.TrimSpace(chi.URLParam(r, "id")))
	confirmado, _ := strconv.ParseBool(r.URL.Query().Get("confirmado"))

	if err := a.service.RemoverVoto(r.Context(), id, confirmado); err != nil {
		a.log(r).Warn("falha ao remover voto", "err", err, "voto_id", id)
		responderErro(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) log(r *http.Request) *slog.Logger {
	if id := logger.RequestID(r.Context()); id != "" {
		return a.logger.With("request_id", id)
	}
	return a.logger
}

// FiltroDaQuery lê busca, integracao e tipo_cliente; as páginas usam os mesmos nomes.
func FiltroDaQuery(r *http.Request) domain.FiltroHistorico {
	q := r.URL.Query()
	return domain.FiltroHistorico{
		Busca:       strings.TrimSpace(q.Get("busca")),
		Integracao:  strings.TrimSpace(q.Get("integracao")),
		TipoCliente: strings.TrimSpace(q.Get("tipo_cliente")),
	}
}

type respostaErro struct {
	Erro   string            `json:"erro"`
	Codigo string            `json:"codigo"`
	Campos map[string]string `json:"campos,omitempty"`
}

func responderJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func responderErro(w http.ResponseWriter, err error) {
	status, codigo := StatusDoErro(err)

	resp := respostaErro{Erro: err.Error(), Codigo: codigo}
	var ev *voting.ErroValidacao
	if errors.As(err, &ev) {
		resp.Campos = ev.Campos
	}

	responderJSON(w, status, resp)
}

// StatusDoErro traduz os erros do serviço para status HTTP e um código estável para o cliente.
func StatusDoErro(err error) (int, string) {
	switch {
	case errors.Is(err, voting.ErrVotoInvalido):
		return http.StatusBadRequest, "voto_invalido"
	case errors.Is(err, voting.ErrIntegracaoDesconhecida):
		return http.StatusBadRequest, "integracao_desconhecida"
	case errors.Is(err, voting.ErrVotoIDInvalido):
		return http.StatusBadRequest, "id_invalido"
	case errors.Is(err, domain.ErrNaoConfigurado):
		return http.StatusConflict, "nao_configurado"
	case errors.Is(err, antifraude.ErrLimiteExcedido):
		return http.StatusTooManyRequests, "limite_excedido"
	case errors.Is(err, voting.ErrConfirmacaoNecessaria):
		return http.StatusPreconditionRequired, "confirmacao_necessaria"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "nao_encontrado"
	case errors.Is(err, voting.ErrHistoricoIndisponivel):
		return http.StatusServiceUnavailable, "historico_indisponivel"
	case errors.Is(err, domain.ErrStoreIndisponivel):
		return http.StatusServiceUnavailable, "store_indisponivel"
	default:
		return http.StatusInternalServerError, "erro_store"
	}
}
