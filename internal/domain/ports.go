package domain

import (
	"context"
	"time"
)

// VotoRepository é a porta para a relação de votos: leitura completa, inserção e remoção por id.
type VotoRepository interface {
	Listar(ctx context.Context) ([]Voto, error)
	Registrar(ctx context.Context, voto Voto) error
	Remover(ctx context.Context, id VotoID) error
}

type IntegracaoRepository interface {
	Listar(ctx context.Context) ([]Integracao, error)
	// GarantirExistencia insere a integração se o nome ainda não existir; duplicadas são ignoradas.
	GarantirExistencia(ctx context.Context, integracao Integracao) error
}

type Antifraude interface {
	Validar(ctx context.Context, origem OrigemSubmissao) error
}

type Clock interface {
	Agora() time.Time
}

type VotingService interface {
	SubmeterVoto(ctx context.Context, form FormularioVoto, origem OrigemSubmissao) (Voto, error)
	RemoverVoto(ctx context.Context, id VotoID, confirmado bool) error
	Painel(ctx context.Context) Painel
	Historico(ctx context.Context, filtro FiltroHistorico) (ResultadoHistorico, error)
	Catalogo(busca string) []GrupoCatalogo
	Configurado() bool
}
