package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
)

// IntegracaoRepository mapeia a relação integrations, cujo status é editado fora do serviço.
type IntegracaoRepository struct {
	db *gorm.DB
}

func NewIntegracaoRepository(db *gorm.DB) *IntegracaoRepository {
	return &IntegracaoRepository{db: db}
}

type integracaoModel struct {
	ID                  string     `gorm:"column:id;primaryKey"`
	Name                string     `gorm:"column:name"`
	Status              string     `gorm:"column:status"`
	Description         string     `gorm:"column:description"`
	DevelopmentStart    *time.Time `gorm:"column:development_start"`
	EstimatedCompletion *time.Time `gorm:"column:estimated_completion"`
	CreatedAt           time.Time  `gorm:"column:created_at"`
}

func (integracaoModel) TableName() string {
	return "integrations"
}

func (m integracaoModel) toDomain() domain.Integracao {
	status := domain.StatusIntegracao(m.Status)
	if status == "" {
		status = domain.StatusSolicitada
	}
	return domain.Integracao{
		ID:                    domain.IntegracaoID(m.ID),
		Nome:                  m.Name,
		Status:                status,
		Descricao:             m.Description,
		InicioDesenvolvimento: m.DevelopmentStart,
		PrevisaoConclusao:     m.EstimatedCompletion,
		CriadoEm:              m.CreatedAt,
	}
}

func fromDomainIntegracao(i domain.Integracao) integracaoModel {
	return integracaoModel{
		ID:                  string(i.ID),
		Name:                i.Nome,
		Status:              string(i.Status),
		Description:         i.Descricao,
		DevelopmentStart:    i.InicioDesenvolvimento,
		EstimatedCompletion: i.PrevisaoConclusao,
		CreatedAt:           i.CriadoEm,
	}
}

func (r *IntegracaoRepository) Listar(ctx context.Context) ([]domain.Integracao, error) {
	var models []integracaoModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("gorm integracoes: listar: %w", err)
	}

	integracoes := make([]domain.Integracao, len(models))
	for i, m := range models {
		integracoes[i] = m.toDomain()
	}
	return integracoes, nil
}

// GarantirExistencia depende do índice único em name; conflito não é erro.
func (r *IntegracaoRepository) GarantirExistencia(ctx context.Context, integracao domain.Integracao) error {
	model := fromDomainIntegracao(integracao)
	if model.Status == "" {
		model.Status = string(domain.StatusSolicitada)
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&model).Error; err != nil {
		return fmt.Errorf("gorm integracoes: garantir %q: %w", integracao.Nome, err)
	}
	return nil
}

var _ domain.IntegracaoRepository = (*IntegracaoRepository)(nil)
