package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
)

// VotoRepository lê e grava a relação votes.
type VotoRepository struct {
	db *gorm.DB
}

func NewVotoRepository(db *gorm.DB) *VotoRepository {
	return &VotoRepository{db: db}
}

type votoModel struct {
	ID              string          `gorm:"column:id;primaryKey"`
	RestaurantName  string          `gorm:"column:restaurant_name"`
	MRR             decimal.Decimal `gorm:"column:mrr"`
	MRRPotential    decimal.Decimal `gorm:"column:mrr_potential"`
	IntegrationName string          `gorm:"column:integration_name"`
	SalesPerson     string          `gorm:"column:sales_person"`
	ClientType      string          `gorm:"column:client_type"`
	SalesforceLink  *string         `gorm:"column:salesforce_link"`
	Notes           *string         `gorm:"column:notes"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
}

func (votoModel) TableName() string {
	return "votes"
}

func (m votoModel) toDomain() domain.Voto {
	return domain.Voto{
		ID:              domain.VotoID(m.ID),
		NomeRestaurante: m.RestaurantName,
		MRRPotencial:    m.MRRPotential,
		NomeIntegracao:  m.IntegrationName,
		Comercial:       m.SalesPerson,
		TipoCliente:     domain.TipoCliente(m.ClientType),
		LinkSalesforce:  m.SalesforceLink,
		Notas:           m.Notes,
		CriadoEm:        m.CreatedAt,
	}
}

// A coluna legada mrr recebe sempre o mesmo valor de mrr_potential.
func fromDomainVoto(v domain.Voto) votoModel {
	return votoModel{
		ID:              string(v.ID),
		RestaurantName:  v.NomeRestaurante,
		MRR:             v.MRRPotencial,
		MRRPotential:    v.MRRPotencial,
		IntegrationName: v.NomeIntegracao,
		SalesPerson:     v.Comercial,
		ClientType:      string(v.TipoCliente),
		SalesforceLink:  v.LinkSalesforce,
		Notes:           v.Notas,
		CreatedAt:       v.CriadoEm,
	}
}

// Listar devolve todos os votos, mais recentes primeiro.
func (r *VotoRepository) Listar(ctx context.Context) ([]domain.Voto, error) {
	var models []votoModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("gorm votos: listar: %w", err)
	}

	votos := make([]domain.Voto, len(models))
	for i, m := range models {
		votos[i] = m.toDomain()
	}
	return votos, nil
}

func (r *VotoRepository) Registrar(ctx context.Context, voto domain.Voto) error {
	model := fromDomainVoto(voto)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("gorm votos: inserir: %w", err)
	}
	return nil
}

func (r *VotoRepository) Remover(ctx context.Context, id domain.VotoID) error {
	res := r.db.WithContext(ctx).Where("id = ?", string(id)).Delete(&votoModel{})
	if res.Error != nil {
		return fmt.Errorf("gorm votos: remover: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("gorm votos: remover %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

var _ domain.VotoRepository = (*VotoRepository)(nil)
