// Pacote migrations centraliza as versões gormigrate aplicadas na inicialização.
package migrations

import (
	"fmt"
	"time"

	gormigrate "github.com/go-gormigrate/gormigrate/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Os structs abaixo congelam o schema de cada versão; não devem acompanhar mudanças do domínio.

type integration202507 struct {
	ID                  string     `gorm:"column:id;type:char(26);primaryKey"`
	Name                string     `gorm:"column:name;type:text;not null;uniqueIndex:idx_integrations_name"`
	Status              string     `gorm:"column:status;type:text;not null;default:requested"`
	Description         string     `gorm:"column:description;type:text"`
	DevelopmentStart    *time.Time `gorm:"column:development_start"`
	EstimatedCompletion *time.Time `gorm:"column:estimated_completion"`
	CreatedAt           time.Time  `gorm:"column:created_at;not null"`
}

func (integration202507) TableName() string { return "integrations" }

type vote202507 struct {
	ID              string          `gorm:"column:id;type:char(26);primaryKey"`
	RestaurantName  string          `gorm:"column:restaurant_name;type:text;not null"`
	MRR             decimal.Decimal `gorm:"column:mrr;type:numeric(12,2);not null"`
	MRRPotential    decimal.Decimal `gorm:"column:mrr_potential;type:numeric(12,2);not null"`
	IntegrationName string          `gorm:"column:integration_name;type:text;not null;index:idx_votes_integration_name"`
	SalesPerson     string          `gorm:"column:sales_person;type:text;not null"`
	ClientType      string          `gorm:"column:client_type;type:text;not null;default:current_client"`
	SalesforceLink  *string         `gorm:"column:salesforce_link;type:text"`
	Notes           *string         `gorm:"column:notes;type:text"`
	CreatedAt       time.Time       `gorm:"column:created_at;not null;index:idx_votes_created_at"`
}

func (vote202507) TableName() string { return "votes" }

func Run(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("migrations: db nulo")
	}

	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "202507010001_integrations_votes",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&integration202507{}, &vote202507{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("votes", "integrations")
			},
		},
	})

	if err := m.Migrate(); err != nil {
		return fmt.Errorf("migrations: falha ao aplicar: %w", err)
	}

	return nil
}
