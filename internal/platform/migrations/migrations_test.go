package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRun_QuandoBancoVazio_DeveCriarTabelas(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Run(db))

	assert.True(t, db.Migrator().HasTable("votes"))
	assert.True(t, db.Migrator().HasTable("integrations"))
	assert.True(t, db.Migrator().HasColumn(&vote202507{}, "mrr"))
	assert.True(t, db.Migrator().HasIndex(&integration202507{}, "idx_integrations_name"))
}

func TestRun_QuandoExecutadaDuasVezes_DeveSerIdempotente(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Run(db))
	assert.NoError(t, Run(db))
}

func TestRun_QuandoDBNulo_DeveRetornarErro(t *testing.T) {
	assert.Error(t, Run(nil))
}
