package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_QuandoAmbienteVazio_DeveAplicarDefaults(t *testing.T) {
	t.Setenv("INTEGRACOES_STORE_URL", "")
	t.Setenv("INTEGRACOES_STORE_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddress)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 20, cfg.RateLimitMax)
	assert.Equal(t, 60*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.Configurado())
}

func TestLoad_QuandoVariaveisDefinidas_DeveSobrescrever(t *testing.T) {
	t.Setenv("INTEGRACOES_STORE_URL", "postgres://app@db.interno:5432/integracoes")
	t.Setenv("INTEGRACOES_STORE_KEY", "segredo")
	t.Setenv("RATE_LIMIT_WINDOW", "2m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test,https://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Configurado())
	assert.Equal(t, 2*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSAllowedOrigins)
}

func TestLoad_QuandoValorInvalido_DeveRetornarErro(t *testing.T) {
	t.Setenv("REDIS_DB", "abc")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfigurado(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{name: "url e chave presentes", cfg: Config{StoreURL: "postgres://db:5432/app", StoreKey: "k"}, want: true},
		{name: "sem url", cfg: Config{StoreKey: "k"}, want: false},
		{name: "sem chave", cfg: Config{StoreURL: "postgres://db:5432/app"}, want: false},
		{name: "url placeholder", cfg: Config{StoreURL: "postgres://your-project.example.com/app", StoreKey: "k"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Configurado())
		})
	}
}

func TestStoreDSN_DeveInjetarChaveComoSenha(t *testing.T) {
	cfg := Config{StoreURL: "postgres://app@db:5432/integracoes?sslmode=disable", StoreKey: "s3cr3t"}

	dsn, err := cfg.StoreDSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://app:s3cr3t@db:5432/integracoes?sslmode=disable", dsn)

	semUsuario := Config{StoreURL: "postgresql://db/integracoes", StoreKey: "k"}
	dsn, err = semUsuario.StoreDSN()
	require.NoError(t, err)
	assert.Equal(t, "postgresql://postgres:k@db/integracoes", dsn)
}

func TestStoreDSN_QuandoEsquemaNaoSuportado_DeveRetornarErro(t *testing.T) {
	cfg := Config{StoreURL: "https://projeto.supabase.co", StoreKey: "k"}

	_, err := cfg.StoreDSN()
	assert.Error(t, err)
}

func TestRateLimitAtivo(t *testing.T) {
	cfg := Config{RateLimitEnabled: true, RedisAddr: "localhost:6379", RateLimitMax: 5, RateLimitWindow: time.Minute}
	assert.True(t, cfg.RateLimitAtivo())

	cfg.RedisAddr = ""
	assert.False(t, cfg.RateLimitAtivo())
}

func TestCarregarArquivosEnv_QuandoArquivoExiste_NaoDeveSobrescreverAmbiente(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, ".env.local")
	padrao := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(local, []byte("CFG_TESTE_A=local\n"), 0o600))
	require.NoError(t, os.WriteFile(padrao, []byte("CFG_TESTE_A=padrao\nCFG_TESTE_B=padrao\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("CFG_TESTE_A")
		os.Unsetenv("CFG_TESTE_B")
	})

	err := carregarArquivosEnv(local, padrao, filepath.Join(dir, "inexistente.env"))
	require.NoError(t, err)

	assert.Equal(t, "local", os.Getenv("CFG_TESTE_A"))
	assert.Equal(t, "padrao", os.Getenv("CFG_TESTE_B"))
}
