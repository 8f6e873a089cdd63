// Pacote antifraude limita submissões repetidas por comercial e IP (Redis) ou não faz nada (noop).
package antifraude

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/logger"
	"github.com/marcelojr/integracoes-prioridade/internal/platform/metrics"
)

var ErrLimiteExcedido = errors.New("limite de submissoes atingido")

// janelaFixa incrementa e garante o TTL no mesmo passo; chave sem expiração nunca sobra no Redis.
var janelaFixa = redis.NewScript(`
local total = redis.call('INCR', KEYS[1])
if redis.call('PTTL', KEYS[1]) < 0 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return total
`)

// LimitadorRedis aceita até limite submissões por (comercial, IP) a cada janela.
// Redis fora do ar não bloqueia o envio: o limite é opcional e a falha só vai para log e métrica.
type LimitadorRedis struct {
	client  *redis.Client
	limite  int64
	janela  time.Duration
	prefixo string
}

func NewLimitadorRedis(client *redis.Client, limite int, janela time.Duration, prefixo string) *LimitadorRedis {
	if prefixo == "" {
		prefixo = "ratelimit:votos"
	}
	return &LimitadorRedis{client: client, limite: int64(limite), janela: janela, prefixo: prefixo}
}

func (l *LimitadorRedis) Validar(ctx context.Context, origem domain.OrigemSubmissao) error {
	if l.client == nil || l.limite <= 0 || l.janela <= 0 {
		return nil
	}

	total, err := janelaFixa.Run(ctx, l.client, []string{l.chave(origem)}, janelaMs(l.janela)).Int64()
	if err != nil {
		metrics.IncFalhaLeitura("ratelimit")
		logger.DoContexto(ctx).Warn("rate limit indisponivel, submissao liberada", "err", err)
		return nil
	}

	if total > l.limite {
		return ErrLimiteExcedido
	}
	return nil
}

func janelaMs(d time.Duration) int64 {
	if ms := d.Milliseconds(); ms > 0 {
		return ms
	}
	return 1
}

// Nome e IP ficam fora do Redis em texto claro.
func (l *LimitadorRedis) chave(origem domain.OrigemSubmissao) string {
	hash := sha1.Sum([]byte(domain.ChaveNormalizada(origem.Comercial) + "|" + origem.IP))
	return l.prefixo + ":" + hex.EncodeToString(hash[:])
}

var _ domain.Antifraude = (*LimitadorRedis)(nil)
