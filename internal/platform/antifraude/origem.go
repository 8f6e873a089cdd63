package antifraude

import (
	"net"
	"net/http"
	"strings"

	"github.com/marcelojr/integracoes-prioridade/internal/domain"
)

// OrigemDe monta a origem da submissão; atrás de proxy vale o primeiro X-Forwarded-For.
func OrigemDe(r *http.Request, comercial string) domain.OrigemSubmissao {
	return domain.OrigemSubmissao{
		Comercial: comercial,
		IP:        ipCliente(r),
		UserAgent: r.UserAgent(),
	}
}

func ipCliente(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		primeiro, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(primeiro); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
