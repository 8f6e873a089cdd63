package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissoesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "integracoes_submissoes_total",
		Help: "Total de submissoes de votos por resultado",
	}, []string{"status"})

	remocoesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "integracoes_remocoes_total",
		Help: "Total de remocoes de votos por resultado",
	}, []string{"status"})

	falhasLeituraTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "integracoes_falhas_leitura_total",
		Help: "Leituras do store que falharam e foram substituidas por lista vazia",
	}, []string{"relacao"})

	painelDuracao = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "integracoes_painel_duracao_seconds",
		Help:    "Tempo para buscar votos e recalcular o ranking do painel",
		Buckets: prometheus.DefBuckets,
	})
)

func ObserveSubmissao(status string) {
	submissoesTotal.WithLabelValues(status).Inc()
}

func ObserveRemocao(status string) {
	remocoesTotal.WithLabelValues(status).Inc()
}

func IncFalhaLeitura(relacao string) {
	falhasLeituraTotal.WithLabelValues(relacao).Inc()
}

func ObserveDuracaoPainel(seconds float64) {
	painelDuracao.Observe(seconds)
}
