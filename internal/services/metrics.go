package rewards

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// метрики

var (
	rewardAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rewards_reward_amount",
			Help:    "Награда за покупку, токены",
			Buckets: []float64{0, 0.5, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	verificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rewards_verifications_total",
			Help: "Кол-во проверок транзакций по результату",
		},
		[]string{"status"},
	)

	distributedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rewards_distributed_tokens_total",
			Help: "Начислено токенов",
		},
	)
)
