package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "biteform"

var (
	// APIRequestsTotal API请求总数
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// APIRequestDuration API请求处理时长
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// EntitiesCreated 按实体类型统计创建次数（form/field/submission/response）
	EntitiesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_created_total",
			Help:      "Total number of created entities by type",
		},
		[]string{"entity"},
	)

	// EntitiesDeleted 按实体类型统计删除次数
	EntitiesDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_deleted_total",
			Help:      "Total number of deleted entities by type",
		},
		[]string{"entity"},
	)

	// DBTransactions 事务结果（commit/rollback）
	DBTransactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_transactions_total",
			Help:      "Total number of database transactions by result",
		},
		[]string{"result"},
	)
)

// ObserveTransaction 记录一次事务结果
func ObserveTransaction(err error) {
	if err != nil {
		DBTransactions.WithLabelValues("rollback").Inc()
		return
	}
	DBTransactions.WithLabelValues("commit").Inc()
}
