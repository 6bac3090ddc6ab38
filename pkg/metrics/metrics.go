// Package metrics 提供 Prometheus helper，包含常用 counter/gauge/histogram 模板
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wyfcoding/exoticpricing/pkg/logger"
)

// Metrics 指标集合
type Metrics struct {
	// HTTP 请求计数
	HTTPRequestsTotal prometheus.Counter
	// HTTP 请求耗时
	HTTPRequestDuration prometheus.Histogram

	// 数据库查询计数
	DBQueriesTotal prometheus.Counter
	// 数据库查询耗时
	DBQueryDuration prometheus.Histogram

	// 业务指标
	ValuationsTotal prometheus.Counter
	// 单次估值耗时（模拟 + 两次估值）
	ValuationDuration prometheus.Histogram
	// 已模拟路径总数
	SimulatedPathsTotal prometheus.Counter
	// 估值失败计数
	ValuationErrorsTotal prometheus.Counter
}

// New 创建指标实例
func New(serviceName string) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pricing",
			Subsystem: serviceName,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}),
		HTTPRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pricing",
			Subsystem: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		DBQueriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pricing",
			Subsystem: serviceName,
			Name:      "db_queries_total",
			Help:      "Total database queries",
		}),
		DBQueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pricing",
			Subsystem: serviceName,
			Name:      "db_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		ValuationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pricing",
			Subsystem: serviceName,
			Name:      "valuations_total",
			Help:      "Total exotic option valuations completed",
		}),
		ValuationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pricing",
			Subsystem: serviceName,
			Name:      "valuation_duration_seconds",
			Help:      "Valuation duration (path simulation plus payoff reduction) in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		}),
		SimulatedPathsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pricing",
			Subsystem: serviceName,
			Name:      "simulated_paths_total",
			Help:      "Total Monte Carlo paths simulated",
		}),
		ValuationErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pricing",
			Subsystem: serviceName,
			Name:      "valuation_errors_total",
			Help:      "Total failed valuation requests",
		}),
	}
}

// Register 注册所有指标
func (m *Metrics) Register() error {
	metrics := []prometheus.Collector{
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.ValuationsTotal,
		m.ValuationDuration,
		m.SimulatedPathsTotal,
		m.ValuationErrorsTotal,
	}

	for _, metric := range metrics {
		if err := prometheus.DefaultRegisterer.Register(metric); err != nil {
			logger.Error(context.Background(), "Failed to register metric", "error", err)
			return err
		}
	}

	logger.Info(context.Background(), "Metrics registered successfully")
	return nil
}

// StartHTTPServer 启动 Prometheus HTTP 服务器
func StartHTTPServer(port int, path string) error {
	if path == "" {
		path = "/metrics"
	}

	http.Handle(path, promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	logger.Info(context.Background(), "Starting Prometheus HTTP server", "addr", addr, "path", path)

	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Error(context.Background(), "Failed to start Prometheus HTTP server", "error", err)
		}
	}()

	return nil
}
