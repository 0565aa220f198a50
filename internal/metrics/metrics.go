// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ハンドラー層とサービス層から利用する。
type MetricsCollector interface {
	RecordScan(skinType string)
	RecordScanLatency(duration time.Duration)
	RecordSignup()
	RecordLoginFailure()
	RecordContactMessage()
	RecordHTTPStatus(statusCode int)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	scans           *prometheus.CounterVec
	scanLatency     prometheus.Histogram
	signups         prometheus.Counter
	loginFailures   prometheus.Counter
	contactMessages prometheus.Counter
	httpStatus      *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "glowscan_scans_total",
			Help: "肌タイプ別のスキャン解析完了数",
		}, []string{"skin_type"}),
		scanLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "glowscan_scan_latency_seconds",
			Help:    "スキャン解析のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		signups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "glowscan_signups_total",
			Help: "サインアップ成功の合計数",
		}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "glowscan_login_failures_total",
			Help: "ログイン失敗の合計数",
		}),
		contactMessages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "glowscan_contact_messages_total",
			Help: "受け付けたお問い合わせメッセージの合計数",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "glowscan_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.scans,
		c.scanLatency,
		c.signups,
		c.loginFailures,
		c.contactMessages,
		c.httpStatus,
	)

	return c
}

// RecordScan はスキャン解析の完了を記録する。
func (c *Collector) RecordScan(skinType string) {
	c.scans.WithLabelValues(skinType).Inc()
}

// RecordScanLatency はスキャン解析のレイテンシを記録する。
func (c *Collector) RecordScanLatency(duration time.Duration) {
	c.scanLatency.Observe(duration.Seconds())
}

// RecordSignup はサインアップ成功を記録する。
func (c *Collector) RecordSignup() {
	c.signups.Inc()
}

// RecordLoginFailure はログイン失敗を記録する。
func (c *Collector) RecordLoginFailure() {
	c.loginFailures.Inc()
}

// RecordContactMessage はお問い合わせメッセージの受け付けを記録する。
func (c *Collector) RecordContactMessage() {
	c.contactMessages.Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// compile-time interface check
var _ MetricsCollector = (*Collector)(nil)

// NopCollector は何も記録しないMetricsCollector。テスト用。
type NopCollector struct{}

// RecordScan は何もしない。
func (NopCollector) RecordScan(string) {}

// RecordScanLatency は何もしない。
func (NopCollector) RecordScanLatency(time.Duration) {}

// RecordSignup は何もしない。
func (NopCollector) RecordSignup() {}

// RecordLoginFailure は何もしない。
func (NopCollector) RecordLoginFailure() {}

// RecordContactMessage は何もしない。
func (NopCollector) RecordContactMessage() {}

// RecordHTTPStatus は何もしない。
func (NopCollector) RecordHTTPStatus(int) {}

// compile-time interface check
var _ MetricsCollector = NopCollector{}
