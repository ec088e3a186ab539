package middlewares

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pantry_http_requests_total",
	Help: "HTTP requests by method, route and status code.",
}, []string{"method", "route", "status"})

// RequestMetrics counts requests per route. The route template is used
// rather than the raw path so /api/orders/42 and /api/orders/43 share a
// label.
func RequestMetrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(
			ctx.Request.Method,
			route,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()
	}
}
