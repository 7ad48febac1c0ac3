package rpc

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Metrics counts SenderResolver calls.
type Metrics struct {
	requests *prometheus.CounterVec
	rejected prometheus.Counter
}

// NewMetrics registers the counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokenbridge_sender_requests_total",
				Help: "Total number of sender resolver calls by method and status code",
			}, []string{"method", "code"}),
		rejected: f.NewCounter(
			prometheus.CounterOpts{
				Name: "tokenbridge_sender_rejected_claims_total",
				Help: "Total number of program identity claims rejected because the signer is not the program's sender authority",
			}),
	}
}

// MetricsInterceptor counts every unary call on m.
func MetricsInterceptor(m *Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)
		if m == nil {
			return resp, err
		}
		code := status.Code(err)
		m.requests.WithLabelValues(info.FullMethod, code.String()).Inc()
		if code == codes.PermissionDenied {
			m.rejected.Inc()
		}
		return resp, err
	}
}
