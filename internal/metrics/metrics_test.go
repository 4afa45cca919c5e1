package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnaryInterceptorCountsByCode(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRPCMetrics(reg)
	intercept := m.UnaryInterceptor()

	info := &grpc.UnaryServerInfo{FullMethod: "/medisync.v1.MediSync/Login"}
	ok := func(context.Context, any) (any, error) { return "ok", nil }
	denied := func(context.Context, any) (any, error) {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	_, _ = intercept(context.Background(), nil, info, ok)
	_, _ = intercept(context.Background(), nil, info, ok)
	_, err := intercept(context.Background(), nil, info, denied)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(info.FullMethod, "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(info.FullMethod, "Unauthenticated")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestRPCMetricsNilSafe(t *testing.T) {
	var m *RPCMetrics
	m.Observe("/x", "OK", time.Millisecond)
}

func TestRPCMetricsDefaultRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	prev := prometheus.DefaultRegisterer
	prometheus.DefaultRegisterer = reg
	defer func() { prometheus.DefaultRegisterer = prev }()

	m := NewRPCMetrics(nil)
	m.Observe("/x", "OK", time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(m.requests))
}
