// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"time"

	"github.com/absmach/crl"
	"github.com/go-kit/kit/metrics"
)

var _ crl.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     crl.Service
}

// MetricsMiddleware instruments core service by tracking request count and latency.
func MetricsMiddleware(svc crl.Service, counter metrics.Counter, latency metrics.Histogram) crl.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (mm *metricsMiddleware) GenerateCRL(ctx context.Context) (crl.Entity, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "generate_crl").Add(1)
		mm.latency.With("method", "generate_crl").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return mm.svc.GenerateCRL(ctx)
}

func (mm *metricsMiddleware) RevokeCert(ctx context.Context, serialNumber string, reason crl.RevocationReason) (crl.Entity, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "revoke_certificate").Add(1)
		mm.latency.With("method", "revoke_certificate").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return mm.svc.RevokeCert(ctx, serialNumber, reason)
}

func (mm *metricsMiddleware) ViewCRL(ctx context.Context) (crl.Entity, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "view_crl").Add(1)
		mm.latency.With("method", "view_crl").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return mm.svc.ViewCRL(ctx)
}

func (mm *metricsMiddleware) DownloadCRL(ctx context.Context) ([]byte, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "download_crl").Add(1)
		mm.latency.With("method", "download_crl").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return mm.svc.DownloadCRL(ctx)
}

func (mm *metricsMiddleware) IsRevoked(ctx context.Context, serialNumber string) (bool, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "is_revoked").Add(1)
		mm.latency.With("method", "is_revoked").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return mm.svc.IsRevoked(ctx, serialNumber)
}
