// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"context"

	"github.com/absmach/crl"
	"go.opentelemetry.io/otel/trace"
)

var _ crl.Service = (*tracingMiddleware)(nil)

type tracingMiddleware struct {
	tracer trace.Tracer
	svc    crl.Service
}

// New returns a new crl service with tracing capabilities.
func New(svc crl.Service, tracer trace.Tracer) crl.Service {
	return &tracingMiddleware{tracer, svc}
}

func (tm *tracingMiddleware) GenerateCRL(ctx context.Context) (crl.Entity, error) {
	ctx, span := tm.tracer.Start(ctx, "generate_crl")
	defer span.End()
	return tm.svc.GenerateCRL(ctx)
}

func (tm *tracingMiddleware) RevokeCert(ctx context.Context, serialNumber string, reason crl.RevocationReason) (crl.Entity, error) {
	ctx, span := tm.tracer.Start(ctx, "revoke_cert")
	defer span.End()
	return tm.svc.RevokeCert(ctx, serialNumber, reason)
}

func (tm *tracingMiddleware) ViewCRL(ctx context.Context) (crl.Entity, error) {
	ctx, span := tm.tracer.Start(ctx, "view_crl")
	defer span.End()
	return tm.svc.ViewCRL(ctx)
}

func (tm *tracingMiddleware) DownloadCRL(ctx context.Context) ([]byte, error) {
	ctx, span := tm.tracer.Start(ctx, "download_crl")
	defer span.End()
	return tm.svc.DownloadCRL(ctx)
}

func (tm *tracingMiddleware) IsRevoked(ctx context.Context, serialNumber string) (bool, error) {
	ctx, span := tm.tracer.Start(ctx, "is_revoked")
	defer span.End()
	return tm.svc.IsRevoked(ctx, serialNumber)
}
