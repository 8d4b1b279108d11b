// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/absmach/crl"
)

var _ crl.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    crl.Service
}

// LoggingMiddleware adds logging facilities to the core service.
func LoggingMiddleware(svc crl.Service, logger *slog.Logger) crl.Service {
	return &loggingMiddleware{logger, svc}
}

func (lm *loggingMiddleware) GenerateCRL(ctx context.Context) (entity crl.Entity, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method generate_crl took %s to complete", time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(message)
	}(time.Now())
	return lm.svc.GenerateCRL(ctx)
}

func (lm *loggingMiddleware) RevokeCert(ctx context.Context, serialNumber string, reason crl.RevocationReason) (entity crl.Entity, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method revoke_cert for serial number %s took %s to complete", serialNumber, time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(message)
	}(time.Now())
	return lm.svc.RevokeCert(ctx, serialNumber, reason)
}

func (lm *loggingMiddleware) ViewCRL(ctx context.Context) (entity crl.Entity, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method view_crl took %s to complete", time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(message)
	}(time.Now())
	return lm.svc.ViewCRL(ctx)
}

func (lm *loggingMiddleware) DownloadCRL(ctx context.Context) (text []byte, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method download_crl took %s to complete", time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(message)
	}(time.Now())
	return lm.svc.DownloadCRL(ctx)
}

func (lm *loggingMiddleware) IsRevoked(ctx context.Context, serialNumber string) (revoked bool, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method is_revoked for serial number %s took %s to complete", serialNumber, time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(message)
	}(time.Now())
	return lm.svc.IsRevoked(ctx, serialNumber)
}
