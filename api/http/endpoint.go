// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"

	"github.com/absmach/crl"
	"github.com/go-kit/kit/endpoint"
)

func generateCRLEndpoint(svc crl.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (response any, err error) {
		req := request.(generateReq)
		if err := req.validate(); err != nil {
			return crlRes{}, err
		}

		entity, err := svc.GenerateCRL(ctx)
		if err != nil {
			return crlRes{}, err
		}

		return crlRes{crlView: newCRLView(entity), created: true}, nil
	}
}

func revokeCertEndpoint(svc crl.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (response any, err error) {
		req := request.(revokeReq)
		if err := req.validate(); err != nil {
			return crlRes{}, err
		}

		entity, err := svc.RevokeCert(ctx, req.serial, req.reason)
		if err != nil {
			return crlRes{}, err
		}

		return crlRes{crlView: newCRLView(entity)}, nil
	}
}

func viewCRLEndpoint(svc crl.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (response any, err error) {
		req := request.(viewReq)
		if err := req.validate(); err != nil {
			return crlRes{}, err
		}

		entity, err := svc.ViewCRL(ctx)
		if err != nil {
			return crlRes{}, err
		}

		return crlRes{crlView: newCRLView(entity)}, nil
	}
}

func downloadCRLEndpoint(svc crl.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (response any, err error) {
		req := request.(viewReq)
		if err := req.validate(); err != nil {
			return fileDownloadRes{}, err
		}

		text, err := svc.DownloadCRL(ctx)
		if err != nil {
			return fileDownloadRes{}, err
		}

		return fileDownloadRes{
			CRL:         text,
			Filename:    "crl.pem",
			ContentType: "application/x-pem-file",
		}, nil
	}
}

func certStatusEndpoint(svc crl.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (response any, err error) {
		req := request.(statusReq)
		if err := req.validate(); err != nil {
			return statusRes{}, err
		}

		revoked, err := svc.IsRevoked(ctx, req.serial)
		if err != nil {
			return statusRes{}, err
		}

		return statusRes{SerialNumber: req.serial, Revoked: revoked}, nil
	}
}
