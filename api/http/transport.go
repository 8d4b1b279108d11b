// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/absmach/crl"
	intapi "github.com/absmach/crl/internal/api"
	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	reasonKey = "reason"
	svcName   = "crl"
)

// MakeHandler returns a HTTP handler for API endpoints.
func MakeHandler(r *chi.Mux, svc crl.Service, logger *slog.Logger, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(loggingErrorEncoder(logger, intapi.EncodeError)),
	}

	r.Route("/crl", func(r chi.Router) {
		r.Post("/generate", kithttp.NewServer(
			generateCRLEndpoint(svc),
			decodeGenerate,
			intapi.EncodeResponse,
			opts...,
		).ServeHTTP)

		r.Patch("/revoke/{serial}", kithttp.NewServer(
			revokeCertEndpoint(svc),
			decodeRevoke,
			intapi.EncodeResponse,
			opts...,
		).ServeHTTP)

		r.Get("/view", kithttp.NewServer(
			viewCRLEndpoint(svc),
			decodeView,
			intapi.EncodeResponse,
			opts...,
		).ServeHTTP)

		r.Get("/status/{serial}", kithttp.NewServer(
			certStatusEndpoint(svc),
			decodeStatus,
			intapi.EncodeResponse,
			opts...,
		).ServeHTTP)

		r.Get("/", kithttp.NewServer(
			downloadCRLEndpoint(svc),
			decodeView,
			encodePEMResponse,
			opts...,
		).ServeHTTP)
	})

	r.Get("/health", health(svcName, instanceID))
	r.Handle("/metrics", promhttp.Handler())

	return otelhttp.NewHandler(r, svcName)
}

func decodeGenerate(_ context.Context, _ *http.Request) (interface{}, error) {
	return generateReq{}, nil
}

func decodeRevoke(_ context.Context, r *http.Request) (interface{}, error) {
	reason, err := parseReason(r.URL.Query().Get(reasonKey))
	if err != nil {
		return nil, err
	}
	req := revokeReq{
		serial: chi.URLParam(r, "serial"),
		reason: reason,
	}
	return req, nil
}

func decodeView(_ context.Context, _ *http.Request) (interface{}, error) {
	return viewReq{}, nil
}

func decodeStatus(_ context.Context, r *http.Request) (interface{}, error) {
	req := statusReq{
		serial: chi.URLParam(r, "serial"),
	}
	return req, nil
}

// encodePEMResponse writes the PEM text of the list instead of JSON.
func encodePEMResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	res := response.(fileDownloadRes)
	for k, v := range res.Headers() {
		w.Header().Set(k, v)
	}
	w.WriteHeader(res.Code())
	_, err := w.Write(res.CRL)
	return err
}

func loggingErrorEncoder(logger *slog.Logger, enc kithttp.ErrorEncoder) kithttp.ErrorEncoder {
	return func(ctx context.Context, err error, w http.ResponseWriter) {
		logger.Warn(err.Error())
		enc(ctx, err, w)
	}
}

func health(service, instanceID string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		res := map[string]string{
			"status":      "pass",
			"service":     service,
			"instance_id": instanceID,
			"time":        time.Now().UTC().Format(time.RFC3339),
		}
		w.Header().Set("Content-Type", intapi.ContentType)
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(res); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}
