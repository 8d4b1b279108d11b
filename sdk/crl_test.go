// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/absmach/crl"
	httpapi "github.com/absmach/crl/api/http"
	"github.com/absmach/crl/errors"
	"github.com/absmach/crl/mocks"
	"github.com/absmach/crl/sdk"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const instanceID = "5de9b29a-feb9-11ed-be56-0242ac120002"

func setupService(t *testing.T) (*httptest.Server, *mocks.Service) {
	t.Helper()
	svc := new(mocks.Service)
	logger := slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
	mux := chi.NewRouter()
	handler := httpapi.MakeHandler(mux, svc, logger, instanceID)
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, svc
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func newSDK(serverURL string) sdk.SDK {
	return sdk.NewSDK(sdk.Config{
		CRLURL:          serverURL,
		HostURL:         serverURL,
		MsgContentType:  sdk.CTJSON,
		TLSVerification: false,
		CurlFlag:        false,
	})
}

func newEntity(t *testing.T, serials ...int64) crl.Entity {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	certTemplate := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "Test_Selfsigned_ca"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	der, err := x509.CreateCertificate(rand.Reader, certTemplate, certTemplate, &key.PublicKey, key)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	now := time.Now().UTC()
	entries := make([]x509.RevocationListEntry, 0, len(serials))
	for _, serial := range serials {
		entries = append(entries, x509.RevocationListEntry{
			SerialNumber:   big.NewInt(serial),
			RevocationTime: now,
			ReasonCode:     int(crl.DefaultRevocationReason),
		})
	}
	crlDER, err := x509.CreateRevocationList(rand.Reader, &x509.RevocationList{
		Number:                    big.NewInt(crl.InitialCRLNumber),
		ThisUpdate:                now,
		NextUpdate:                now.Add(crl.CRLValidityPeriod),
		RevokedCertificateEntries: entries,
	}, cert, key)
	require.NoError(t, err)
	list, err := x509.ParseRevocationList(crlDER)
	require.NoError(t, err)

	return crl.Entity{Name: crl.EntityName, Content: list}
}

func TestGenerateCRL(t *testing.T) {
	server, svc := setupService(t)
	s := newSDK(server.URL)

	entity := newEntity(t)

	cases := []struct {
		desc   string
		svcRes crl.Entity
		svcErr error
		err    errors.SDKError
	}{
		{
			desc:   "generate successfully",
			svcRes: entity,
			svcErr: nil,
			err:    nil,
		},
		{
			desc:   "signing failure",
			svcRes: crl.Entity{},
			svcErr: crl.ErrSigning,
			err:    errors.NewSDKErrorWithStatus(crl.ErrSigning, http.StatusUnprocessableEntity),
		},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			call := svc.On("GenerateCRL", mock.Anything).Return(tc.svcRes, tc.svcErr)
			defer call.Unset()

			list, err := s.GenerateCRL()
			if tc.err != nil {
				require.Error(t, err)
				assert.Equal(t, tc.err.StatusCode(), err.StatusCode())
				return
			}
			require.Nil(t, err)
			assert.Equal(t, crl.EntityName, list.Name)
			assert.Equal(t, "0", list.Number)
			assert.Empty(t, list.Revoked)
		})
	}
}

func TestRevokeCert(t *testing.T) {
	server, svc := setupService(t)
	s := newSDK(server.URL)

	entity := newEntity(t, 42)

	cases := []struct {
		desc       string
		serial     string
		reason     string
		svcCall    bool
		wantReason crl.RevocationReason
		svcRes     crl.Entity
		svcErr     error
		status     int
	}{
		{
			desc:       "absent reason defaults to key compromise",
			serial:     "2a",
			reason:     "",
			svcCall:    true,
			wantReason: crl.ReasonKeyCompromise,
			svcRes:     entity,
		},
		{
			desc:       "revoke with explicit reason",
			serial:     "2a",
			reason:     "superseded",
			svcCall:    true,
			wantReason: crl.ReasonSuperseded,
			svcRes:     entity,
		},
		{
			desc:   "unknown reason name",
			serial: "2a",
			reason: "madeUpReason",
			status: http.StatusBadRequest,
		},
		{
			desc:       "persistence failure",
			serial:     "2a",
			svcCall:    true,
			wantReason: crl.ReasonKeyCompromise,
			svcRes:     crl.Entity{},
			svcErr:     crl.ErrPersistence,
			status:     http.StatusUnprocessableEntity,
		},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			if tc.svcCall {
				call := svc.On("RevokeCert", mock.Anything, tc.serial, tc.wantReason).Return(tc.svcRes, tc.svcErr)
				defer call.Unset()
			}

			list, err := s.RevokeCert(tc.serial, tc.reason)
			if tc.status != 0 {
				require.Error(t, err)
				assert.Equal(t, tc.status, err.StatusCode())
				return
			}
			require.Nil(t, err)
			require.Len(t, list.Revoked, 1)
			assert.Equal(t, "2a", list.Revoked[0].SerialNumber)
		})
	}
}

func TestViewCRL(t *testing.T) {
	server, svc := setupService(t)
	s := newSDK(server.URL)

	entity := newEntity(t, 7)

	cases := []struct {
		desc   string
		svcRes crl.Entity
		svcErr error
		status int
	}{
		{
			desc:   "view successfully",
			svcRes: entity,
		},
		{
			desc:   "no list generated yet",
			svcRes: crl.Entity{},
			svcErr: crl.ErrNotFound,
			status: http.StatusNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			call := svc.On("ViewCRL", mock.Anything).Return(tc.svcRes, tc.svcErr)
			defer call.Unset()

			list, err := s.ViewCRL()
			if tc.status != 0 {
				require.Error(t, err)
				assert.Equal(t, tc.status, err.StatusCode())
				return
			}
			require.Nil(t, err)
			assert.Equal(t, crl.EntityName, list.Name)
			require.Len(t, list.Revoked, 1)
			assert.Equal(t, "07", list.Revoked[0].SerialNumber)
		})
	}
}

func TestDownloadCRL(t *testing.T) {
	server, svc := setupService(t)
	s := newSDK(server.URL)

	entity := newEntity(t)
	text, err := crl.Encode(entity)
	require.NoError(t, err)

	call := svc.On("DownloadCRL", mock.Anything).Return(text, nil)
	defer call.Unset()

	body, sdkerr := s.DownloadCRL()
	require.Nil(t, sdkerr)
	assert.Equal(t, text, body)

	decoded, err := crl.Decode(body)
	require.NoError(t, err)
	assert.Equal(t, entity.Content.Raw, decoded.Content.Raw)
}

func TestCertStatus(t *testing.T) {
	server, svc := setupService(t)
	s := newSDK(server.URL)

	cases := []struct {
		desc    string
		serial  string
		revoked bool
		svcErr  error
		status  int
	}{
		{
			desc:    "revoked serial",
			serial:  "2a",
			revoked: true,
		},
		{
			desc:   "valid serial",
			serial: "2b",
		},
		{
			desc:   "no list generated yet",
			serial: "2a",
			svcErr: crl.ErrNotFound,
			status: http.StatusNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			call := svc.On("IsRevoked", mock.Anything, tc.serial).Return(tc.revoked, tc.svcErr)
			defer call.Unset()

			status, err := s.CertStatus(tc.serial)
			if tc.status != 0 {
				require.Error(t, err)
				assert.Equal(t, tc.status, err.StatusCode())
				return
			}
			require.Nil(t, err)
			assert.Equal(t, tc.serial, status.SerialNumber)
			assert.Equal(t, tc.revoked, status.Revoked)
		})
	}
}

func TestHealth(t *testing.T) {
	server, _ := setupService(t)

	resp, err := http.Get(fmt.Sprintf("%s/health", server.URL))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
