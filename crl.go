// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package crl

import (
	"context"
	"crypto"
	"crypto/x509"
	"time"

	"github.com/absmach/crl/errors"
)

const (
	// EntityName is the fixed lookup name of the authority's active
	// revocation list. There is exactly one per authority.
	EntityName = "crl"

	// CRLValidityPeriod is the fixed validity window: every generation
	// or revocation sets nextUpdate to thisUpdate plus this duration.
	CRLValidityPeriod = 5 * 365 * 24 * time.Hour // 5 years
)

// CRLSignatureAlgorithm is the fixed digest used for every signature.
// The historical convention for this list was SHA-1, but crypto/x509
// refuses to create or verify SHA-1 signatures, so SHA-256 is used.
const CRLSignatureAlgorithm = x509.SHA256WithRSA

// InitialCRLNumber is the CRL number of a freshly generated list. The
// number is carried, not incremented, across revocations, so every
// reissue of the list still reports 0. RFC 5280 expects the number to
// increase monotonically across reissues.
const InitialCRLNumber = 0

// RevocationReason is the RFC 5280 CRLReason enumerated code recorded
// alongside a revoked serial number.
type RevocationReason int

const (
	ReasonUnspecified          RevocationReason = 0
	ReasonKeyCompromise        RevocationReason = 1
	ReasonCACompromise         RevocationReason = 2
	ReasonAffiliationChanged   RevocationReason = 3
	ReasonSuperseded           RevocationReason = 4
	ReasonCessationOfOperation RevocationReason = 5
	ReasonCertificateHold      RevocationReason = 6
	ReasonRemoveFromCRL        RevocationReason = 8
	ReasonPrivilegeWithdrawn   RevocationReason = 9
	ReasonAACompromise         RevocationReason = 10
)

// DefaultRevocationReason is used when the caller does not name one.
const DefaultRevocationReason = ReasonKeyCompromise

var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrMissingSerialNumber   = errors.New("missing serial number")
	ErrMalformedSerialNumber = errors.New("malformed serial number")
	ErrMissingIssuerKey      = errors.New("issuer private key is missing")
	ErrAuthorityNotSet       = errors.New("authority certificate or key is missing")
	ErrSigning               = errors.New("failed to sign revocation list")
	ErrPersistence           = errors.New("failed to persist revocation list")
	ErrDecode                = errors.New("failed to decode revocation list")
	ErrNotFound              = errors.New("revocation list not found")
	ErrEmptyContent          = errors.New("revocation list has no content")
)

// Entity is the named, content-bearing revocation list value. Name is
// always EntityName for the authority's active list; Content is nil
// before the first generation.
type Entity struct {
	Name    string               `json:"name"`
	Content *x509.RevocationList `json:"-"`
}

//go:generate mockery --name Service --output=./mocks --filename service.go --quiet --note "Copyright (c) Abstract Machines"
type Service interface {
	// GenerateCRL builds, signs and returns a fresh, empty revocation
	// list for the authority.
	GenerateCRL(ctx context.Context) (Entity, error)

	// RevokeCert appends a revoked entry for the serial number,
	// rebases the validity window, re-signs the list and persists it.
	RevokeCert(ctx context.Context, serialNumber string, reason RevocationReason) (Entity, error)

	// ViewCRL returns the authority's active revocation list.
	ViewCRL(ctx context.Context) (Entity, error)

	// DownloadCRL returns the PEM encoding of the active list.
	DownloadCRL(ctx context.Context) ([]byte, error)

	// IsRevoked reports whether the serial number is on the active list.
	IsRevoked(ctx context.Context, serialNumber string) (bool, error)
}

//go:generate mockery --name Repository --output=./mocks --filename repository.go --quiet --note "Copyright (c) Abstract Machines"
type Repository interface {
	// Save durably stores the entity under its name, replacing any
	// previous revision.
	Save(ctx context.Context, entity Entity) error

	// Retrieve returns the entity stored under the given name.
	Retrieve(ctx context.Context, name string) (Entity, error)
}

//go:generate mockery --name Signer --output=./mocks --filename signer.go --quiet --note "Copyright (c) Abstract Machines"
type Signer interface {
	// Sign assembles and signs the revocation list template with the
	// issuer's key, returning the DER encoding.
	Sign(template *x509.RevocationList, issuer *x509.Certificate, key crypto.Signer) ([]byte, error)
}
