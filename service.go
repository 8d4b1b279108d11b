// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package crl

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/x509"
	"math/big"
	"strings"
	"time"

	"github.com/absmach/crl/errors"
)

type service struct {
	repo          Repository
	signer        Signer
	authorityCert *x509.Certificate
	authorityKey  crypto.Signer
	list          *x509.RevocationList
}

var _ Service = (*service)(nil)

// NewService returns a revocation list manager for the given authority.
// The certificate's subject becomes the list issuer and the key signs
// every revision. Passing a nil signer selects the crypto/x509 one.
// Access to the returned service is not serialized; concurrent writers
// must synchronize externally.
func NewService(repo Repository, signer Signer, authorityCert *x509.Certificate, authorityKey crypto.Signer) (Service, error) {
	if authorityCert == nil || authorityKey == nil {
		return nil, ErrAuthorityNotSet
	}
	if signer == nil {
		signer = x509Signer{}
	}
	return &service{
		repo:          repo,
		signer:        signer,
		authorityCert: authorityCert,
		authorityKey:  authorityKey,
	}, nil
}

func (s *service) GenerateCRL(ctx context.Context) (Entity, error) {
	now := time.Now().UTC()
	template := &x509.RevocationList{
		Number:             big.NewInt(InitialCRLNumber),
		ThisUpdate:         now,
		NextUpdate:         now.Add(CRLValidityPeriod),
		SignatureAlgorithm: CRLSignatureAlgorithm,
	}

	list, err := s.sign(template)
	if err != nil {
		return Entity{}, err
	}
	s.list = list

	return Entity{Name: EntityName, Content: list}, nil
}

func (s *service) RevokeCert(ctx context.Context, serialNumber string, reason RevocationReason) (Entity, error) {
	if serialNumber == "" {
		return Entity{}, errors.Wrap(ErrInvalidArgument, ErrMissingSerialNumber)
	}
	if s.authorityKey == nil {
		return Entity{}, errors.Wrap(ErrInvalidArgument, ErrMissingIssuerKey)
	}
	serial, err := ParseSerialNumber(serialNumber)
	if err != nil {
		return Entity{}, errors.Wrap(ErrInvalidArgument, err)
	}

	current, err := s.load(ctx)
	if err != nil {
		return Entity{}, err
	}

	now := time.Now().UTC()
	entries := make([]x509.RevocationListEntry, 0, len(current.RevokedCertificateEntries)+1)
	entries = append(entries, current.RevokedCertificateEntries...)
	entries = append(entries, x509.RevocationListEntry{
		SerialNumber:   serial,
		RevocationTime: now,
		ReasonCode:     int(reason),
	})

	// The number is carried over unchanged, so every revision of the
	// list still reports the number it was generated with.
	template := &x509.RevocationList{
		Number:                    current.Number,
		ThisUpdate:                now,
		NextUpdate:                now.Add(CRLValidityPeriod),
		SignatureAlgorithm:        CRLSignatureAlgorithm,
		RevokedCertificateEntries: entries,
	}

	list, err := s.sign(template)
	if err != nil {
		return Entity{}, err
	}
	s.list = list

	entity := Entity{Name: EntityName, Content: list}
	if err := s.repo.Save(ctx, entity); err != nil {
		// The in-memory list is already mutated and signed; only the
		// durable copy is stale.
		return entity, errors.Wrap(ErrPersistence, err)
	}

	return entity, nil
}

func (s *service) ViewCRL(ctx context.Context) (Entity, error) {
	list, err := s.load(ctx)
	if err != nil {
		return Entity{}, err
	}
	return Entity{Name: EntityName, Content: list}, nil
}

func (s *service) DownloadCRL(ctx context.Context) ([]byte, error) {
	entity, err := s.ViewCRL(ctx)
	if err != nil {
		return nil, err
	}
	return Encode(entity)
}

func (s *service) IsRevoked(ctx context.Context, serialNumber string) (bool, error) {
	if serialNumber == "" {
		return false, errors.Wrap(ErrInvalidArgument, ErrMissingSerialNumber)
	}
	serial, err := ParseSerialNumber(serialNumber)
	if err != nil {
		return false, errors.Wrap(ErrInvalidArgument, err)
	}
	list, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	for _, entry := range list.RevokedCertificateEntries {
		if entry.SerialNumber.Cmp(serial) == 0 {
			return true, nil
		}
	}
	return false, nil
}

// sign signs the template and returns the parsed result. Nothing is
// swapped in until both the signature and the re-parse succeed, so a
// signing failure leaves the active list untouched.
func (s *service) sign(template *x509.RevocationList) (*x509.RevocationList, error) {
	der, err := s.signer.Sign(template, s.authorityCert, s.authorityKey)
	if err != nil {
		return nil, errors.Wrap(ErrSigning, err)
	}
	list, err := x509.ParseRevocationList(der)
	if err != nil {
		return nil, errors.Wrap(ErrSigning, err)
	}
	return list, nil
}

// load returns the active list, falling back to the repository when the
// service has not generated or loaded one yet.
func (s *service) load(ctx context.Context) (*x509.RevocationList, error) {
	if s.list != nil {
		return s.list, nil
	}
	entity, err := s.repo.Retrieve(ctx, EntityName)
	if err != nil {
		return nil, errors.Wrap(ErrNotFound, err)
	}
	if entity.Content == nil {
		return nil, ErrNotFound
	}
	s.list = entity.Content
	return s.list, nil
}

// ParseSerialNumber reads a certificate serial number given either as a
// decimal string or as hex, with or without colon separators.
func ParseSerialNumber(serialNumber string) (*big.Int, error) {
	cleaned := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(serialNumber), " ", ""))
	if strings.Contains(cleaned, ":") {
		cleaned = strings.ReplaceAll(cleaned, ":", "")
		if serial, ok := new(big.Int).SetString(cleaned, 16); ok {
			return serial, nil
		}
		return nil, ErrMalformedSerialNumber
	}
	if serial, ok := new(big.Int).SetString(cleaned, 10); ok {
		return serial, nil
	}
	if serial, ok := new(big.Int).SetString(cleaned, 16); ok {
		return serial, nil
	}
	return nil, ErrMalformedSerialNumber
}

type x509Signer struct{}

func (x509Signer) Sign(template *x509.RevocationList, issuer *x509.Certificate, key crypto.Signer) ([]byte, error) {
	return x509.CreateRevocationList(rand.Reader, template, issuer, key)
}
