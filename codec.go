// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package crl

import (
	"crypto/x509"
	"encoding/pem"

	"github.com/absmach/crl/errors"
)

const crlPEMType = "X509 CRL"

// SupportedFormats lists the exchange encodings the codec advertises.
// Text (PEM) is the only one; DER stays an internal detail of the
// crypto collaborator.
var SupportedFormats = []string{"text"}

var errUnexpectedPEMType = errors.New("unexpected PEM block type")

// Decode parses the canonical PEM text of a revocation list and wraps
// it in an entity named EntityName. Malformed input yields no entity.
func Decode(text []byte) (Entity, error) {
	block, _ := pem.Decode(text)
	if block == nil {
		return Entity{}, ErrDecode
	}
	if block.Type != crlPEMType {
		return Entity{}, errors.Wrap(ErrDecode, errUnexpectedPEMType)
	}
	list, err := x509.ParseRevocationList(block.Bytes)
	if err != nil {
		return Entity{}, errors.Wrap(ErrDecode, err)
	}
	return Entity{Name: EntityName, Content: list}, nil
}

// Encode renders the entity's content as canonical PEM text.
func Encode(entity Entity) ([]byte, error) {
	if entity.Content == nil {
		return nil, ErrEmptyContent
	}
	return pem.EncodeToMemory(&pem.Block{Type: crlPEMType, Bytes: entity.Content.Raw}), nil
}
