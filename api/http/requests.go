// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/absmach/crl"
	"github.com/absmach/crl/errors"
	"github.com/absmach/crl/pkg/apiutil"
)

var revocationReasons = map[string]crl.RevocationReason{
	"unspecified":          crl.ReasonUnspecified,
	"keyCompromise":        crl.ReasonKeyCompromise,
	"cACompromise":         crl.ReasonCACompromise,
	"affiliationChanged":   crl.ReasonAffiliationChanged,
	"superseded":           crl.ReasonSuperseded,
	"cessationOfOperation": crl.ReasonCessationOfOperation,
	"certificateHold":      crl.ReasonCertificateHold,
	"removeFromCRL":        crl.ReasonRemoveFromCRL,
	"privilegeWithdrawn":   crl.ReasonPrivilegeWithdrawn,
	"aACompromise":         crl.ReasonAACompromise,
}

type generateReq struct{}

func (req generateReq) validate() error {
	return nil
}

type revokeReq struct {
	serial string
	reason crl.RevocationReason
}

func (req revokeReq) validate() error {
	if req.serial == "" {
		return errors.Wrap(apiutil.ErrValidation, apiutil.ErrMissingSerialNumber)
	}
	return nil
}

type viewReq struct{}

func (req viewReq) validate() error {
	return nil
}

type statusReq struct {
	serial string
}

func (req statusReq) validate() error {
	if req.serial == "" {
		return errors.Wrap(apiutil.ErrValidation, apiutil.ErrMissingSerialNumber)
	}
	return nil
}

// parseReason maps the reason query parameter to its enumerated code.
// An absent parameter selects the default reason.
func parseReason(name string) (crl.RevocationReason, error) {
	if name == "" {
		return crl.DefaultRevocationReason, nil
	}
	reason, ok := revocationReasons[name]
	if !ok {
		return 0, errors.Wrap(apiutil.ErrValidation, apiutil.ErrInvalidRevocationReason)
	}
	return reason, nil
}
