// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package apiutil

import "errors"

var (
	// ErrMissingSerialNumber indicates a request without a serial number.
	ErrMissingSerialNumber = errors.New("missing serial number")

	// ErrInvalidRevocationReason indicates an unknown revocation reason code.
	ErrInvalidRevocationReason = errors.New("invalid revocation reason")

	// ErrUnsupportedContentType indicates unacceptable or lack of Content-Type.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrInvalidQueryParams indicates invalid query parameters.
	ErrInvalidQueryParams = errors.New("invalid query parameters")

	// ErrInvalidRequest indicates that the request is invalid.
	ErrInvalidRequest = errors.New("invalid request")
)
