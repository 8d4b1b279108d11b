// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"encoding/json"
	"io"
	"net/http"
)

// SDKError is an error returned by the CRL SDK. It carries the HTTP
// status of the failed request alongside the service error chain.
type SDKError interface {
	Error
	StatusCode() int
}

var _ SDKError = (*sdkError)(nil)

type sdkError struct {
	*customError
	statusCode int
}

func (ce *sdkError) Error() string {
	if ce == nil {
		return ""
	}
	if ce.customError == nil {
		return http.StatusText(ce.statusCode)
	}
	return ce.customError.Error()
}

func (ce *sdkError) StatusCode() int {
	return ce.statusCode
}

// NewSDKError wraps a plain error into an SDK error with no status.
func NewSDKError(err error) SDKError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*customError); ok {
		return &sdkError{
			customError: ce,
			statusCode:  0,
		}
	}
	return &sdkError{
		customError: &customError{
			msg: err.Error(),
			err: nil,
		},
		statusCode: 0,
	}
}

// NewSDKErrorWithStatus wraps a plain error with an HTTP status code.
func NewSDKErrorWithStatus(err error, statusCode int) SDKError {
	if err == nil {
		return nil
	}
	return &sdkError{
		statusCode: statusCode,
		customError: &customError{
			msg: err.Error(),
			err: nil,
		},
	}
}

// CheckError reads the response body and turns any unexpected status
// into an SDK error built from the service's JSON error payload.
func CheckError(resp *http.Response, expectedStatusCodes ...int) SDKError {
	if resp == nil {
		return nil
	}
	for _, expectedStatusCode := range expectedStatusCodes {
		if resp.StatusCode == expectedStatusCode {
			return nil
		}
	}

	b, bErr := io.ReadAll(resp.Body)
	if bErr != nil {
		return NewSDKError(bErr)
	}

	var content struct {
		Err string `json:"error"`
		Msg string `json:"message"`
	}
	if err := json.Unmarshal(b, &content); err != nil {
		return NewSDKErrorWithStatus(New(string(b)), resp.StatusCode)
	}

	if content.Err == "" {
		return NewSDKErrorWithStatus(New(content.Msg), resp.StatusCode)
	}
	return NewSDKErrorWithStatus(Wrap(New(content.Msg), New(content.Err)), resp.StatusCode)
}
