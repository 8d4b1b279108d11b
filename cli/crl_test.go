// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/absmach/crl"
	"github.com/absmach/crl/cli"
	"github.com/absmach/crl/errors"
	"github.com/absmach/crl/sdk"
	sdkmocks "github.com/absmach/crl/sdk/mocks"
	"github.com/stretchr/testify/assert"
)

const (
	generateCmd = "generate"
	revokeCmd   = "revoke"
	viewCmd     = "view"
	statusCmd   = "status"
)

var (
	serialNumber = "39054620502613157373429341617471746606"
	extraArg     = "extra-arg"
)

func TestGenerateCRLCmd(t *testing.T) {
	sdkMock := new(sdkmocks.MockSDK)
	cli.SetSDK(sdkMock)
	crlCmd := cli.NewCRLCmd()
	rootCmd := setFlags(crlCmd)

	cases := []struct {
		desc          string
		args          []string
		sdkErr        errors.SDKError
		errLogMessage string
		logType       outputLog
		list          sdk.CRL
	}{
		{
			desc:    "generate successfully",
			args:    []string{},
			logType: entityLog,
			list:    sdk.CRL{Name: crl.EntityName, Number: "0"},
		},
		{
			desc: "generate with invalid args",
			args: []string{
				extraArg,
			},
			logType: usageLog,
		},
		{
			desc:          "generate failed",
			args:          []string{},
			sdkErr:        errors.NewSDKErrorWithStatus(crl.ErrSigning, http.StatusUnprocessableEntity),
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", errors.NewSDKErrorWithStatus(crl.ErrSigning, http.StatusUnprocessableEntity)),
			logType:       errLog,
		},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			sdkCall := sdkMock.On("GenerateCRL").Return(tc.list, tc.sdkErr)
			out := executeCommand(t, rootCmd, append([]string{generateCmd}, tc.args...)...)

			switch tc.logType {
			case entityLog:
				var list sdk.CRL
				err := json.Unmarshal([]byte(out), &list)
				assert.Nil(t, err)
				assert.Equal(t, tc.list, list, fmt.Sprintf("%s unexpected response: expected: %v, got: %v", tc.desc, tc.list, list))
			case errLog:
				assert.Equal(t, tc.errLogMessage, out, fmt.Sprintf("%s unexpected error response: expected %s, got: %s", tc.desc, tc.errLogMessage, out))
			case usageLog:
				assert.False(t, strings.Contains(out, rootCmd.Use), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			sdkCall.Unset()
		})
	}
}

func TestRevokeCertCmd(t *testing.T) {
	sdkMock := new(sdkmocks.MockSDK)
	cli.SetSDK(sdkMock)
	crlCmd := cli.NewCRLCmd()
	rootCmd := setFlags(crlCmd)

	revokedList := sdk.CRL{
		Name:   crl.EntityName,
		Number: "0",
		Revoked: []sdk.RevokedEntry{
			{SerialNumber: serialNumber, ReasonCode: int(crl.DefaultRevocationReason)},
		},
	}

	cases := []struct {
		desc          string
		args          []string
		sdkErr        errors.SDKError
		errLogMessage string
		logType       outputLog
		list          sdk.CRL
	}{
		{
			desc: "revoke successfully",
			args: []string{
				serialNumber,
			},
			logType: entityLog,
			list:    revokedList,
		},
		{
			desc: "revoke with explicit reason",
			args: []string{
				serialNumber,
				"superseded",
			},
			logType: entityLog,
			list:    revokedList,
		},
		{
			desc: "revoke with invalid args",
			args: []string{
				serialNumber,
				"superseded",
				extraArg,
			},
			logType: usageLog,
		},
		{
			desc: "revoke failed",
			args: []string{
				serialNumber,
			},
			sdkErr:        errors.NewSDKErrorWithStatus(crl.ErrPersistence, http.StatusUnprocessableEntity),
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", errors.NewSDKErrorWithStatus(crl.ErrPersistence, http.StatusUnprocessableEntity)),
			logType:       errLog,
		},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			reason := ""
			if len(tc.args) == 2 {
				reason = tc.args[1]
			}
			sdkCall := sdkMock.On("RevokeCert", serialNumber, reason).Return(tc.list, tc.sdkErr)
			out := executeCommand(t, rootCmd, append([]string{revokeCmd}, tc.args...)...)

			switch tc.logType {
			case entityLog:
				var list sdk.CRL
				err := json.Unmarshal([]byte(out), &list)
				assert.Nil(t, err)
				assert.Equal(t, tc.list, list, fmt.Sprintf("%s unexpected response: expected: %v, got: %v", tc.desc, tc.list, list))
			case errLog:
				assert.Equal(t, tc.errLogMessage, out, fmt.Sprintf("%s unexpected error response: expected %s, got: %s", tc.desc, tc.errLogMessage, out))
			case usageLog:
				assert.False(t, strings.Contains(out, rootCmd.Use), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			sdkCall.Unset()
		})
	}
}

func TestViewCRLCmd(t *testing.T) {
	sdkMock := new(sdkmocks.MockSDK)
	cli.SetSDK(sdkMock)
	crlCmd := cli.NewCRLCmd()
	rootCmd := setFlags(crlCmd)

	cases := []struct {
		desc          string
		args          []string
		sdkErr        errors.SDKError
		errLogMessage string
		logType       outputLog
		list          sdk.CRL
	}{
		{
			desc:    "view successfully",
			args:    []string{},
			logType: entityLog,
			list:    sdk.CRL{Name: crl.EntityName, Number: "0"},
		},
		{
			desc:          "view without a list",
			args:          []string{},
			sdkErr:        errors.NewSDKErrorWithStatus(crl.ErrNotFound, http.StatusNotFound),
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", errors.NewSDKErrorWithStatus(crl.ErrNotFound, http.StatusNotFound)),
			logType:       errLog,
		},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			sdkCall := sdkMock.On("ViewCRL").Return(tc.list, tc.sdkErr)
			out := executeCommand(t, rootCmd, append([]string{viewCmd}, tc.args...)...)

			switch tc.logType {
			case entityLog:
				var list sdk.CRL
				err := json.Unmarshal([]byte(out), &list)
				assert.Nil(t, err)
				assert.Equal(t, tc.list, list, fmt.Sprintf("%s unexpected response: expected: %v, got: %v", tc.desc, tc.list, list))
			case errLog:
				assert.Equal(t, tc.errLogMessage, out, fmt.Sprintf("%s unexpected error response: expected %s, got: %s", tc.desc, tc.errLogMessage, out))
			}
			sdkCall.Unset()
		})
	}
}

func TestCertStatusCmd(t *testing.T) {
	sdkMock := new(sdkmocks.MockSDK)
	cli.SetSDK(sdkMock)
	crlCmd := cli.NewCRLCmd()
	rootCmd := setFlags(crlCmd)

	cases := []struct {
		desc          string
		args          []string
		sdkErr        errors.SDKError
		errLogMessage string
		logType       outputLog
		status        sdk.Status
	}{
		{
			desc: "status of revoked serial",
			args: []string{
				serialNumber,
			},
			logType: entityLog,
			status:  sdk.Status{SerialNumber: serialNumber, Revoked: true},
		},
		{
			desc:    "status with invalid args",
			args:    []string{},
			logType: usageLog,
		},
		{
			desc: "status failed",
			args: []string{
				serialNumber,
			},
			sdkErr:        errors.NewSDKErrorWithStatus(crl.ErrNotFound, http.StatusNotFound),
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", errors.NewSDKErrorWithStatus(crl.ErrNotFound, http.StatusNotFound)),
			logType:       errLog,
		},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			sdkCall := sdkMock.On("CertStatus", serialNumber).Return(tc.status, tc.sdkErr)
			out := executeCommand(t, rootCmd, append([]string{statusCmd}, tc.args...)...)

			switch tc.logType {
			case entityLog:
				var status sdk.Status
				err := json.Unmarshal([]byte(out), &status)
				assert.Nil(t, err)
				assert.Equal(t, tc.status, status, fmt.Sprintf("%s unexpected response: expected: %v, got: %v", tc.desc, tc.status, status))
			case errLog:
				assert.Equal(t, tc.errLogMessage, out, fmt.Sprintf("%s unexpected error response: expected %s, got: %s", tc.desc, tc.errLogMessage, out))
			case usageLog:
				assert.False(t, strings.Contains(out, rootCmd.Use), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			sdkCall.Unset()
		})
	}
}
