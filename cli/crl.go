// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	ctxsdk "github.com/absmach/crl/sdk"
	"github.com/spf13/cobra"
)

// Keep SDK handle in global var.
var sdk ctxsdk.SDK

func SetSDK(s ctxsdk.SDK) {
	sdk = s
}

var cmdCRL = []cobra.Command{
	{
		Use:   "generate",
		Short: "Generate CRL",
		Long:  `Generates a fresh, empty certificate revocation list.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			list, err := sdk.GenerateCRL()
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			logJSONCmd(*cmd, list)
		},
	},
	{
		Use:   "revoke <serial_number> [<reason>]",
		Short: "Revoke certificate",
		Long:  `Adds a certificate serial number to the revocation list. Reason defaults to keyCompromise.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 && len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			reason := ""
			if len(args) == 2 {
				reason = args[1]
			}
			list, err := sdk.RevokeCert(args[0], reason)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			logJSONCmd(*cmd, list)
		},
	},
	{
		Use:   "view",
		Short: "View CRL",
		Long:  `Views the active certificate revocation list.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			list, err := sdk.ViewCRL()
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			logJSONCmd(*cmd, list)
		},
	},
	{
		Use:   "download",
		Short: "Download CRL",
		Long:  `Downloads the active revocation list as a PEM file.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			text, err := sdk.DownloadCRL()
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			logSaveCRLFile(*cmd, text)
		},
	},
	{
		Use:   "status <serial_number>",
		Short: "Certificate status",
		Long:  `Checks whether a certificate serial number is on the revocation list.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			status, err := sdk.CertStatus(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			logJSONCmd(*cmd, status)
		},
	},
}

// NewCRLCmd returns revocation list command.
func NewCRLCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "crl [generate | revoke | view | download | status]",
		Short: "Revocation list management",
		Long:  `Revocation list management: generate, revoke, view, download, status.`,
	}

	for i := range cmdCRL {
		cmd.AddCommand(&cmdCRL[i])
	}

	return &cmd
}
