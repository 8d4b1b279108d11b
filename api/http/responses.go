// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"time"

	"github.com/absmach/crl"
	"github.com/absmach/crl/api"
	intapi "github.com/absmach/crl/internal/api"
)

var (
	_ intapi.Response = (*crlRes)(nil)
	_ intapi.Response = (*statusRes)(nil)
	_ intapi.Response = (*fileDownloadRes)(nil)
)

type revokedEntryView struct {
	SerialNumber   string    `json:"serial_number"`
	RevocationTime time.Time `json:"revocation_time"`
	ReasonCode     int       `json:"reason_code"`
}

type crlView struct {
	Name       string             `json:"name"`
	Issuer     string             `json:"issuer"`
	Number     string             `json:"number"`
	ThisUpdate time.Time          `json:"this_update"`
	NextUpdate time.Time          `json:"next_update"`
	Revoked    []revokedEntryView `json:"revoked_certificates"`
}

func newCRLView(entity crl.Entity) crlView {
	view := crlView{
		Name:       entity.Name,
		Issuer:     entity.Content.Issuer.String(),
		Number:     entity.Content.Number.String(),
		ThisUpdate: entity.Content.ThisUpdate,
		NextUpdate: entity.Content.NextUpdate,
		Revoked:    []revokedEntryView{},
	}
	for _, entry := range entity.Content.RevokedCertificateEntries {
		view.Revoked = append(view.Revoked, revokedEntryView{
			SerialNumber:   api.NormalizeSerialNumber(entry.SerialNumber.Text(16)),
			RevocationTime: entry.RevocationTime,
			ReasonCode:     entry.ReasonCode,
		})
	}
	return view
}

type crlRes struct {
	crlView
	created bool
}

func (res crlRes) Code() int {
	if res.created {
		return http.StatusCreated
	}

	return http.StatusOK
}

func (res crlRes) Headers() map[string]string {
	return map[string]string{}
}

func (res crlRes) Empty() bool {
	return false
}

type statusRes struct {
	SerialNumber string `json:"serial_number"`
	Revoked      bool   `json:"revoked"`
}

func (res statusRes) Code() int {
	return http.StatusOK
}

func (res statusRes) Headers() map[string]string {
	return map[string]string{}
}

func (res statusRes) Empty() bool {
	return false
}

type fileDownloadRes struct {
	CRL         []byte
	Filename    string
	ContentType string
}

func (res fileDownloadRes) Code() int {
	return http.StatusOK
}

func (res fileDownloadRes) Headers() map[string]string {
	return map[string]string{
		"Content-Type":        res.ContentType,
		"Content-Disposition": "attachment; filename=" + res.Filename,
	}
}

func (res fileDownloadRes) Empty() bool {
	return true
}
