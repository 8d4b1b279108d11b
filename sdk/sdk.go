// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/absmach/crl/errors"
	"moul.io/http2curl"
)

const (
	crlEndpoint      = "crl"
	generateEndpoint = "crl/generate"
	revokeEndpoint   = "crl/revoke"
	viewEndpoint     = "crl/view"
	statusEndpoint   = "crl/status"
)

const (
	// CTJSON represents JSON content type.
	CTJSON ContentType = "application/json"

	// CTPEM represents PEM file content type.
	CTPEM ContentType = "application/x-pem-file"
)

// ContentType represents all possible content types.
type ContentType string

// RevokedEntry is one revoked serial number on the list.
type RevokedEntry struct {
	SerialNumber   string    `json:"serial_number"`
	RevocationTime time.Time `json:"revocation_time"`
	ReasonCode     int       `json:"reason_code"`
}

// CRL is the JSON rendering of the authority's revocation list.
type CRL struct {
	Name       string         `json:"name"`
	Issuer     string         `json:"issuer"`
	Number     string         `json:"number"`
	ThisUpdate time.Time      `json:"this_update"`
	NextUpdate time.Time      `json:"next_update"`
	Revoked    []RevokedEntry `json:"revoked_certificates"`
}

// Status is the revocation status of a single serial number.
type Status struct {
	SerialNumber string `json:"serial_number"`
	Revoked      bool   `json:"revoked"`
}

type Config struct {
	CRLURL  string
	HostURL string

	MsgContentType  ContentType
	TLSVerification bool
	CurlFlag        bool
}

type crlSDK struct {
	crlURL  string
	HostURL string

	msgContentType ContentType
	client         *http.Client
	curlFlag       bool
}

type SDK interface {
	// GenerateCRL creates a fresh, empty revocation list on the service.
	//
	// example:
	//  list, _ := sdk.GenerateCRL()
	//  fmt.Println(list)
	GenerateCRL() (CRL, errors.SDKError)

	// RevokeCert adds a serial number to the revocation list. An empty
	// reason selects the service default.
	//
	// example:
	//  list, _ := sdk.RevokeCert("serialNumber", "keyCompromise")
	//  fmt.Println(list)
	RevokeCert(serialNumber, reason string) (CRL, errors.SDKError)

	// ViewCRL retrieves the active revocation list.
	//
	// example:
	//  list, _ := sdk.ViewCRL()
	//  fmt.Println(list)
	ViewCRL() (CRL, errors.SDKError)

	// DownloadCRL retrieves the PEM text of the active list.
	//
	// example:
	//  pemText, _ := sdk.DownloadCRL()
	//  fmt.Println(string(pemText))
	DownloadCRL() ([]byte, errors.SDKError)

	// CertStatus checks whether a serial number is on the list.
	//
	// example:
	//  status, _ := sdk.CertStatus("serialNumber")
	//  fmt.Println(status)
	CertStatus(serialNumber string) (Status, errors.SDKError)
}

func (sdk crlSDK) GenerateCRL() (CRL, errors.SDKError) {
	url := fmt.Sprintf("%s/%s", sdk.crlURL, generateEndpoint)
	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, nil, nil, http.StatusCreated)
	if sdkerr != nil {
		return CRL{}, sdkerr
	}
	var list CRL
	if err := json.Unmarshal(body, &list); err != nil {
		return CRL{}, errors.NewSDKError(err)
	}
	return list, nil
}

func (sdk crlSDK) RevokeCert(serialNumber, reason string) (CRL, errors.SDKError) {
	reqURL := fmt.Sprintf("%s/%s/%s", sdk.crlURL, revokeEndpoint, serialNumber)
	if reason != "" {
		reqURL = fmt.Sprintf("%s?%s", reqURL, url.Values{"reason": []string{reason}}.Encode())
	}
	_, body, sdkerr := sdk.processRequest(http.MethodPatch, reqURL, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return CRL{}, sdkerr
	}
	var list CRL
	if err := json.Unmarshal(body, &list); err != nil {
		return CRL{}, errors.NewSDKError(err)
	}
	return list, nil
}

func (sdk crlSDK) ViewCRL() (CRL, errors.SDKError) {
	url := fmt.Sprintf("%s/%s", sdk.crlURL, viewEndpoint)
	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return CRL{}, sdkerr
	}
	var list CRL
	if err := json.Unmarshal(body, &list); err != nil {
		return CRL{}, errors.NewSDKError(err)
	}
	return list, nil
}

func (sdk crlSDK) DownloadCRL() ([]byte, errors.SDKError) {
	url := fmt.Sprintf("%s/%s", sdk.crlURL, crlEndpoint)
	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}
	return body, nil
}

func (sdk crlSDK) CertStatus(serialNumber string) (Status, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/%s", sdk.crlURL, statusEndpoint, serialNumber)
	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Status{}, sdkerr
	}
	var status Status
	if err := json.Unmarshal(body, &status); err != nil {
		return Status{}, errors.NewSDKError(err)
	}
	return status, nil
}

func NewSDK(conf Config) SDK {
	return &crlSDK{
		crlURL:  conf.CRLURL,
		HostURL: conf.HostURL,

		msgContentType: conf.MsgContentType,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !conf.TLSVerification,
				},
			},
		},
		curlFlag: conf.CurlFlag,
	}
}

// processRequest creates and send a new HTTP request, and checks for errors in the HTTP response.
// It then returns the response headers, the response body, and the associated error(s) (if any).
func (sdk crlSDK) processRequest(method, reqUrl string, data []byte, headers map[string]string, expectedRespCodes ...int) (http.Header, []byte, errors.SDKError) {
	req, err := http.NewRequest(method, reqUrl, bytes.NewReader(data))
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	// Sets a default value for the Content-Type.
	// Overridden if Content-Type is passed in the headers arguments.
	req.Header.Add("Content-Type", string(CTJSON))

	for key, value := range headers {
		req.Header.Add(key, value)
	}

	if sdk.curlFlag {
		curlCommand, err := http2curl.GetCurlCommand(req)
		if err != nil {
			return nil, nil, errors.NewSDKError(err)
		}
		log.Println(curlCommand.String())
	}

	resp, err := sdk.client.Do(req)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}
	defer resp.Body.Close()
	sdkerr := errors.CheckError(resp, expectedRespCodes...)
	if sdkerr != nil {
		return make(http.Header), []byte{}, sdkerr
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}
	return resp.Header, body, nil
}
