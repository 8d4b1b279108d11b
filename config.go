// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package crl

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"time"

	"github.com/absmach/crl/errors"
	"gopkg.in/yaml.v2"
)

const (
	CommonName         = "AbstractMachines_Selfsigned_ca"
	Organization       = "AbstractMacines"
	OrganizationalUnit = "AbstractMachines_ca"
	Country            = "Sirbea"
	Province           = "Sirbea"
	Locality           = "Sirbea"
	StreetAddress      = "Sirbea"
	PostalCode         = "Sirbea"
	PrivateKeyBytes    = 2048
)

var (
	ErrAuthorityConfig         = errors.New("failed to load authority configuration")
	errFailedReadingPrivateKey = errors.New("failed to read private key")
	errFailedReadingCert       = errors.New("failed to read certificate")
)

// AuthorityConfig names the PEM files holding the issuing authority's
// certificate and private key.
type AuthorityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

func LoadConfig(filename string) (AuthorityConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return AuthorityConfig{}, errors.Wrap(ErrAuthorityConfig, err)
	}
	defer file.Close()

	var config AuthorityConfig
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return AuthorityConfig{}, errors.Wrap(ErrAuthorityConfig, err)
	}
	return config, nil
}

// LoadAuthority reads the configured certificate/key pair from disk.
func LoadAuthority(config AuthorityConfig) (*x509.Certificate, crypto.Signer, error) {
	certPEM, err := os.ReadFile(config.CertFile)
	if err != nil {
		return nil, nil, errors.Wrap(errFailedReadingCert, err)
	}
	certBlock, _ := pem.Decode(certPEM)
	if certBlock == nil {
		return nil, nil, errFailedReadingCert
	}
	cert, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return nil, nil, errors.Wrap(errFailedReadingCert, err)
	}

	keyPEM, err := os.ReadFile(config.KeyFile)
	if err != nil {
		return nil, nil, errors.Wrap(errFailedReadingPrivateKey, err)
	}
	keyBlock, _ := pem.Decode(keyPEM)
	if keyBlock == nil {
		return nil, nil, errFailedReadingPrivateKey
	}
	key, err := parsePrivateKey(keyBlock.Bytes)
	if err != nil {
		return nil, nil, errors.Wrap(errFailedReadingPrivateKey, err)
	}

	return cert, key, nil
}

func parsePrivateKey(der []byte) (crypto.Signer, error) {
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, err
	}
	signer, ok := key.(crypto.Signer)
	if !ok {
		return nil, errFailedReadingPrivateKey
	}
	return signer, nil
}

// GenerateAuthority creates a self-signed CA certificate/key pair with
// CRL-signing usage. Used when no authority files are configured.
func GenerateAuthority() (*x509.Certificate, *rsa.PrivateKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, PrivateKeyBytes)
	if err != nil {
		return nil, nil, err
	}

	serialNumber, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return nil, nil, err
	}

	certTemplate := &x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			Organization:       []string{Organization},
			OrganizationalUnit: []string{OrganizationalUnit},
			Country:            []string{Country},
			Province:           []string{Province},
			Locality:           []string{Locality},
			StreetAddress:      []string{StreetAddress},
			PostalCode:         []string{PostalCode},
			CommonName:         CommonName,
			SerialNumber:       serialNumber.String(),
		},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(CRLValidityPeriod),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	certDER, err := x509.CreateCertificate(rand.Reader, certTemplate, certTemplate, &privateKey.PublicKey, privateKey)
	if err != nil {
		return nil, nil, err
	}

	cert, err := x509.ParseCertificate(certDER)
	if err != nil {
		return nil, nil, err
	}

	return cert, privateKey, nil
}
