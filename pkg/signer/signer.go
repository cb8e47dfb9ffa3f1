package signer

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Minted tokens are valid for one hour at the identity provider.
const tokenLifetime = time.Hour

// Signer mints a short-lived signed credential for a subject.
type Signer interface {
	Mint(ctx context.Context, subject string, claims map[string]any) (string, error)
}

// ServiceAccount signs custom tokens with an RSA service-account key, in
// the shape the secondary identity provider verifies: iss/sub are the
// service account, uid is the subject, extra claims ride in "claims".
type ServiceAccount struct {
	clientEmail string
	tokenURI    string
	key         *rsa.PrivateKey
}

// New parses the PEM private key and builds the signer. Keys supplied
// through env vars usually arrive with escaped newlines, those are
// unescaped here.
func New(clientEmail, tokenURI, privateKeyPEM string) (*ServiceAccount, error) {
	if clientEmail == "" {
		return nil, errors.New("signer: missing client email")
	}

	block, _ := pem.Decode([]byte(strings.ReplaceAll(privateKeyPEM, `\n`, "\n")))
	if block == nil {
		return nil, errors.New("signer: private key is not valid PEM")
	}

	key, err := parseRSAKey(block.Bytes)
	if err != nil {
		return nil, err
	}

	return &ServiceAccount{
		clientEmail: clientEmail,
		tokenURI:    tokenURI,
		key:         key,
	}, nil
}

// FromEnv builds the signer from the service-account env vars.
func FromEnv() (*ServiceAccount, error) {
	return New(
		os.Getenv("SERVICE_ACCOUNT_CLIENT_EMAIL"),
		os.Getenv("SERVICE_ACCOUNT_TOKEN_URI"),
		os.Getenv("SERVICE_ACCOUNT_PRIVATE_KEY"),
	)
}

// Mint creates a new custom token for the subject. Every mint is a fresh
// signature, callers are expected to cache the result themselves.
func (s *ServiceAccount) Mint(ctx context.Context, subject string, claims map[string]any) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss":    s.clientEmail,
		"sub":    s.clientEmail,
		"aud":    s.tokenURI,
		"uid":    subject,
		"claims": claims,
		"iat":    now.Unix(),
		"exp":    now.Add(tokenLifetime).Unix(),
	})

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("signer: sign custom token: %w", err)
	}
	return signed, nil
}

// Service-account keys are PKCS#8, older exported keys can be PKCS#1.
func parseRSAKey(der []byte) (*rsa.PrivateKey, error) {
	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("signer: private key is not RSA")
		}
		return rsaKey, nil
	}
	key, err := x509.ParsePKCS1PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("signer: parse private key: %w", err)
	}
	return key, nil
}
