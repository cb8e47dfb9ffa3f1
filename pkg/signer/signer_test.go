package signer_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"

	"github.com/fotoflo/cloudhunter/pkg/signer"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testClientEmail = "svc@project.iam.gserviceaccount.com"
	testTokenURI    = "https://oauth2.googleapis.com/token"
)

func testKeyPEM(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	return key, string(pemBytes)
}

func TestMintProducesVerifiableToken(t *testing.T) {
	key, pemStr := testKeyPEM(t)

	s, err := signer.New(testClientEmail, testTokenURI, pemStr)
	require.NoError(t, err)

	minted, err := s.Mint(context.Background(), "john@example.com", map[string]any{
		"sessionToken": "sess-1",
	})
	require.NoError(t, err)

	parsed, err := jwt.Parse(minted, func(token *jwt.Token) (interface{}, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, testClientEmail, claims["iss"])
	require.Equal(t, testClientEmail, claims["sub"])
	require.Equal(t, testTokenURI, claims["aud"])
	require.Equal(t, "john@example.com", claims["uid"])

	nested, ok := claims["claims"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "sess-1", nested["sessionToken"])

	iat, ok := claims["iat"].(float64)
	require.True(t, ok)
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	require.EqualValues(t, 3600, exp-iat)
}

func TestNewUnescapesEnvNewlines(t *testing.T) {
	_, pemStr := testKeyPEM(t)
	escaped := strings.ReplaceAll(pemStr, "\n", `\n`)

	s, err := signer.New(testClientEmail, testTokenURI, escaped)
	require.NoError(t, err)

	_, err = s.Mint(context.Background(), "john@example.com", nil)
	require.NoError(t, err)
}

func TestNewRejectsMissingClientEmail(t *testing.T) {
	_, pemStr := testKeyPEM(t)

	_, err := signer.New("", testTokenURI, pemStr)
	require.Error(t, err)
}

func TestNewRejectsGarbageKey(t *testing.T) {
	_, err := signer.New(testClientEmail, testTokenURI, "not a key")
	require.Error(t, err)
}

func TestMintsAreFreshPerCall(t *testing.T) {
	_, pemStr := testKeyPEM(t)
	s, err := signer.New(testClientEmail, testTokenURI, pemStr)
	require.NoError(t, err)

	first, err := s.Mint(context.Background(), "john@example.com", map[string]any{"sessionToken": "a"})
	require.NoError(t, err)
	second, err := s.Mint(context.Background(), "john@example.com", map[string]any{"sessionToken": "b"})
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
