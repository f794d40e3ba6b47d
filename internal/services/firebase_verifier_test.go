package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"budgetbuddy/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProjectID = "budgetbuddy-test"

type certServer struct {
	server   *httptest.Server
	key      *rsa.PrivateKey
	kid      string
	failing  atomic.Bool
	requests atomic.Int32
}

func newCertServer(t *testing.T) *certServer {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "securetoken.test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})

	cs := &certServer{key: key, kid: "test-kid"}
	cs.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.requests.Add(1)
		if cs.failing.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{cs.kid: string(certPEM)})
	}))
	t.Cleanup(cs.server.Close)
	return cs
}

func (cs *certServer) verifier(ttl time.Duration) IdentityVerifierInterface {
	return NewFirebaseVerifier(config.FirebaseConfig{
		ProjectID:    testProjectID,
		CertsURL:     cs.server.URL,
		CertCacheTTL: ttl,
	}, cs.server.Client(), slog.New(slog.DiscardHandler))
}

func (cs *certServer) sign(t *testing.T, kid string, mutate func(*firebaseClaims)) string {
	t.Helper()

	now := time.Now()
	claims := &firebaseClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    firebaseIssuerPrefix + testProjectID,
			Audience:  jwt.ClaimStrings{testProjectID},
			Subject:   "firebase-uid",
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email:         "person@example.com",
		EmailVerified: true,
	}
	if mutate != nil {
		mutate(claims)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(cs.key)
	require.NoError(t, err)
	return signed
}

func TestFirebaseVerifier_Verify(t *testing.T) {
	cs := newCertServer(t)
	verifier := cs.verifier(time.Hour)

	claims, err := verifier.Verify(context.Background(), cs.sign(t, cs.kid, nil))
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid", claims.UID)
	assert.Equal(t, "person@example.com", claims.Email)
	assert.True(t, claims.EmailVerified)

	_, err = verifier.Verify(context.Background(), cs.sign(t, cs.kid, nil))
	require.NoError(t, err)
	assert.Equal(t, int32(1), cs.requests.Load())
}

func TestFirebaseVerifier_Rejections(t *testing.T) {
	cs := newCertServer(t)
	verifier := cs.verifier(time.Hour)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:    "empty",
			token:   "",
			wantErr: ErrEmptyToken,
		},
		{
			name:    "wrong audience",
			token:   cs.sign(t, cs.kid, func(c *firebaseClaims) { c.Audience = jwt.ClaimStrings{"other-project"} }),
			wantErr: ErrInvalidIdentityToken,
		},
		{
			name:    "wrong issuer",
			token:   cs.sign(t, cs.kid, func(c *firebaseClaims) { c.Issuer = "https://accounts.example.com" }),
			wantErr: ErrInvalidIdentityToken,
		},
		{
			name:    "unknown kid",
			token:   cs.sign(t, "rotated-away", nil),
			wantErr: ErrInvalidIdentityToken,
		},
		{
			name:    "missing subject",
			token:   cs.sign(t, cs.kid, func(c *firebaseClaims) { c.Subject = "" }),
			wantErr: ErrInvalidIdentityToken,
		},
		{
			name: "expired",
			token: cs.sign(t, cs.kid, func(c *firebaseClaims) {
				c.IssuedAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Hour))
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
			}),
			wantErr: ErrExpiredToken,
		},
		{
			name:    "garbage",
			token:   "not.a.jwt",
			wantErr: ErrInvalidIdentityToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(context.Background(), tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFirebaseVerifier_ProviderUnavailable(t *testing.T) {
	cs := newCertServer(t)
	cs.failing.Store(true)

	_, err := cs.verifier(time.Hour).Verify(context.Background(), cs.sign(t, cs.kid, nil))
	assert.ErrorIs(t, err, ErrIdentityProviderUnavailable)
}

func TestFirebaseVerifier_StaleCertificatesOnFailure(t *testing.T) {
	cs := newCertServer(t)
	verifier := cs.verifier(time.Nanosecond)

	_, err := verifier.Verify(context.Background(), cs.sign(t, cs.kid, nil))
	require.NoError(t, err)

	cs.failing.Store(true)
	time.Sleep(time.Millisecond)

	claims, err := verifier.Verify(context.Background(), cs.sign(t, cs.kid, nil))
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid", claims.UID)
	assert.Equal(t, int32(2), cs.requests.Load())
}

func TestParseCertificates(t *testing.T) {
	_, err := parseCertificates(map[string]string{"kid": "not pem"})
	assert.Error(t, err)

	_, err = parseCertificates(map[string]string{})
	assert.Error(t, err)
}

func TestFirebaseVerifier_BreakerStopsFetching(t *testing.T) {
	cs := newCertServer(t)
	cs.failing.Store(true)
	verifier := cs.verifier(time.Hour)
	token := cs.sign(t, cs.kid, nil)

	limit := DefaultCircuitBreakerConfig().MaxFailures
	for i := 0; i < limit; i++ {
		_, err := verifier.Verify(context.Background(), token)
		require.ErrorIs(t, err, ErrIdentityProviderUnavailable)
	}
	require.Equal(t, int32(limit), cs.requests.Load())

	_, err := verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrIdentityProviderUnavailable)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(limit), cs.requests.Load())
}
