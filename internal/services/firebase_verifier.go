package services

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"budgetbuddy/internal/config"
	"budgetbuddy/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"
)

const firebaseIssuerPrefix = "https://securetoken.google.com/"

var (
	ErrInvalidIdentityToken        = errors.New("invalid identity token")
	ErrIdentityProviderUnavailable = errors.New("identity provider certificates unavailable")
)

// firebaseClaims mirrors the fields of a Firebase ID token we rely on
type firebaseClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// FirebaseVerifier validates Firebase ID tokens against Google's published
// x509 certificates. Certificates are cached for the configured TTL.
type FirebaseVerifier struct {
	projectID string
	certsURL  string
	ttl       time.Duration
	client    *http.Client
	logger    *slog.Logger

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
	group     singleflight.Group
	breaker   *CircuitBreaker
}

func NewFirebaseVerifier(cfg config.FirebaseConfig, client *http.Client, logger *slog.Logger) IdentityVerifierInterface {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &FirebaseVerifier{
		projectID: cfg.ProjectID,
		certsURL:  cfg.CertsURL,
		ttl:       cfg.CertCacheTTL,
		client:    client,
		logger:    logger,
		breaker:   NewCircuitBreaker(DefaultCircuitBreakerConfig()),
	}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*models.IdentityClaims, error) {
	if idToken == "" {
		return nil, ErrEmptyToken
	}

	keys, err := v.publicKeys(ctx)
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(firebaseIssuerPrefix+v.projectID),
		jwt.WithAudience(v.projectID),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)

	claims := &firebaseClaims{}
	_, err = parser.ParseWithClaims(idToken, claims, func(token *jwt.Token) (interface{}, error) {
		kid, _ := token.Header["kid"].(string)
		key, ok := keys[kid]
		if !ok {
			return nil, fmt.Errorf("unknown key id %q", kid)
		}
		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidIdentityToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidIdentityToken)
	}

	return &models.IdentityClaims{
		UID:           claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
	}, nil
}

func (v *FirebaseVerifier) publicKeys(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	v.mu.RLock()
	keys, fetchedAt := v.keys, v.fetchedAt
	v.mu.RUnlock()

	if keys != nil && time.Since(fetchedAt) < v.ttl {
		return keys, nil
	}

	if !v.breaker.Allow() {
		if keys != nil {
			return keys, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrIdentityProviderUnavailable, ErrCircuitOpen)
	}

	result, err, _ := v.group.Do("certs", func() (interface{}, error) {
		fetched, err := v.fetchKeys(ctx)
		if err != nil {
			v.breaker.Failure()
			return nil, err
		}
		v.breaker.Success()
		return fetched, nil
	})
	if err != nil {
		if keys != nil {
			v.logger.Warn("using stale firebase certificates", "error", err)
			return keys, nil
		}
		return nil, err
	}
	return result.(map[string]*rsa.PublicKey), nil
}

func (v *FirebaseVerifier) fetchKeys(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.certsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentityProviderUnavailable, err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentityProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrIdentityProviderUnavailable, resp.StatusCode)
	}

	var certs map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&certs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentityProviderUnavailable, err)
	}

	keys, err := parseCertificates(certs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentityProviderUnavailable, err)
	}

	v.mu.Lock()
	v.keys = keys
	v.fetchedAt = time.Now()
	v.mu.Unlock()

	v.logger.Debug("firebase certificates refreshed", "keys", len(keys))
	return keys, nil
}

func parseCertificates(certs map[string]string) (map[string]*rsa.PublicKey, error) {
	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, certPEM := range certs {
		block, _ := pem.Decode([]byte(certPEM))
		if block == nil {
			return nil, fmt.Errorf("certificate %s is not PEM encoded", kid)
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse certificate %s: %w", kid, err)
		}

		key, ok := cert.PublicKey.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("certificate %s does not hold an RSA key", kid)
		}
		keys[kid] = key
	}

	if len(keys) == 0 {
		return nil, errors.New("no certificates published")
	}
	return keys, nil
}
