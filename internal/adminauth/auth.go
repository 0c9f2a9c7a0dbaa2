// Package adminauth authenticates administrative requests (such as reprocess
// triggers) that are signed by a trusted request key.
package adminauth

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/olehkaliuzhnyi/wallet-identity/internal/message"
	"github.com/olehkaliuzhnyi/wallet-identity/internal/metrics"
	"github.com/olehkaliuzhnyi/wallet-identity/internal/storage"
)

var (
	ErrMissingCredentials = errors.New("missing public key or signature")
	ErrUntrustedKey       = errors.New("public key is not trusted")
	ErrInvalidSignature   = errors.New("invalid request signature")
)

// Request is the signed part of an admin call.
type Request struct {
	Method    string
	URL       string
	Body      string
	PublicKey string // hex SEC1
	Signature string // hex DER or compact
}

// Message returns the text the client signs: lower(method)|url|body.
func (r Request) Message() message.Message {
	return message.Text(strings.Join([]string{strings.ToLower(r.Method), r.URL, r.Body}, "|"))
}

// Authenticator checks admin requests against a KeyStore.
type Authenticator struct {
	keys     storage.KeyStore
	verifier *message.Verifier
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewAuthenticator creates an Authenticator. logger and m may be nil.
func NewAuthenticator(keys storage.KeyStore, logger *zap.Logger, m *metrics.Metrics) *Authenticator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Authenticator{
		keys:     keys,
		verifier: message.NewVerifier(logger, m),
		metrics:  m,
		logger:   logger.With(zap.String("component", "admin_auth")),
	}
}

// Authenticate returns nil when the request is signed by a trusted key.
func (a *Authenticator) Authenticate(req Request) error {
	if req.PublicKey == "" || req.Signature == "" {
		a.metrics.ObserveAdminRequest(metrics.AuthMissing)
		return ErrMissingCredentials
	}

	trusted, err := a.keys.Contains(req.PublicKey)
	if err != nil && !errors.Is(err, storage.ErrInvalidPublicKey) {
		return fmt.Errorf("key store: %w", err)
	}
	if !trusted {
		a.metrics.ObserveAdminRequest(metrics.AuthUntrustedKey)
		a.logger.Warn("admin request from untrusted key",
			zap.String("method", req.Method),
			zap.String("url", req.URL),
			zap.String("public_key", req.PublicKey),
		)
		return ErrUntrustedKey
	}

	if !a.verifier.VerifyMessage(req.Message(), req.Signature, req.PublicKey) {
		a.metrics.ObserveAdminRequest(metrics.AuthBadSignature)
		a.logger.Warn("admin request signature rejected",
			zap.String("method", req.Method),
			zap.String("url", req.URL),
		)
		return ErrInvalidSignature
	}

	a.metrics.ObserveAdminRequest(metrics.AuthAccepted)
	a.logger.Info("admin request authenticated",
		zap.String("method", req.Method),
		zap.String("url", req.URL),
	)
	return nil
}

// Sign fills in the signature of req with the request key (hex, 32 bytes).
func Sign(req Request, privateKey string) (Request, error) {
	sig, err := message.SignMessageHex(req.Message(), privateKey)
	if err != nil {
		return req, fmt.Errorf("sign request: %w", err)
	}
	req.Signature = sig
	return req, nil
}
