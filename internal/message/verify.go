package message

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"go.uber.org/zap"

	"github.com/olehkaliuzhnyi/wallet-identity/internal/metrics"
)

// ErrSignatureMismatch means the inputs decoded but the signature does not
// verify against the public key.
var ErrSignatureMismatch = errors.New("signature does not match public key")

// DecodeError reports a malformed signature or public key.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Verifier checks detached signatures. It is safe for concurrent use.
type Verifier struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewVerifier returns a Verifier. Both arguments may be nil.
func NewVerifier(logger *zap.Logger, m *metrics.Metrics) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{
		logger:  logger.With(zap.String("component", "message_verifier")),
		metrics: m,
	}
}

var defaultVerifier = NewVerifier(nil, nil)

// VerifyMessage verifies hex-encoded signature and publicKey over msg using
// a verifier that neither logs nor records metrics.
func VerifyMessage(msg Message, signature, publicKey string) bool {
	return defaultVerifier.VerifyMessage(msg, signature, publicKey)
}

// VerifyMessage verifies a hex-encoded DER or compact signature against a
// hex-encoded SEC1 public key. Malformed input yields false.
func (v *Verifier) VerifyMessage(msg Message, signature, publicKey string) bool {
	return v.result(CheckMessageHex(msg, signature, publicKey))
}

// VerifyMessageBytes is VerifyMessage for raw signature and public key bytes.
func (v *Verifier) VerifyMessageBytes(msg Message, signature, publicKey []byte) bool {
	return v.result(CheckMessage(msg, signature, publicKey))
}

func (v *Verifier) result(err error) bool {
	var decodeErr *DecodeError
	switch {
	case err == nil:
		v.metrics.ObserveVerification(metrics.ResultValid)
		return true
	case errors.As(err, &decodeErr):
		v.logger.Debug("malformed signed message",
			zap.String("field", decodeErr.Field),
			zap.Error(decodeErr.Err),
		)
		v.metrics.ObserveVerification(metrics.ResultMalformed)
		return false
	default:
		v.metrics.ObserveVerification(metrics.ResultInvalid)
		return false
	}
}

// CheckMessageHex is CheckMessage for hex-encoded inputs.
func CheckMessageHex(msg Message, signature, publicKey string) error {
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return &DecodeError{Field: "signature", Err: err}
	}
	pub, err := hex.DecodeString(publicKey)
	if err != nil {
		return &DecodeError{Field: "public key", Err: err}
	}
	return CheckMessage(msg, sig, pub)
}

// CheckMessage verifies signature over msg and reports why it failed: a
// *DecodeError for malformed input, ErrSignatureMismatch otherwise.
//
// The digest is the non-reversed double SHA-256 of msg, unlike DisplayHash.
// Existing signatures were produced over this byte order.
func CheckMessage(msg Message, signature, publicKey []byte) error {
	hash := HashMessage(msg, false)

	sig, err := parseSignature(signature)
	if err != nil {
		return err
	}
	pub, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return &DecodeError{Field: "public key", Err: err}
	}
	if !sig.Verify(hash[:], pub) {
		return ErrSignatureMismatch
	}
	return nil
}

// parseSignature accepts DER, 64-byte r||s and 65-byte recoverable compact
// signatures.
func parseSignature(b []byte) (*ecdsa.Signature, error) {
	sig, derErr := ecdsa.ParseDERSignature(b)
	if derErr == nil {
		return sig, nil
	}

	var rb, sb []byte
	switch len(b) {
	case 64:
		rb, sb = b[:32], b[32:]
	case 65:
		rb, sb = b[1:33], b[33:]
	default:
		return nil, &DecodeError{Field: "signature", Err: derErr}
	}

	var r, s btcec.ModNScalar
	if overflow := r.SetByteSlice(rb); overflow || r.IsZero() {
		return nil, &DecodeError{Field: "signature", Err: errors.New("compact signature R out of range")}
	}
	if overflow := s.SetByteSlice(sb); overflow || s.IsZero() {
		return nil, &DecodeError{Field: "signature", Err: errors.New("compact signature S out of range")}
	}
	return ecdsa.NewSignature(&r, &s), nil
}
