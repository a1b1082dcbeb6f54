package discord

import (
	"crypto/ed25519"
	"encoding/hex"

	"github.com/m-mizutani/goerr/v2"
)

// Verifier checks Discord interaction signatures (Ed25519 over the request
// timestamp concatenated with the raw body).
type Verifier struct {
	publicKey ed25519.PublicKey
}

// NewVerifier creates a verifier from the hex-encoded application public key
func NewVerifier(publicKeyHex string) (*Verifier, error) {
	raw, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode discord public key")
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, goerr.New("invalid discord public key size", goerr.V("size", len(raw)))
	}

	return &Verifier{publicKey: ed25519.PublicKey(raw)}, nil
}

// Verify checks if the request signature is valid
func (v *Verifier) Verify(body []byte, timestamp, signature string) error {
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return goerr.Wrap(err, "failed to decode signature")
	}
	if len(sig) != ed25519.SignatureSize {
		return goerr.New("invalid signature size", goerr.V("size", len(sig)))
	}

	msg := append([]byte(timestamp), body...)
	if !ed25519.Verify(v.publicKey, msg, sig) {
		return goerr.New("discord signature mismatch")
	}

	return nil
}
