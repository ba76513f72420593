package httpapi

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/chaLords/sudokugen/difficulty"
	"github.com/chaLords/sudokugen/pkg/constants"
)

// SessionToken is an opaque, signed capsule of the generation
// parameters a client used, letting them resume or re-request the same
// shape of puzzle later without the server persisting anything — the
// core engine keeps no state by design, so this token is the only
// "session" the demo server has.
type SessionToken struct {
	K          int       `json:"k"`
	Difficulty string    `json:"difficulty"`
	Seed       int64     `json:"seed"`
	StartedAt  time.Time `json:"started_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func createToken(secret string, session SessionToken) (string, error) {
	payload, err := json.Marshal(session)
	if err != nil {
		return "", err
	}

	encoded := base64.URLEncoding.EncodeToString(payload)

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(encoded))
	sig := base64.URLEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s.%s", encoded, sig), nil
}

func verifyToken(secret, token string) (*SessionToken, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid token format")
	}

	encoded := parts[0]
	sig := parts[1]

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(encoded))
	expectedSig := base64.URLEncoding.EncodeToString(h.Sum(nil))

	if subtle.ConstantTimeCompare([]byte(sig), []byte(expectedSig)) != 1 {
		return nil, fmt.Errorf("invalid signature")
	}

	payload, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	var session SessionToken
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		return nil, fmt.Errorf("token expired")
	}

	return &session, nil
}

func newSession(k int, diff difficulty.Difficulty, seed int64) SessionToken {
	now := time.Now()
	return SessionToken{
		K:          k,
		Difficulty: difficulty.ToString(diff),
		Seed:       seed,
		StartedAt:  now,
		ExpiresAt:  now.Add(constants.SessionTokenExpiry),
	}
}
