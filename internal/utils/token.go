package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedToken is returned by DecodeSessionToken for values that are not base64(email:id).
var ErrMalformedToken = errors.New("malformed session token")

// EncodeSessionToken builds the session token base64(email + ":" + id).
// The token is a reversible identifier, not a credential.
func EncodeSessionToken(email, id string) string {
	return base64.StdEncoding.EncodeToString([]byte(email + ":" + id))
}

// DecodeSessionToken splits a token produced by EncodeSessionToken back into email and id.
// The split happens on the last colon because ids never contain one.
func DecodeSessionToken(token string) (email, id string, err error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	s := string(raw)
	idx := strings.LastIndex(s, ":")
	if idx <= 0 || idx == len(s)-1 {
		return "", "", ErrMalformedToken
	}

	return s[:idx], s[idx+1:], nil
}
