package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString returns the hex-encoded HMAC-SHA256 of data keyed with hashKey.
//
// Used for password fingerprints in reset tokens and for signing outgoing
// webhook bodies:
//
//	signature := utils.HashString(string(body), secret)
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// HashesEqual compares two hashes in constant time.
func HashesEqual(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
