package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashString_MatchesHMACSHA256(t *testing.T) {
	data := "$2a$10$abcdefghijklmnopqrstuu5mV9Jr0h1QdXqjcxK8jN1Yk0dCq3p4S"
	key := "secret"

	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(data))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, HashString(data, key))
}

func TestHashString_Deterministic(t *testing.T) {
	assert.Equal(t, HashString("payload", "key"), HashString("payload", "key"))
}

func TestHashString_DifferentInputs(t *testing.T) {
	tests := []struct {
		name  string
		dataA string
		keyA  string
		dataB string
		keyB  string
	}{
		{name: "different data", dataA: "hash-1", keyA: "key", dataB: "hash-2", keyB: "key"},
		{name: "different keys", dataA: "hash", keyA: "key-1", dataB: "hash", keyB: "key-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, HashString(tt.dataA, tt.keyA), HashString(tt.dataB, tt.keyB))
		})
	}
}

func TestHashString_HexLength(t *testing.T) {
	got := HashString("", "")

	require.Len(t, got, sha256.Size*2)
	_, err := hex.DecodeString(got)
	assert.NoError(t, err)
}

func TestHashesEqual(t *testing.T) {
	hash := HashString("payload", "key")

	assert.True(t, HashesEqual(hash, HashString("payload", "key")))
	assert.False(t, HashesEqual(hash, HashString("payload", "other-key")))
	assert.False(t, HashesEqual(hash, hash[:len(hash)-1]))
	assert.False(t, HashesEqual(hash, ""))
}
