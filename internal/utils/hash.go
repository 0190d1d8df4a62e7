package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// TokenDigestLength is the length of a [DigestToken] result.
const TokenDigestLength = sha256.Size * 2

// DigestToken returns the hex SHA-256 digest of token. Refresh tokens are
// stored as digests: the column stays fixed-width whatever the claims, and a
// leaked row cannot be replayed.
func DigestToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// MatchTokenDigest reports whether token hashes to digest. An empty digest
// never matches.
func MatchTokenDigest(token, digest string) bool {
	if digest == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(DigestToken(token)), []byte(digest)) == 1
}
