package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ReportKey builds the cache key for a validation report over one document.
// contentHash is the Hash of the document bytes; rulesetHash the Hash of the
// serialized rule configuration. Both go into the key so a change to either
// invalidates the entry.
func ReportKey(contentHash, rulesetHash string) string {
	return fmt.Sprintf("report:%s:%s", contentHash, rulesetHash)
}

// Scoped prefixes a key with a namespace, isolating different corpora or
// users sharing one backend.
func Scoped(scope, key string) string {
	if scope == "" {
		return key
	}
	return scope + ":" + key
}
