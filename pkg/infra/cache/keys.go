package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

const (
	// KeyVersion is bumped whenever the key derivation or the cached value
	// layout changes, so old entries are never read back.
	KeyVersion     = "v1"
	TextKeyPrefix  = "text:" + KeyVersion + ":"
	TextKeyPattern = TextKeyPrefix + "*"
)

// KeyForText derives the cache key from the UTF-8 bytes of text. The result
// is stable across processes and restarts.
func KeyForText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return TextKeyPrefix + hex.EncodeToString(sum[:])
}
