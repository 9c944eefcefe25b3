package shared

import (
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ===========================
// Short identifier generator
// ===========================

const (
	minShortIDLength = 4
	maxShortIDLength = 128

	// Each recursion step asks for one full digest worth of characters:
	// base64(md5) is 24 chars, of which at least 22 survive the alphanumeric strip.
	shortIDChunkLength = 22
)

// GenerateShortID derives a short alphanumeric token from the current clock
// reading, a random nonce and a keyed md5 digest.
//
// Rules:
// - length is clamped to [4, 128]
// - output contains only [A-Za-z0-9] and has exactly the requested length
// - collision resistance comes from the nonce, not from any uniqueness check
func GenerateShortID(length int, salt string) string {
	if length < minShortIDLength {
		length = minShortIDLength
	}
	if length > maxShortIDLength {
		length = maxShortIDLength
	}

	uniq := fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.NewString())

	sum := md5.Sum([]byte(salt + uniq))
	encoded := base64.StdEncoding.EncodeToString(sum[:])

	id := stripNonAlphanumeric(encoded)
	for len(id) < length {
		id += GenerateShortID(shortIDChunkLength, salt)
	}

	return id[:length]
}

func stripNonAlphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
