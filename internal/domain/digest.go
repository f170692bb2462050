package domain

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/KillAllTheHippies/Solidity-Signature-Decoder/pkg"
)

// selectorHexLen is the digest length after the "0x" prefix: 8 hex chars,
// the first 4 bytes of the Keccak-256 hash. The truncation is applied
// uniformly to every signature kind, require messages included, to keep the
// output format consistent.
const selectorHexLen = 8

// Hasher is the digest capability injected into the extractor. It must be a
// pure function of its input: no state, no I/O, no network.
type Hasher interface {
	// Selector returns "0x" + the first 8 lowercase hex characters of the
	// Keccak-256 digest of text's UTF-8 bytes.
	Selector(text string) string
}

// KeccakHasher computes truncated Keccak-256 selectors, memoized by input
// text since identical canonical signatures recur across files.
type KeccakHasher struct {
	memo *pkg.Memo[string, string]
}

// NewKeccakHasher constructs a memoizing Keccak-256 Hasher.
func NewKeccakHasher() *KeccakHasher {
	return &KeccakHasher{
		memo: pkg.NewMemo(keccakSelector),
	}
}

// Selector implements Hasher.
func (h *KeccakHasher) Selector(text string) string {
	return h.memo.Get(text)
}

func keccakSelector(text string) string {
	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(text))

	return "0x" + hex.EncodeToString(hash.Sum(nil))[:selectorHexLen]
}
