// Package hamthash supplies the trie's default hashing: a Murmur3-derived
// mix function generalized to both 32- and 64-bit widths (see
// internal/hamthash/murmur.go), plus best-effort hash functions for the
// key types Go programs most commonly use as map keys. A caller with an
// exotic key type is expected to supply its own Options.Hash.
package hamthash

import "encoding/binary"

// Func hashes a key of type K down to a fixed-width unsigned integer,
// returned as a uint64 whatever the configured hash_width. At width 32
// the functions in this package return values that fit in the low 32
// bits; the trie slices and compares the whole uint64 either way.
type Func[K any] func(K) uint64

const defaultSeed32 = uint32(1)
const defaultSeed64 = uint64(1)

// Bytes hashes a byte slice at the given width (32 or 64).
func Bytes(data []byte, width int) uint64 {
	if width == 32 {
		return uint64(murmur32(data, defaultSeed32))
	}
	return murmur64(data, defaultSeed64)
}

// String hashes a string at the given width by hashing its bytes; the
// []byte conversion copies s.
func String(s string, width int) uint64 {
	return Bytes([]byte(s), width)
}

// Default resolves a hash function for common comparable key kinds the
// way a map key is ordinarily hashed: strings and fixed-width integers.
// It reports false when K isn't one of those kinds, in which case the
// caller must supply Options.Hash explicitly.
func Default[K comparable](width int) (Func[K], bool) {
	var zero K

	switch any(zero).(type) {
	case string:
		return func(k K) uint64 {
			return String(any(k).(string), width)
		}, true
	case int:
		return func(k K) uint64 { return hashInt64(int64(any(k).(int)), width) }, true
	case int8:
		return func(k K) uint64 { return hashInt64(int64(any(k).(int8)), width) }, true
	case int16:
		return func(k K) uint64 { return hashInt64(int64(any(k).(int16)), width) }, true
	case int32:
		return func(k K) uint64 { return hashInt64(int64(any(k).(int32)), width) }, true
	case int64:
		return func(k K) uint64 { return hashInt64(any(k).(int64), width) }, true
	case uint:
		return func(k K) uint64 { return hashUint64(uint64(any(k).(uint)), width) }, true
	case uint8:
		return func(k K) uint64 { return hashUint64(uint64(any(k).(uint8)), width) }, true
	case uint16:
		return func(k K) uint64 { return hashUint64(uint64(any(k).(uint16)), width) }, true
	case uint32:
		return func(k K) uint64 { return hashUint64(uint64(any(k).(uint32)), width) }, true
	case uint64:
		return func(k K) uint64 { return hashUint64(any(k).(uint64), width) }, true
	case uintptr:
		return func(k K) uint64 { return hashUint64(uint64(any(k).(uintptr)), width) }, true
	default:
		return nil, false
	}
}

func hashInt64(v int64, width int) uint64 {
	return hashUint64(uint64(v), width)
}

func hashUint64(v uint64, width int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return Bytes(buf[:], width)
}
