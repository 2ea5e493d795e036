package hamt

import (
	"fmt"

	"github.com/sirgallo/hamt/internal/hamthash"
	"github.com/sirgallo/utils"
)

// Options configures a Tree's hashing and branching. The zero value picks
// sensible defaults: a 64-bit hash width, 5-bit (32-way) branching, and
// for comparable key kinds Go itself already knows how to hash well
// (strings and fixed-width integers) a default Hash function.
//
// Any other key type must supply Hash explicitly — this is the host
// contract described in §6: the core requires a hash function and an
// equality predicate from whoever instantiates it, and cannot discover
// either defensively.
type Options[K comparable] struct {
	// Hash produces the fixed-width hash the trie slices into branch
	// indices. Required unless K is one of the kinds internal/hamthash
	// knows a default for.
	Hash func(K) uint64
	// Equal decides key identity. Defaults to the comparable type's own
	// == operator when left nil.
	Equal func(K, K) bool
	// HashWidth is the assumed width, in bits, of values returned by
	// Hash. Must be 32 or 64. Defaults to 64.
	HashWidth int
	// BranchBits is the number of hash bits consumed per trie level,
	// i.e. log2 of the branching factor. Defaults to 5 (32-way
	// branching) and must be in [1, 6], since a bitmap node keeps one bit
	// per branch in a 64-bit word. Any value other than 5 must divide
	// HashWidth evenly; with the default of 5 the last level slices a
	// shorter, partial remainder of the hash.
	BranchBits int
}

func resolveOptions[K comparable](opts Options[K]) config[K] {
	width := opts.HashWidth
	if width == 0 {
		width = 64
	}
	if width != 32 && width != 64 {
		panic(fmt.Sprintf("hamt: HashWidth must be 32 or 64, got %d", width))
	}

	branchBits := opts.BranchBits
	if branchBits == 0 {
		branchBits = 5
	}
	if branchBits <= 0 || branchBits > 6 {
		panic(fmt.Sprintf("hamt: BranchBits must be in [1, 6], got %d", branchBits))
	}
	if branchBits != 5 && width%branchBits != 0 {
		panic(fmt.Sprintf("hamt: HashWidth %d is not divisible by BranchBits %d", width, branchBits))
	}

	hashFn := opts.Hash
	if hashFn == nil {
		defaultHash, ok := hamthash.Default[K](width)
		if !ok {
			var zero K
			panic(fmt.Sprintf("hamt: no default hash for key type %T, Options.Hash is required", zero))
		}
		hashFn = defaultHash
	}

	equalFn := opts.Equal
	if equalFn == nil {
		equalFn = func(a, b K) bool { return a == b }
	}

	maxLevel := (width+branchBits-1)/branchBits - 1

	return config[K]{
		hash:       hashFn,
		equal:      equalFn,
		branchBits: uint(branchBits),
		maxLevel:   maxLevel,
		mask:       uint64(1)<<uint(branchBits) - 1,
	}
}

// zeroed mirrors the teacher library's utils.GetZero[T] usage: resetting
// a value back to its zero state without naming its type twice.
func zeroed[T any]() T {
	return utils.GetZero[T]()
}
