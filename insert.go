package hamt

import "github.com/sirgallo/hamt/internal/bitops"

// insert returns the node that should replace n after inserting e, and a
// delta of 1 if a new key was added or 0 if an existing key's value was
// replaced. n is never mutated; path copying produces new nodes along
// the way down to wherever e belongs.
func insert[K comparable, V any](n *node[K, V], e entry[K, V], hash uint64, level int, cfg config[K]) (*node[K, V], int) {
	switch n.kind {
	case kindLeaf:
		if cfg.equal(n.leaf.key, e.key) {
			return newLeaf(e), 0
		}

		existingHash := cfg.hash(n.leaf.key)
		return split(n.leaf, existingHash, e, hash, level, cfg), 1

	case kindCollision:
		if hash != n.hash {
			corrupted("hamt: insert reached collision node for hash %d with incoming hash %d — host hash/equality contract violated", n.hash, hash)
		}

		for i, existing := range n.entries {
			if cfg.equal(existing.key, e.key) {
				entries := bitops.ReplaceAt(n.entries, i, e)
				return newCollision(n.hash, entries), 0
			}
		}

		entries := bitops.ExtendTable(n.entries, len(n.entries), e)
		return newCollision(n.hash, entries), 1

	case kindBitmap:
		idx := cfg.sliceIndex(hash, level)

		if !bitops.IsSet(n.bitmap, idx) {
			pos := bitops.Position(n.bitmap, idx)
			slots := bitops.ExtendTable(n.slots, pos, newLeaf(e))
			return &node[K, V]{kind: kindBitmap, bitmap: bitops.SetBit(n.bitmap, idx), slots: slots}, 1
		}

		pos := bitops.Position(n.bitmap, idx)
		child := n.slots[pos]

		if child.kind == kindLeaf {
			if cfg.equal(child.leaf.key, e.key) {
				slots := bitops.ReplaceAt(n.slots, pos, newLeaf(e))
				return &node[K, V]{kind: kindBitmap, bitmap: n.bitmap, slots: slots}, 0
			}

			childHash := cfg.hash(child.leaf.key)
			merged := split(child.leaf, childHash, e, hash, level+1, cfg)
			slots := bitops.ReplaceAt(n.slots, pos, merged)
			return &node[K, V]{kind: kindBitmap, bitmap: n.bitmap, slots: slots}, 1
		}

		newChild, delta := insert(child, e, hash, level+1, cfg)
		slots := bitops.ReplaceAt(n.slots, pos, newChild)
		return &node[K, V]{kind: kindBitmap, bitmap: n.bitmap, slots: slots}, delta

	default:
		corrupted("hamt: unrecognized node kind %d encountered during insert", n.kind)
		return nil, 0
	}
}

// split combines two leaves that landed on the same branch at level,
// building the chain of single-slot bitmap nodes their shared hash prefix
// demands, terminating in a two-slot bitmap node (or, if the hash is
// fully exhausted, a collision node).
func split[K comparable, V any](a entry[K, V], hashA uint64, b entry[K, V], hashB uint64, level int, cfg config[K]) *node[K, V] {
	if level > cfg.maxLevel {
		if hashA != hashB {
			corrupted("hamt: split reached max level %d with disagreeing hashes %d and %d", cfg.maxLevel, hashA, hashB)
		}
		return newCollision(hashA, []entry[K, V]{a, b})
	}

	indexA := cfg.sliceIndex(hashA, level)
	indexB := cfg.sliceIndex(hashB, level)

	if indexA == indexB {
		child := split(a, hashA, b, hashB, level+1, cfg)
		return newBitmapSingle[K, V](indexA, child)
	}

	return newBitmapPair(indexA, newLeaf(a), indexB, newLeaf(b))
}
