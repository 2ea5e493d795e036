package hamt

import "fmt"

// CorruptionError marks an invariant violation encountered while
// descending the trie: an empty bitmap node outside the empty sentinel,
// or a collision node reached by a hash that disagrees with the one it
// was built for. Per §7, these are programmer errors — they indicate the
// host's hash/equality contract was violated or the node graph was built
// outside this package — and are never recovered from internally. They
// surface as a panic carrying this type so a white-box test can still
// assert on them with recover().
type CorruptionError struct {
	msg string
}

func (e *CorruptionError) Error() string { return e.msg }

func corrupted(format string, args ...any) {
	err := &CorruptionError{msg: fmt.Sprintf(format, args...)}
	log.Error(err.Error())
	panic(err)
}
