package inspect

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/minio/blake2b-simd"
	"github.com/npillmayer/blockview"
)

// Digest is a 256-bit BLAKE2b digest over the non-default entries of a view.
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Fingerprint digests the non-default entries of v, in iteration order. Values are
// encoded with fmt's %v verb; use FingerprintWith for element types where this is
// ambiguous.
//
// Two views with equal fingerprints have, with overwhelming probability, the same
// entries at the same positions in the same order.
func Fingerprint[T any](v blockview.View[T]) Digest {
	return FingerprintWith(v, func(buf []byte, value T) []byte {
		return fmt.Appendf(buf, "%v", value)
	})
}

// FingerprintWith is like Fingerprint, but encodes values with enc. enc appends
// the encoding of value to buf and returns the extended buffer.
func FingerprintWith[T any](v blockview.View[T], enc func(buf []byte, value T) []byte) Digest {
	h := blake2b.New256()
	var buf []byte
	n := 0
	for _, ext := range v.Shape() {
		buf = binary.AppendUvarint(buf, uint64(ext))
	}
	h.Write(buf)
	for pos, value := range v.Values() {
		buf = binary.AppendUvarint(buf[:0], uint64(pos))
		mark := len(buf)
		buf = enc(buf, value)
		buf = binary.AppendUvarint(buf, uint64(len(buf)-mark))
		h.Write(buf)
		n++
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	tracer().Debugf("fingerprint over %d entries: %s", n, d)
	return d
}
