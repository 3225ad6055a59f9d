package vectorindex

import (
	"encoding/binary"
	"math"
)

// EncodeEmbedding serializes an Embedding to bytes for persistence,
// float64-by-float64 via its IEEE-754 bit pattern. Grounded on
// clawinfra-evoclaw/internal/memory/hybrid/vector.go's
// EncodeEmbedding/DecodeEmbedding pair.
func EncodeEmbedding(e Embedding) []byte {
	buf := make([]byte, 8*len(e))
	for i, v := range e {
		binary.BigEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

// DecodeEmbedding is the inverse of EncodeEmbedding.
func DecodeEmbedding(buf []byte) Embedding {
	n := len(buf) / 8
	e := make(Embedding, n)
	for i := 0; i < n; i++ {
		e[i] = math.Float64frombits(binary.BigEndian.Uint64(buf[i*8:]))
	}
	return e
}
