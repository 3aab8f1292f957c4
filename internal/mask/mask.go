package mask

import (
	"bytes"
	"encoding/binary"
	"math/big"

	"github.com/bits-and-blooms/bitset"
)

// Mask records which sources contain a word: bit i is set iff the word
// belongs to the i-th selected source. The representation is the
// minimal big-endian byte string of the mask value (no leading zero
// bytes), which makes Mask usable as a map key at any width and makes
// numeric comparison a length-then-bytes comparison.
//
// The zero Mask ("") is the empty mask; it never appears in a frequency
// table.
type Mask string

// Of builds a mask from source ordinals. Ordinals must be >= 0.
func Of(ordinals ...int) Mask {
	if len(ordinals) == 0 {
		return ""
	}
	max := 0
	for _, i := range ordinals {
		if i > max {
			max = i
		}
	}
	b := bitset.New(uint(max + 1))
	for _, i := range ordinals {
		b.Set(uint(i))
	}
	return FromBitSet(b)
}

// FromUint64 builds a mask from a packed 64-bit value.
func FromUint64(v uint64) Mask {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return Mask(trimLeadingZeros(buf[:]))
}

// FromBitSet builds a mask from a bit set over source ordinals.
func FromBitSet(b *bitset.BitSet) Mask {
	words := b.Words() // least-significant uint64 word first
	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint64(buf[len(buf)-8*(i+1):], w)
	}
	return Mask(trimLeadingZeros(buf))
}

// FromBytes rebuilds a mask from its big-endian byte form, normalizing
// any leading zero bytes. The inverse of Bytes.
func FromBytes(b []byte) Mask {
	return Mask(trimLeadingZeros(b))
}

// Bytes returns the canonical big-endian byte form. The empty mask
// yields an empty slice.
func (m Mask) Bytes() []byte {
	return []byte(m)
}

// Bit reports whether source ordinal i is a member.
func (m Mask) Bit(i int) bool {
	if i < 0 {
		return false
	}
	return m.bitSet().Test(uint(i))
}

// Degree returns the population count: how many sources agree on the
// word.
func (m Mask) Degree() int {
	return int(m.bitSet().Count())
}

// Ordinals returns the member source ordinals in ascending order.
func (m Mask) Ordinals() []int {
	b := m.bitSet()
	out := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Uint64 returns the packed value and true when the mask fits in 64
// bits.
func (m Mask) Uint64() (uint64, bool) {
	if len(m) > 8 {
		return 0, false
	}
	var buf [8]byte
	copy(buf[8-len(m):], m)
	return binary.BigEndian.Uint64(buf[:]), true
}

// String renders the mask as a decimal integer, any width.
func (m Mask) String() string {
	if len(m) == 0 {
		return "0"
	}
	return new(big.Int).SetBytes([]byte(m)).String()
}

// Compare orders masks by numeric value: -1, 0 or 1.
func Compare(a, b Mask) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return bytes.Compare([]byte(a), []byte(b))
}

// bitSet decodes the mask into a bit set keyed by source ordinal.
func (m Mask) bitSet() *bitset.BitSet {
	words := make([]uint64, (len(m)+7)/8)
	for i := 0; i < len(m); i++ {
		words[i/8] |= uint64(m[len(m)-1-i]) << (8 * uint(i%8))
	}
	return bitset.From(words)
}

func trimLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}

// Table is the sparse frequency table: mask -> number of distinct words
// holding exactly that membership mask. The sum of all counts equals
// the size of the union of the selected sources.
type Table map[Mask]int

// WordCount returns the sum of all counts, i.e. the union size.
func (t Table) WordCount() int {
	total := 0
	for _, c := range t {
		total += c
	}
	return total
}
