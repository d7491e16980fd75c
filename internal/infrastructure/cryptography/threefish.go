package cryptography

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Block and tweak sizes in bytes for the Threefish cipher family.
const (
	Threefish256BlockSize  = 32
	Threefish512BlockSize  = 64
	Threefish1024BlockSize = 128
	ThreefishTweakSize     = 16
)

// keyScheduleParity is the constant folded into the key schedule parity word.
const keyScheduleParity uint64 = 0x1BD11BDAA9FC1A22

// threefishVariant holds the structural constants of one cipher variant. The
// engine is fully parameterized by it; there is no per-variant code path.
type threefishVariant struct {
	name      string
	words     int
	rounds    int
	rotations [8][]int
	perm      []int
	invPerm   []int
}

var (
	threefish256 = &threefishVariant{
		name:   "Threefish-256",
		words:  4,
		rounds: 72,
		rotations: [8][]int{
			{14, 16},
			{52, 57},
			{23, 40},
			{5, 37},
			{25, 33},
			{46, 12},
			{58, 22},
			{32, 32},
		},
		perm: []int{0, 3, 2, 1},
	}

	threefish512 = &threefishVariant{
		name:   "Threefish-512",
		words:  8,
		rounds: 72,
		rotations: [8][]int{
			{46, 36, 19, 37},
			{33, 27, 14, 42},
			{17, 49, 36, 39},
			{44, 9, 54, 56},
			{39, 30, 34, 24},
			{13, 50, 10, 17},
			{25, 29, 39, 43},
			{8, 35, 56, 22},
		},
		perm: []int{2, 1, 4, 7, 6, 5, 0, 3},
	}

	threefish1024 = &threefishVariant{
		name:   "Threefish-1024",
		words:  16,
		rounds: 80,
		rotations: [8][]int{
			{24, 13, 8, 47, 8, 17, 22, 37},
			{38, 19, 10, 55, 49, 18, 23, 52},
			{33, 4, 51, 13, 34, 41, 59, 17},
			{5, 20, 48, 41, 47, 28, 16, 25},
			{41, 9, 37, 31, 12, 47, 44, 30},
			{16, 34, 56, 51, 4, 53, 42, 41},
			{31, 44, 47, 46, 19, 42, 44, 25},
			{9, 48, 35, 52, 23, 31, 37, 20},
		},
		perm: []int{0, 9, 2, 13, 6, 11, 4, 15, 10, 7, 12, 3, 14, 5, 8, 1},
	}
)

func init() {
	for _, v := range []*threefishVariant{threefish256, threefish512, threefish1024} {
		v.invPerm = make([]int, v.words)
		for i, p := range v.perm {
			v.invPerm[p] = i
		}
	}
}

// Threefish is a tweakable block cipher with a 32, 64 or 128 byte block.
// The key and tweak schedules are derived once at construction; Encrypt and
// Decrypt are pure transforms over a single block. An instance is not safe
// for concurrent use. Close zeroes the schedules and must be called on every
// exit path once the cipher is no longer needed.
type Threefish struct {
	variant *threefishVariant
	ks      []uint64
	ts      []uint64
	closed  bool
}

// NewThreefish256 creates a Threefish-256 cipher from a 32-byte key and a
// 16-byte tweak.
func NewThreefish256(key, tweak []byte) (*Threefish, error) {
	return newThreefish(threefish256, key, tweak)
}

// NewThreefish512 creates a Threefish-512 cipher from a 64-byte key and a
// 16-byte tweak.
func NewThreefish512(key, tweak []byte) (*Threefish, error) {
	return newThreefish(threefish512, key, tweak)
}

// NewThreefish1024 creates a Threefish-1024 cipher from a 128-byte key and a
// 16-byte tweak.
func NewThreefish1024(key, tweak []byte) (*Threefish, error) {
	return newThreefish(threefish1024, key, tweak)
}

// NewThreefish selects the cipher variant from the key length (32, 64 or
// 128 bytes) and creates it with the given 16-byte tweak.
func NewThreefish(key, tweak []byte) (*Threefish, error) {
	switch len(key) {
	case Threefish256BlockSize:
		return newThreefish(threefish256, key, tweak)
	case Threefish512BlockSize:
		return newThreefish(threefish512, key, tweak)
	case Threefish1024BlockSize:
		return newThreefish(threefish1024, key, tweak)
	default:
		return nil, fmt.Errorf("%w: key must be %d, %d or %d bytes, got %d",
			ErrInvalidArgument, Threefish256BlockSize, Threefish512BlockSize, Threefish1024BlockSize, len(key))
	}
}

func newThreefish(variant *threefishVariant, key, tweak []byte) (*Threefish, error) {
	if len(key) != variant.words*8 {
		return nil, fmt.Errorf("%w: %s key must be %d bytes, got %d",
			ErrInvalidArgument, variant.name, variant.words*8, len(key))
	}
	if len(tweak) != ThreefishTweakSize {
		return nil, fmt.Errorf("%w: tweak must be %d bytes, got %d",
			ErrInvalidArgument, ThreefishTweakSize, len(tweak))
	}

	// Extended key schedule: the key words, the parity word, then the key
	// words repeated, so subkey injection never needs a modular index.
	ks := make([]uint64, 2*variant.words+1)
	parity := keyScheduleParity
	for i := 0; i < variant.words; i++ {
		ks[i] = binary.LittleEndian.Uint64(key[8*i:])
		parity ^= ks[i]
	}
	ks[variant.words] = parity
	copy(ks[variant.words+1:], ks[:variant.words])

	ts := make([]uint64, 5)
	ts[0] = binary.LittleEndian.Uint64(tweak[0:])
	ts[1] = binary.LittleEndian.Uint64(tweak[8:])
	ts[2] = ts[0] ^ ts[1]
	ts[3] = ts[0]
	ts[4] = ts[1]

	return &Threefish{
		variant: variant,
		ks:      ks,
		ts:      ts,
	}, nil
}

// BlockSize returns the cipher block size in bytes.
func (t *Threefish) BlockSize() int {
	return t.variant.words * 8
}

// Encrypt encrypts exactly one block from src into dst. Both buffers must be
// exactly BlockSize bytes; dst and src may alias.
func (t *Threefish) Encrypt(dst, src []byte) error {
	if err := t.checkBlock(dst, src); err != nil {
		return err
	}

	nw := t.variant.words
	v := make([]uint64, nw)
	tmp := make([]uint64, nw)
	for i := 0; i < nw; i++ {
		v[i] = binary.LittleEndian.Uint64(src[8*i:])
	}

	t.injectSubkey(v, 0)
	for d := 0; d < t.variant.rounds; d++ {
		rot := t.variant.rotations[d%8]
		for j := 0; j < nw/2; j++ {
			a, b := v[2*j], v[2*j+1]
			a += b
			b = bits.RotateLeft64(b, rot[j]) ^ a
			v[2*j], v[2*j+1] = a, b
		}
		copy(tmp, v)
		for i := 0; i < nw; i++ {
			v[i] = tmp[t.variant.perm[i]]
		}
		if (d+1)%4 == 0 {
			t.injectSubkey(v, (d+1)/4)
		}
	}

	for i := 0; i < nw; i++ {
		binary.LittleEndian.PutUint64(dst[8*i:], v[i])
	}
	return nil
}

// Decrypt decrypts exactly one block from src into dst, mirroring Encrypt in
// reverse. Both buffers must be exactly BlockSize bytes; dst and src may alias.
func (t *Threefish) Decrypt(dst, src []byte) error {
	if err := t.checkBlock(dst, src); err != nil {
		return err
	}

	nw := t.variant.words
	v := make([]uint64, nw)
	tmp := make([]uint64, nw)
	for i := 0; i < nw; i++ {
		v[i] = binary.LittleEndian.Uint64(src[8*i:])
	}

	t.removeSubkey(v, t.variant.rounds/4)
	for d := t.variant.rounds - 1; d >= 0; d-- {
		copy(tmp, v)
		for i := 0; i < nw; i++ {
			v[i] = tmp[t.variant.invPerm[i]]
		}
		rot := t.variant.rotations[d%8]
		for j := 0; j < nw/2; j++ {
			a, b := v[2*j], v[2*j+1]
			b = bits.RotateLeft64(b^a, -rot[j])
			a -= b
			v[2*j], v[2*j+1] = a, b
		}
		if d%4 == 0 {
			t.removeSubkey(v, d/4)
		}
	}

	for i := 0; i < nw; i++ {
		binary.LittleEndian.PutUint64(dst[8*i:], v[i])
	}
	return nil
}

// injectSubkey adds subkey s into the block words. The last three words also
// absorb the tweak schedule and the subkey index.
func (t *Threefish) injectSubkey(v []uint64, s int) {
	nw := len(v)
	base := s % (nw + 1)
	for i := 0; i < nw; i++ {
		v[i] += t.ks[base+i]
	}
	v[nw-3] += t.ts[s%3]
	v[nw-2] += t.ts[s%3+1]
	v[nw-1] += uint64(s)
}

// removeSubkey subtracts subkey s from the block words.
func (t *Threefish) removeSubkey(v []uint64, s int) {
	nw := len(v)
	base := s % (nw + 1)
	v[nw-3] -= t.ts[s%3]
	v[nw-2] -= t.ts[s%3+1]
	v[nw-1] -= uint64(s)
	for i := 0; i < nw; i++ {
		v[i] -= t.ks[base+i]
	}
}

func (t *Threefish) checkBlock(dst, src []byte) error {
	if t.closed {
		return ErrCipherClosed
	}
	bs := t.variant.words * 8
	if len(src) != bs {
		return fmt.Errorf("%w: input block must be %d bytes, got %d", ErrInvalidArgument, bs, len(src))
	}
	if len(dst) != bs {
		return fmt.Errorf("%w: output block must be %d bytes, got %d", ErrInvalidArgument, bs, len(dst))
	}
	return nil
}

// Close zeroes the key and tweak schedules. It is idempotent; any Encrypt or
// Decrypt call after Close fails with ErrCipherClosed.
func (t *Threefish) Close() error {
	if t.closed {
		return nil
	}
	for i := range t.ks {
		t.ks[i] = 0
	}
	for i := range t.ts {
		t.ts[i] = 0
	}
	t.closed = true
	return nil
}
