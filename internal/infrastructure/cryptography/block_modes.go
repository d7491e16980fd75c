package cryptography

import (
	"fmt"
)

// BlockCipher is the single-block transform consumed by the chaining modes.
type BlockCipher interface {
	// BlockSize returns the cipher block size in bytes.
	BlockSize() int

	// Encrypt encrypts exactly one block from src into dst.
	Encrypt(dst, src []byte) error

	// Decrypt decrypts exactly one block from src into dst.
	Decrypt(dst, src []byte) error
}

// CipherMode selects how the block cipher is chained across a message.
type CipherMode int

// Supported chaining modes.
const (
	ModeECB CipherMode = iota
	ModeCBC
	ModeCFB
	ModeOFB
	ModeCTR
)

// String returns the conventional name of the mode.
func (m CipherMode) String() string {
	switch m {
	case ModeECB:
		return "ECB"
	case ModeCBC:
		return "CBC"
	case ModeCFB:
		return "CFB"
	case ModeOFB:
		return "OFB"
	case ModeCTR:
		return "CTR"
	default:
		return "Unknown"
	}
}

// RequiresIV reports whether the mode needs an IV or initial counter.
func (m CipherMode) RequiresIV() bool {
	return m != ModeECB
}

// ParseCipherMode maps a mode name to its CipherMode value.
func ParseCipherMode(name string) (CipherMode, error) {
	switch name {
	case "ECB":
		return ModeECB, nil
	case "CBC":
		return ModeCBC, nil
	case "CFB":
		return ModeCFB, nil
	case "OFB":
		return ModeOFB, nil
	case "CTR":
		return ModeCTR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
	}
}

// BlockModeTransform applies a block cipher across a sequence of whole
// blocks, carrying the chaining state between calls. A transform owns exactly
// one chaining register; concurrent calls on one instance are unsafe, but a
// single instance may be reused sequentially over a long stream.
type BlockModeTransform interface {
	// Transform processes src into dst and returns the number of bytes
	// written. src must be a positive multiple of the cipher block size and
	// dst at least as long as src; dst and src may alias. The chaining state
	// is only mutated once the lengths have been validated.
	Transform(dst, src []byte, encrypt bool) (int, error)
}

// NewBlockModeTransform constructs the chaining transform for the given mode.
// Modes other than ECB require an IV (the initial counter for CTR) of exactly
// one block; ECB rejects any IV. Unrecognized modes fail with
// ErrUnsupportedMode.
func NewBlockModeTransform(mode CipherMode, cipher BlockCipher, iv []byte) (BlockModeTransform, error) {
	if cipher == nil {
		return nil, fmt.Errorf("%w: cipher cannot be nil", ErrInvalidArgument)
	}

	bs := cipher.BlockSize()
	if mode.RequiresIV() {
		if len(iv) != bs {
			return nil, fmt.Errorf("%w: %s requires an IV of %d bytes, got %d",
				ErrInvalidArgument, mode, bs, len(iv))
		}
	} else if iv != nil {
		return nil, fmt.Errorf("%w: %s does not use an IV", ErrInvalidArgument, mode)
	}

	register := make([]byte, bs)
	copy(register, iv)

	switch mode {
	case ModeECB:
		return &ecbTransform{cipher: cipher}, nil
	case ModeCBC:
		return &cbcTransform{cipher: cipher, register: register, scratch: make([]byte, bs)}, nil
	case ModeCFB:
		return &cfbTransform{cipher: cipher, register: register, keystream: make([]byte, bs)}, nil
	case ModeOFB:
		return &ofbTransform{cipher: cipher, register: register}, nil
	case ModeCTR:
		return &ctrTransform{cipher: cipher, counter: register, keystream: make([]byte, bs)}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMode, mode)
	}
}

// checkTransformArgs validates the common Transform length contract.
func checkTransformArgs(dst, src []byte, blockSize int) error {
	if len(src) == 0 || len(src)%blockSize != 0 {
		return fmt.Errorf("%w: input length %d must be a positive multiple of the block size %d",
			ErrInvalidArgument, len(src), blockSize)
	}
	if len(dst) < len(src) {
		return fmt.Errorf("%w: output buffer of %d bytes is smaller than the %d byte input",
			ErrInvalidArgument, len(dst), len(src))
	}
	return nil
}

type ecbTransform struct {
	cipher BlockCipher
}

func (t *ecbTransform) Transform(dst, src []byte, encrypt bool) (int, error) {
	bs := t.cipher.BlockSize()
	if err := checkTransformArgs(dst, src, bs); err != nil {
		return 0, err
	}

	for pos := 0; pos < len(src); pos += bs {
		var err error
		if encrypt {
			err = t.cipher.Encrypt(dst[pos:pos+bs], src[pos:pos+bs])
		} else {
			err = t.cipher.Decrypt(dst[pos:pos+bs], src[pos:pos+bs])
		}
		if err != nil {
			return 0, err
		}
	}
	return len(src), nil
}

type cbcTransform struct {
	cipher   BlockCipher
	register []byte
	scratch  []byte
}

func (t *cbcTransform) Transform(dst, src []byte, encrypt bool) (int, error) {
	bs := t.cipher.BlockSize()
	if err := checkTransformArgs(dst, src, bs); err != nil {
		return 0, err
	}

	for pos := 0; pos < len(src); pos += bs {
		in := src[pos : pos+bs]
		out := dst[pos : pos+bs]
		if encrypt {
			xorBytes(out, in, t.register)
			if err := t.cipher.Encrypt(out, out); err != nil {
				return 0, err
			}
			copy(t.register, out)
		} else {
			// The register must be captured from the original ciphertext
			// before dst is written, so that dst may alias src.
			copy(t.scratch, in)
			if err := t.cipher.Decrypt(out, in); err != nil {
				return 0, err
			}
			xorBytes(out, out, t.register)
			copy(t.register, t.scratch)
		}
	}
	return len(src), nil
}

type cfbTransform struct {
	cipher    BlockCipher
	register  []byte
	keystream []byte
}

func (t *cfbTransform) Transform(dst, src []byte, encrypt bool) (int, error) {
	bs := t.cipher.BlockSize()
	if err := checkTransformArgs(dst, src, bs); err != nil {
		return 0, err
	}

	for pos := 0; pos < len(src); pos += bs {
		in := src[pos : pos+bs]
		out := dst[pos : pos+bs]
		// CFB always runs the cipher forward, for both directions.
		if err := t.cipher.Encrypt(t.keystream, t.register); err != nil {
			return 0, err
		}
		if encrypt {
			xorBytes(out, in, t.keystream)
			copy(t.register, out)
		} else {
			copy(t.register, in)
			xorBytes(out, in, t.keystream)
		}
	}
	return len(src), nil
}

type ofbTransform struct {
	cipher   BlockCipher
	register []byte
}

func (t *ofbTransform) Transform(dst, src []byte, encrypt bool) (int, error) {
	bs := t.cipher.BlockSize()
	if err := checkTransformArgs(dst, src, bs); err != nil {
		return 0, err
	}

	for pos := 0; pos < len(src); pos += bs {
		// The register feeds back the keystream, not the ciphertext, so
		// encryption and decryption are the same operation.
		if err := t.cipher.Encrypt(t.register, t.register); err != nil {
			return 0, err
		}
		xorBytes(dst[pos:pos+bs], src[pos:pos+bs], t.register)
	}
	return len(src), nil
}

type ctrTransform struct {
	cipher    BlockCipher
	counter   []byte
	keystream []byte
}

func (t *ctrTransform) Transform(dst, src []byte, encrypt bool) (int, error) {
	bs := t.cipher.BlockSize()
	if err := checkTransformArgs(dst, src, bs); err != nil {
		return 0, err
	}

	for pos := 0; pos < len(src); pos += bs {
		if err := t.cipher.Encrypt(t.keystream, t.counter); err != nil {
			return 0, err
		}
		xorBytes(dst[pos:pos+bs], src[pos:pos+bs], t.keystream)
		incrementCounter(t.counter)
	}
	return len(src), nil
}

// incrementCounter adds one to a little-endian counter block, propagating the
// carry byte-wise; an all-0xFF counter wraps to all zero.
func incrementCounter(counter []byte) {
	for i := 0; i < len(counter); i++ {
		counter[i]++
		if counter[i] != 0 {
			return
		}
	}
}

// xorBytes stores a^b in dst; all three slices must share a length.
func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
