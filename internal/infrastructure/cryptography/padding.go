package cryptography

import (
	"bytes"
	"crypto/rand"
	"fmt"
)

// PaddingScheme selects how a message is extended to a whole number of
// blocks before encryption, and how that extension is stripped after
// decryption. Schemes are stateless.
type PaddingScheme int

// Supported padding schemes. PaddingPKCS7 is the block-standard default.
const (
	PaddingNone PaddingScheme = iota
	PaddingPKCS7
	PaddingANSIX923
	PaddingISO10126
	PaddingZeros
)

// String returns the conventional name of the scheme.
func (p PaddingScheme) String() string {
	switch p {
	case PaddingNone:
		return "None"
	case PaddingPKCS7:
		return "PKCS7"
	case PaddingANSIX923:
		return "ANSIX923"
	case PaddingISO10126:
		return "ISO10126"
	case PaddingZeros:
		return "Zeros"
	default:
		return "Unknown"
	}
}

// ParsePaddingScheme maps a scheme name to its PaddingScheme value.
func ParsePaddingScheme(name string) (PaddingScheme, error) {
	switch name {
	case "None":
		return PaddingNone, nil
	case "PKCS7":
		return PaddingPKCS7, nil
	case "ANSIX923":
		return PaddingANSIX923, nil
	case "ISO10126":
		return PaddingISO10126, nil
	case "Zeros":
		return PaddingZeros, nil
	default:
		return 0, fmt.Errorf("%w: unknown padding scheme %q", ErrInvalidArgument, name)
	}
}

// RequiresUnpad reports whether decrypted data carries padding that must be
// removed. When true, the final ciphertext block has to be withheld during
// streaming decryption until the message end is known.
func (p PaddingScheme) RequiresUnpad() bool {
	return p != PaddingNone
}

// Pad appends padding so the result is a whole number of blocks. For PKCS7,
// ANSI X9.23 and ISO 10126 an already aligned input still gains a full extra
// block, which keeps unpadding unambiguous. Zeros pads only up to the next
// boundary and None rejects unaligned input.
func (p PaddingScheme) Pad(data []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 || blockSize > 255 {
		return nil, fmt.Errorf("%w: block size %d out of range", ErrInvalidArgument, blockSize)
	}

	padLen := blockSize - len(data)%blockSize

	switch p {
	case PaddingNone:
		if len(data)%blockSize != 0 {
			return nil, fmt.Errorf("%w: input length %d is not a multiple of the block size %d",
				ErrInvalidArgument, len(data), blockSize)
		}
		return data, nil
	case PaddingPKCS7:
		return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...), nil
	case PaddingANSIX923:
		padded := append(data, bytes.Repeat([]byte{0}, padLen-1)...)
		return append(padded, byte(padLen)), nil
	case PaddingISO10126:
		filler := make([]byte, padLen)
		if _, err := rand.Read(filler[:padLen-1]); err != nil {
			return nil, fmt.Errorf("failed to generate random padding: %w", err)
		}
		filler[padLen-1] = byte(padLen)
		return append(data, filler...), nil
	case PaddingZeros:
		if padLen == blockSize {
			return data, nil
		}
		return append(data, bytes.Repeat([]byte{0}, padLen)...), nil
	default:
		return nil, fmt.Errorf("%w: unknown padding scheme %d", ErrInvalidArgument, p)
	}
}

// Unpad strips the padding applied by Pad and returns the original message.
// It fails with ErrInvalidPadding when the padding bytes are absent,
// malformed or inconsistent with the scheme. Unpad must only be applied to a
// fully decrypted message, never to individual pre-final blocks.
func (p PaddingScheme) Unpad(data []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 || blockSize > 255 {
		return nil, fmt.Errorf("%w: block size %d out of range", ErrInvalidArgument, blockSize)
	}
	if len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: input length %d is not a multiple of the block size %d",
			ErrInvalidPadding, len(data), blockSize)
	}

	switch p {
	case PaddingNone:
		return data, nil
	case PaddingZeros:
		return bytes.TrimRight(data, "\x00"), nil
	case PaddingPKCS7, PaddingANSIX923, PaddingISO10126:
		// Tail-length schemes share the final-byte count; they differ only
		// in what the filler bytes must contain.
	default:
		return nil, fmt.Errorf("%w: unknown padding scheme %d", ErrInvalidArgument, p)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidPadding)
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, fmt.Errorf("%w: padding length byte %d out of range", ErrInvalidPadding, padLen)
	}

	filler := data[len(data)-padLen : len(data)-1]
	switch p {
	case PaddingPKCS7:
		for _, b := range filler {
			if b != byte(padLen) {
				return nil, fmt.Errorf("%w: inconsistent PKCS7 filler byte", ErrInvalidPadding)
			}
		}
	case PaddingANSIX923:
		for _, b := range filler {
			if b != 0 {
				return nil, fmt.Errorf("%w: non-zero ANSI X9.23 filler byte", ErrInvalidPadding)
			}
		}
	case PaddingISO10126:
		// Filler bytes are random; only the length byte is checked.
	}

	return data[:len(data)-padLen], nil
}
