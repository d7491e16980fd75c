package cryptography

import (
	"fmt"
)

// StreamDirection selects whether a SymmetricStream encrypts or decrypts.
type StreamDirection int

// Stream directions.
const (
	DirectionEncrypt StreamDirection = iota
	DirectionDecrypt
)

type streamState int

const (
	stateAccumulating streamState = iota
	stateFinalized
)

// SymmetricStream composes a block cipher, a chaining mode and a padding
// scheme into an incremental multi-call transform. Chunks of any size are
// accepted; whole blocks are forwarded to the chaining mode as soon as it is
// safe to do so and the remainder is buffered. During decryption with a
// depadding scheme the transform additionally withholds one block's worth of
// bytes, since padding validity is only knowable at the true final block.
//
// A stream is a two-state machine: it accumulates until Final is called,
// after which every further call fails with ErrStreamFinalized. Instances are
// not safe for concurrent use.
type SymmetricStream struct {
	transform BlockModeTransform
	padding   PaddingScheme
	direction StreamDirection
	blockSize int
	state     streamState
	pending   []byte
}

// NewSymmetricStream builds a streaming transform over cipher chained in the
// given mode, seeded with iv, applying padding at the message end.
func NewSymmetricStream(cipher BlockCipher, mode CipherMode, padding PaddingScheme, iv []byte, direction StreamDirection) (*SymmetricStream, error) {
	if direction != DirectionEncrypt && direction != DirectionDecrypt {
		return nil, fmt.Errorf("%w: unknown stream direction %d", ErrInvalidArgument, direction)
	}

	transform, err := NewBlockModeTransform(mode, cipher, iv)
	if err != nil {
		return nil, err
	}

	return &SymmetricStream{
		transform: transform,
		padding:   padding,
		direction: direction,
		blockSize: cipher.BlockSize(),
	}, nil
}

// Update feeds the next chunk of the message and returns whatever output can
// be produced safely at this point. The returned slice is freshly allocated
// and may be empty.
func (s *SymmetricStream) Update(p []byte) ([]byte, error) {
	if s.state == stateFinalized {
		return nil, ErrStreamFinalized
	}

	s.pending = append(s.pending, p...)

	n := s.processableBytes()
	if n == 0 {
		return nil, nil
	}

	out := make([]byte, n)
	if _, err := s.transform.Transform(out, s.pending[:n], s.direction == DirectionEncrypt); err != nil {
		return nil, err
	}
	s.pending = append(s.pending[:0], s.pending[n:]...)
	return out, nil
}

// processableBytes returns how much of the pending buffer may be transformed
// now. Encryption forwards every whole block; decryption with a depadding
// scheme re-buffers the trailing block's worth of bytes so the final block is
// never released before Final.
func (s *SymmetricStream) processableBytes() int {
	n := len(s.pending) - len(s.pending)%s.blockSize
	if s.direction == DirectionDecrypt && s.padding.RequiresUnpad() {
		if len(s.pending) <= s.blockSize {
			return 0
		}
		if len(s.pending)%s.blockSize == 0 {
			n -= s.blockSize
		}
	}
	return n
}

// Final consumes the last chunk (which may be empty), completes the message
// and moves the stream to its terminal state. On encryption the leftover
// bytes are padded and transformed; on decryption the withheld bytes are
// transformed and unpadded, failing with the padding scheme's error when the
// padding is rejected.
func (s *SymmetricStream) Final(p []byte) ([]byte, error) {
	if s.state == stateFinalized {
		return nil, ErrStreamFinalized
	}

	s.pending = append(s.pending, p...)
	defer func() {
		s.state = stateFinalized
		s.pending = nil
	}()

	if s.direction == DirectionEncrypt {
		padded, err := s.padding.Pad(s.pending, s.blockSize)
		if err != nil {
			return nil, err
		}
		if len(padded) == 0 {
			return nil, nil
		}
		out := make([]byte, len(padded))
		if _, err := s.transform.Transform(out, padded, true); err != nil {
			return nil, err
		}
		return out, nil
	}

	if len(s.pending)%s.blockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length is not a multiple of the block size %d",
			ErrInvalidArgument, s.blockSize)
	}
	if s.padding.RequiresUnpad() && len(s.pending) == 0 {
		return nil, fmt.Errorf("%w: missing final padding block", ErrInvalidPadding)
	}
	if len(s.pending) == 0 {
		return nil, nil
	}

	plain := make([]byte, len(s.pending))
	if _, err := s.transform.Transform(plain, s.pending, false); err != nil {
		return nil, err
	}
	return s.padding.Unpad(plain, s.blockSize)
}
