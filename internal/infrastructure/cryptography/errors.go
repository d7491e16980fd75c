package cryptography

import "errors"

// Sentinel errors for the symmetric cipher pipeline. Callers are expected to
// match them with errors.Is; detailed messages are wrapped around them.
var (
	// ErrInvalidArgument indicates a wrong key, tweak, IV or buffer length,
	// or input that is not block aligned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCipherClosed indicates use of a cipher whose key material has
	// already been zeroed via Close.
	ErrCipherClosed = errors.New("cipher has been closed")

	// ErrStreamFinalized indicates use of a symmetric stream after Final.
	ErrStreamFinalized = errors.New("stream has already been finalized")

	// ErrInvalidPadding indicates absent, malformed or inconsistent padding
	// detected while unpadding a fully decrypted message.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrUnsupportedMode indicates an unrecognized cipher mode value.
	ErrUnsupportedMode = errors.New("unsupported cipher mode")
)
