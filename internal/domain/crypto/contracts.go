package crypto

// SymmetricProcessor handles Threefish symmetric encryption operations.
// Threefish is a tweakable block cipher; the processor composes it with a
// chaining mode and a padding scheme into one-shot message encryption.
// NOTE: the processor does NOT authenticate ciphertexts - integrity protection
// has to be layered on top when required.
type SymmetricProcessor interface {
	// GenerateKey generates a random Threefish key of the specified size.
	// Supported key sizes: 32 (Threefish-256), 64 (Threefish-512), 128 (Threefish-1024) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// Encrypt encrypts plaintext data using Threefish with the provided symmetric key.
	// A fresh tweak and IV are generated per message and carried inside the ciphertext.
	// Returns the encrypted ciphertext or an error if encryption fails.
	Encrypt(data, key []byte) ([]byte, error)

	// Decrypt decrypts ciphertext produced by Encrypt using the provided symmetric key.
	// Returns the original plaintext or an error if the ciphertext is truncated
	// or its padding is rejected.
	Decrypt(ciphertext, key []byte) ([]byte, error)
}
