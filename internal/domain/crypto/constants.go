package crypto

// OperationEncryption represents the encryption operation type
const OperationEncryption = "encryption"

// AlgorithmThreefish represents the Threefish symmetric encryption algorithm
const AlgorithmThreefish = "Threefish"

// KeyTypeSymmetric represents a symmetric key
const KeyTypeSymmetric = "symmetric"

// ThreefishKeySize256 is the Threefish-256 key size in bytes
const ThreefishKeySize256 = 32

// ThreefishKeySize512 is the Threefish-512 key size in bytes
const ThreefishKeySize512 = 64

// ThreefishKeySize1024 is the Threefish-1024 key size in bytes
const ThreefishKeySize1024 = 128

// ThreefishTweakSize is the tweak size in bytes, shared by all variants
const ThreefishTweakSize = 16
