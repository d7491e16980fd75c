// Package crypto defines the core interfaces and constants for performing symmetric cryptographic
// operations with the Threefish cipher family, including key generation, encryption and decryption.
package crypto
