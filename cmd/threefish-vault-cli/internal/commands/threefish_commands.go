package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bslater/threefish-vault/internal/domain/crypto"
	"github.com/bslater/threefish-vault/internal/infrastructure/cryptography"
	"github.com/bslater/threefish-vault/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ThreefishCommandHandler encapsulates logic for handling Threefish operations via CLI.
type ThreefishCommandHandler struct {
	symmetricProcessor crypto.SymmetricProcessor
	logger             logger.Logger
}

// NewThreefishCommandHandler initializes and returns a ThreefishCommandHandler instance with
// configured logger and symmetric processor.
func NewThreefishCommandHandler() (*ThreefishCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	symmetricProcessor, err := cryptography.NewSymmetricProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create symmetric processor: %w", err)
	}

	return &ThreefishCommandHandler{
		symmetricProcessor: symmetricProcessor,
		logger:             loggerInstance,
	}, nil
}

// GenerateThreefishKeyCmd generates a Threefish key and persists it in a selected directory
func (commandHandler *ThreefishCommandHandler) GenerateThreefishKeyCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag ", err)
		return
	}

	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag ", err)
		return
	}

	uniqueID := uuid.New()

	secretKey, err := commandHandler.symmetricProcessor.GenerateKey(keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.bin", uniqueID))
	err = os.WriteFile(keyFilePath, secretKey, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Threefish key saved to ", keyFilePath)
}

// EncryptThreefishCmd encrypts a file using Threefish with a stored symmetric key
func (commandHandler *ThreefishCommandHandler) EncryptThreefishCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}
	symmetricKey, err := cmd.Flags().GetString("symmetric-key")
	if err != nil {
		commandHandler.logger.Error("invalid symmetric-key flag ", err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	key, err := os.ReadFile(filepath.Clean(symmetricKey))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encryptedData, err := commandHandler.symmetricProcessor.Encrypt(plainText, key)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFilePath, encryptedData, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data saved to ", outputFilePath)
}

// DecryptThreefishCmd decrypts a file using Threefish with a stored symmetric key
func (commandHandler *ThreefishCommandHandler) DecryptThreefishCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}
	symmetricKey, err := cmd.Flags().GetString("symmetric-key")
	if err != nil {
		commandHandler.logger.Error("invalid symmetric-key flag ", err)
		return
	}

	key, err := os.ReadFile(filepath.Clean(symmetricKey))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encryptedData, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	decryptedData, err := commandHandler.symmetricProcessor.Decrypt(encryptedData, key)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFilePath, decryptedData, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted data saved to ", outputFilePath)
}

// InitThreefishCommands registers Threefish-related commands
func InitThreefishCommands(rootCmd *cobra.Command) error {
	handler, err := NewThreefishCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create Threefish command handler %w", err)
	}

	var generateThreefishKeyCmd = &cobra.Command{
		Use:   "generate-threefish-key",
		Short: "Generate a Threefish key",
		Run:   handler.GenerateThreefishKeyCmd,
	}
	generateThreefishKeyCmd.Flags().IntP("key-size", "", 32, "Threefish key size in bytes: 32, 64 or 128")
	generateThreefishKeyCmd.Flags().StringP("key-dir", "", "", "Directory to store the encryption key")
	rootCmd.AddCommand(generateThreefishKeyCmd)

	var encryptThreefishFileCmd = &cobra.Command{
		Use:   "encrypt-threefish",
		Short: "Encrypt a file using Threefish",
		Run:   handler.EncryptThreefishCmd,
	}
	encryptThreefishFileCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptThreefishFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptThreefishFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	rootCmd.AddCommand(encryptThreefishFileCmd)

	var decryptThreefishFileCmd = &cobra.Command{
		Use:   "decrypt-threefish",
		Short: "Decrypt a file using Threefish",
		Run:   handler.DecryptThreefishCmd,
	}
	decryptThreefishFileCmd.Flags().StringP("input-file", "", "", "Input encrypted file path")
	decryptThreefishFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptThreefishFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	rootCmd.AddCommand(decryptThreefishFileCmd)

	return nil
}
