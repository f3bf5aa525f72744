package services

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// CredentialService is the credential store collaborator: password hashing
// and verification live here and nowhere else.
type CredentialService struct{}

func NewCredentialService() *CredentialService {
	return &CredentialService{}
}

// HashPassword hashes a password using bcrypt
func (s *CredentialService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *CredentialService) VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets minimum requirements
// Minimum 8 characters
func (s *CredentialService) ValidatePassword(password string) bool {
	return len(password) >= 8
}

// HashToken hashes a session token using SHA256 for storage in database
func (s *CredentialService) HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var credentialService *CredentialService

// GetCredentialService returns the global credential service instance
func GetCredentialService() *CredentialService {
	if credentialService == nil {
		credentialService = NewCredentialService()
	}
	return credentialService
}
