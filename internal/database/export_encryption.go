package database

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	exportKDFIterations = 210_000
	exportKDFSaltSize   = 16
)

type encryptedExport struct {
	Encrypted bool   `json:"encrypted"`
	Salt      string `json:"salt"`
	Nonce     string `json:"nonce"`
	Data      string `json:"data"`
}

func deriveExportKey(passphrase string, salt []byte) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, exportKDFIterations, 32, sha256.New)
}

func encryptData(payload []byte, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, errors.New("encrypt export: empty passphrase")
	}
	salt := make([]byte, exportKDFSaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(deriveExportKey(passphrase, salt))
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	ciphertext := gcm.Seal(nil, nonce, payload, nil)
	wrapped := encryptedExport{
		Encrypted: true,
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
		Data:      base64.StdEncoding.EncodeToString(ciphertext),
	}
	return json.Marshal(wrapped)
}

// DecryptExport unwraps a payload produced by an encrypted ExportAll.
func DecryptExport(payload []byte, passphrase string) ([]byte, error) {
	var wrapped encryptedExport
	if err := json.Unmarshal(payload, &wrapped); err != nil {
		return nil, fmt.Errorf("decrypt export: %w", err)
	}
	if !wrapped.Encrypted {
		return payload, nil
	}
	salt, err := base64.StdEncoding.DecodeString(wrapped.Salt)
	if err != nil {
		return nil, fmt.Errorf("decrypt export: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(wrapped.Nonce)
	if err != nil {
		return nil, fmt.Errorf("decrypt export: %w", err)
	}
	data, err := base64.StdEncoding.DecodeString(wrapped.Data)
	if err != nil {
		return nil, fmt.Errorf("decrypt export: %w", err)
	}
	block, err := aes.NewCipher(deriveExportKey(passphrase, salt))
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, errors.New("decrypt export: wrong passphrase or corrupted payload")
	}
	return plaintext, nil
}
