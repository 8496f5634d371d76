// Package securestore implements the on-device key-value store. State is
// JSON-serialized and sealed with XChaCha20-Poly1305 before it touches
// disk, standing in for the platform keychain the mobile client would use.
package securestore

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"vendorhub/config"
	"vendorhub/internal/domain/repository"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltFileName    = ".salt"
	saltSize        = 16
	pbkdf2Iterations = 4096
)

type fileStore struct {
	dir    string
	key    []byte
	logger *slog.Logger
}

// New selects a store implementation from config: the encrypted file store
// when storage is enabled, otherwise the no-op store.
func New(cfg *config.Config, logger *slog.Logger) (repository.KeyValueStore, error) {
	if cfg.Storage == nil || !cfg.Storage.Enabled {
		return NewNoopStore(logger), nil
	}

	return NewFileStore(cfg.Storage.Path, cfg.Storage.Passphrase, logger)
}

// NewFileStore creates an encrypted file-backed store rooted at dir. The
// sealing key is derived from the passphrase and a per-install random salt
// kept next to the data, so records do not survive a passphrase change.
func NewFileStore(dir, passphrase string, logger *slog.Logger) (repository.KeyValueStore, error) {
	if dir == "" {
		return nil, errors.New("storage path must be provided")
	}
	if passphrase == "" {
		return nil, errors.New("storage passphrase must be provided")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "create storage directory")
	}

	salt, err := loadOrCreateSalt(filepath.Join(dir, saltFileName))
	if err != nil {
		return nil, err
	}

	key := pbkdf2.Key([]byte(passphrase), salt, pbkdf2Iterations, chacha20poly1305.KeySize, sha256.New)

	return &fileStore{
		dir:    dir,
		key:    key,
		logger: logger,
	}, nil
}

func (s *fileStore) Set(ctx context.Context, key string, value any) error {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "marshal %q", key)
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return errors.Wrap(err, "init cipher")
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return errors.Wrap(err, "generate nonce")
	}

	sealed := aead.Seal(nonce, nonce, plaintext, []byte(key))

	// Atomic replace so a crash mid-write never leaves a torn record.
	path := s.path(key)
	tmp, err := os.CreateTemp(s.dir, key+".*")
	if err != nil {
		return errors.Wrapf(err, "create temp file for %q", key)
	}
	if _, err := tmp.Write(sealed); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "write %q", key)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "close %q", key)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "replace %q", key)
	}

	return nil
}

func (s *fileStore) Get(ctx context.Context, key string, out any) (bool, error) {
	sealed, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, errors.Wrapf(err, "read %q", key)
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return false, errors.Wrap(err, "init cipher")
	}

	if len(sealed) < chacha20poly1305.NonceSizeX {
		// Truncated record. Fail closed: treat as missing.
		s.logger.Debug("Discarding truncated record", slog.String("key", key))

		return false, nil
	}

	nonce, ciphertext := sealed[:chacha20poly1305.NonceSizeX], sealed[chacha20poly1305.NonceSizeX:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, []byte(key))
	if err != nil {
		// Wrong passphrase or corrupt record. Fail closed.
		s.logger.Debug("Discarding unreadable record", slog.String("key", key), slog.Any("error", err))

		return false, nil
	}

	if err := json.Unmarshal(plaintext, out); err != nil {
		s.logger.Debug("Discarding unparsable record", slog.String("key", key), slog.Any("error", err))

		return false, nil
	}

	return true, nil
}

func (s *fileStore) Remove(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove %q", key)
	}

	return nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".sealed")
}

func loadOrCreateSalt(path string) ([]byte, error) {
	salt, err := os.ReadFile(path)
	if err == nil && len(salt) == saltSize {
		return salt, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "read salt")
	}

	salt = make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "generate salt")
	}
	if err := os.WriteFile(path, salt, 0o600); err != nil {
		return nil, errors.Wrap(err, "write salt")
	}

	return salt, nil
}
