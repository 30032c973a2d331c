package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-task-keeper/internal/codec"
	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// fileMode restricts the store file to its owner.
const fileMode fs.FileMode = 0o600

// BackupSuffix is appended to the store path by [TaskFileStorage.Backup].
const BackupSuffix = ".bak"

// taskFileStorage is the default implementation of [TaskFileStorage]. It
// performs exactly one whole-file read or write per call and never retries.
type taskFileStorage struct {
	deriver crypto.KeyDeriver
	cipher  crypto.Cipher
	opts    []Option

	logger *logger.Logger
}

// NewTaskFileStorage constructs a [TaskFileStorage]. deriver turns the
// passphrase into a key, cipher seals the encoded table. opts are applied to
// every store returned by Load.
func NewTaskFileStorage(deriver crypto.KeyDeriver, cipher crypto.Cipher, logger *logger.Logger, opts ...Option) TaskFileStorage {
	return &taskFileStorage{
		deriver: deriver,
		cipher:  cipher,
		opts:    opts,
		logger:  logger,
	}
}

// Load implements [TaskFileStorage].
//
// Steps:
//  1. read the whole file (models.ErrIO, including a missing file);
//  2. with a passphrase, treat the content as a hex blob and open it
//     (models.ErrEncoding / models.ErrCrypto); there is no fallback to
//     plaintext;
//  3. check the plaintext is UTF-8 (models.ErrEncoding);
//  4. decode the table (models.ErrFormat);
//  5. build the store with next id = max id + 1 and [DefaultDisplayName].
func (f *taskFileStorage) Load(path, passphrase string) (*Store, error) {
	encrypted := passphrase != ""
	log := f.logger.With().Str("path", path).Bool("encrypted", encrypted).Logger()

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Msg("read store file")
		return nil, fmt.Errorf("%w: read %s: %w", models.ErrIO, path, err)
	}

	plaintext := raw
	if encrypted {
		key := f.deriver.DeriveKey([]byte(passphrase))
		plaintext, err = f.cipher.Open(strings.TrimSpace(string(raw)), key)
		if err != nil {
			log.Error().Err(err).Msg("open encrypted store")
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
	}

	if !utf8.Valid(plaintext) {
		log.Error().Msg("store content is not valid UTF-8")
		return nil, fmt.Errorf("%w: %s: %w", models.ErrEncoding, path, ErrInvalidUTF8)
	}

	tasks, err := codec.Decode(plaintext)
	if err != nil {
		log.Error().Err(err).Msg("decode store table")
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	s := FromTasks(DefaultDisplayName, tasks, f.opts...)
	log.Info().Int("tasks", s.Len()).Int64("next_id", s.NextID()).Msg("store loaded")
	return s, nil
}

// Save implements [TaskFileStorage]. The encrypted form is a single line of
// lowercase hex without a trailing newline. A failed write may leave a
// truncated or missing file behind.
func (f *taskFileStorage) Save(s *Store, path, passphrase string) error {
	encrypted := passphrase != ""
	log := f.logger.With().Str("path", path).Bool("encrypted", encrypted).Logger()

	table, err := codec.Encode(s.tasks)
	if err != nil {
		log.Error().Err(err).Msg("encode store table")
		return fmt.Errorf("encode %s: %w", path, err)
	}

	content := table
	if encrypted {
		key := f.deriver.DeriveKey([]byte(passphrase))
		blob, err := f.cipher.Seal(table, key)
		if err != nil {
			log.Error().Err(err).Msg("seal store table")
			return fmt.Errorf("seal %s: %w", path, err)
		}
		content = []byte(blob)
	}

	if err := os.WriteFile(path, content, fileMode); err != nil {
		log.Error().Err(err).Msg("write store file")
		return fmt.Errorf("%w: write %s: %w", models.ErrIO, path, err)
	}

	log.Info().Int("tasks", s.Len()).Msg("store saved")
	return nil
}

// Backup implements [TaskFileStorage]. An existing backup is replaced.
func (f *taskFileStorage) Backup(path string) (string, error) {
	backup := path + BackupSuffix
	log := f.logger.With().Str("path", path).Str("backup", backup).Logger()

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Msg("read store file for backup")
		return "", fmt.Errorf("%w: read %s: %w", models.ErrIO, path, err)
	}
	if err := os.WriteFile(backup, raw, fileMode); err != nil {
		log.Error().Err(err).Msg("write store backup")
		return "", fmt.Errorf("%w: write %s: %w", models.ErrIO, backup, err)
	}

	log.Info().Int("bytes", len(raw)).Msg("store backed up")
	return backup, nil
}

// IsNotExist reports whether err was caused by the store file not existing,
// which callers treat as "no prior store".
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
