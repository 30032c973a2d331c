package store

// TaskFileStorage persists a [Store] as a single, optionally encrypted file.
//
// An empty passphrase disables encryption. The same passphrase must be used
// for Load and Save within one process; there is no re-keying.
type TaskFileStorage interface {
	// Load reads path and reconstructs the store. Errors wrap one of
	// models.ErrIO, models.ErrEncoding, models.ErrCrypto or models.ErrFormat.
	Load(path, passphrase string) (*Store, error)

	// Save writes the store to path, replacing any previous content.
	// Errors wrap models.ErrIO, models.ErrCrypto or models.ErrFormat.
	Save(s *Store, path, passphrase string) error

	// Backup copies the current content of path, byte for byte, next to it
	// with the [BackupSuffix] and returns the backup path. Errors wrap
	// models.ErrIO.
	Backup(path string) (string, error)
}
