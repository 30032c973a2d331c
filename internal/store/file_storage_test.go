package store

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStorage(opts ...Option) TaskFileStorage {
	return NewTaskFileStorage(crypto.NewSHA256Deriver(), crypto.NewAESGCMCipher(), logger.Nop(), opts...)
}

func scenarioStore(t *testing.T) *Store {
	t.Helper()
	s := New("groceries")
	milk, err := s.Add("Buy milk", "2% milk", models.Medium)
	require.NoError(t, err)
	require.Equal(t, int64(1), milk.ID)
	require.False(t, milk.Completed)

	rent, err := s.Add("Pay rent", "due 1st", models.Critical)
	require.NoError(t, err)
	require.Equal(t, int64(2), rent.ID)
	return s
}

func TestFileStorage_EncryptedScenario(t *testing.T) {
	fs := newTestFileStorage()
	path := filepath.Join(t.TempDir(), "tasks.csv")
	s := scenarioStore(t)

	require.NoError(t, fs.Save(s, path, "secret"))

	loaded, err := fs.Load(path, "secret")
	require.NoError(t, err)
	assert.Equal(t, s.All(), loaded.All())
	assert.Equal(t, int64(3), loaded.NextID())
	assert.Equal(t, DefaultDisplayName, loaded.Name())

	wrong, err := fs.Load(path, "wrong")
	require.Error(t, err)
	assert.Nil(t, wrong)
	assert.ErrorIs(t, err, models.ErrCrypto)

	plain, err := fs.Load(path, "")
	require.Error(t, err)
	assert.Nil(t, plain)
	assert.True(t, errors.Is(err, models.ErrEncoding) || errors.Is(err, models.ErrFormat))
}

func TestFileStorage_EncryptedFileIsSingleHexLine(t *testing.T) {
	fs := newTestFileStorage()
	path := filepath.Join(t.TempDir(), "tasks.csv")

	require.NoError(t, fs.Save(scenarioStore(t), path, "secret"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "\n")
	assert.Equal(t, strings.ToLower(string(raw)), string(raw))
	_, err = hex.DecodeString(string(raw))
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "Buy milk")
}

func TestFileStorage_PlainRoundTrip(t *testing.T) {
	fs := newTestFileStorage()
	path := filepath.Join(t.TempDir(), "tasks.csv")
	s := scenarioStore(t)
	require.NoError(t, s.Complete(1))

	require.NoError(t, fs.Save(s, path, ""))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,title,description,priority,completed\n"+
		"1,Buy milk,2% milk,Medium,true\n"+
		"2,Pay rent,due 1st,Critical,false\n", string(raw))

	loaded, err := fs.Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, s.All(), loaded.All())
	assert.Equal(t, int64(3), loaded.NextID())
}

func TestFileStorage_RoundTripPreservesOrderAfterRemoval(t *testing.T) {
	fs := newTestFileStorage()
	path := filepath.Join(t.TempDir(), "tasks.csv")

	s := New("x")
	for _, p := range []models.Priority{models.Low, models.Critical, models.High, models.Medium} {
		_, err := s.Add("t,"+p.String(), "multi\nline \"quoted\"", p)
		require.NoError(t, err)
	}
	require.NoError(t, s.Remove(4))
	_ = s.SortedByPriority()

	require.NoError(t, fs.Save(s, path, "p@ss"))
	loaded, err := fs.Load(path, "p@ss")
	require.NoError(t, err)

	assert.Equal(t, s.All(), loaded.All())
	assert.Equal(t, int64(4), loaded.NextID())
}

func TestFileStorage_PlainFileWithPassphrase(t *testing.T) {
	fs := newTestFileStorage()
	path := filepath.Join(t.TempDir(), "tasks.csv")
	require.NoError(t, fs.Save(scenarioStore(t), path, ""))

	loaded, err := fs.Load(path, "secret")
	require.Error(t, err)
	assert.Nil(t, loaded)
	assert.ErrorIs(t, err, models.ErrEncoding)
}

func TestFileStorage_ToleratesTrailingNewlineInHex(t *testing.T) {
	fs := newTestFileStorage()
	path := filepath.Join(t.TempDir(), "tasks.csv")
	require.NoError(t, fs.Save(scenarioStore(t), path, "secret"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, append(raw, '\n'), 0o600))

	loaded, err := fs.Load(path, "secret")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())
}

func TestFileStorage_LoadMissingFile(t *testing.T) {
	fs := newTestFileStorage()

	loaded, err := fs.Load(filepath.Join(t.TempDir(), "missing.csv"), "")
	require.Error(t, err)
	assert.Nil(t, loaded)
	assert.ErrorIs(t, err, models.ErrIO)
	assert.True(t, IsNotExist(err))
}

func TestFileStorage_LoadInvalidUTF8(t *testing.T) {
	fs := newTestFileStorage()
	path := filepath.Join(t.TempDir(), "tasks.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,title,description,priority,completed\n1,\xff\xfe,d,Low,false\n"), 0o600))

	loaded, err := fs.Load(path, "")
	require.Error(t, err)
	assert.Nil(t, loaded)
	assert.ErrorIs(t, err, models.ErrEncoding)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestFileStorage_EncryptedInvalidUTF8(t *testing.T) {
	fs := newTestFileStorage()
	path := filepath.Join(t.TempDir(), "tasks.csv")

	c := crypto.NewAESGCMCipher()
	blob, err := c.Seal([]byte{0xff, 0xfe, 0xfd}, crypto.NewSHA256Deriver().DeriveKey([]byte("secret")))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(blob), 0o600))

	_, err = fs.Load(path, "secret")
	assert.ErrorIs(t, err, models.ErrEncoding)
}

func TestFileStorage_LoadMalformedTable(t *testing.T) {
	fs := newTestFileStorage()
	path := filepath.Join(t.TempDir(), "tasks.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,title,description,priority,completed\n1,a,b,urgent,false\n"), 0o600))

	loaded, err := fs.Load(path, "")
	require.Error(t, err)
	assert.Nil(t, loaded)
	assert.ErrorIs(t, err, models.ErrFormat)
}

func TestFileStorage_LoadEmptyFile(t *testing.T) {
	fs := newTestFileStorage()
	path := filepath.Join(t.TempDir(), "tasks.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	loaded, err := fs.Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
	assert.Equal(t, int64(1), loaded.NextID())
}

func TestFileStorage_LoadAppliesOptions(t *testing.T) {
	fs := newTestFileStorage(WithMaxTasks(2))
	path := filepath.Join(t.TempDir(), "tasks.csv")
	require.NoError(t, fs.Save(scenarioStore(t), path, ""))

	loaded, err := fs.Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.MaxTasks())
	_, err = loaded.Add("third", "d", models.Low)
	assert.ErrorIs(t, err, ErrCapacityReached)
}

func TestFileStorage_SaveUnwritablePath(t *testing.T) {
	fs := newTestFileStorage()
	path := filepath.Join(t.TempDir(), "missing-dir", "tasks.csv")

	err := fs.Save(scenarioStore(t), path, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrIO)
}

func TestFileStorage_SaveOverwrites(t *testing.T) {
	fs := newTestFileStorage()
	path := filepath.Join(t.TempDir(), "tasks.csv")

	s := scenarioStore(t)
	require.NoError(t, fs.Save(s, path, "secret"))
	require.NoError(t, s.Remove(2))
	require.NoError(t, fs.Save(s, path, "secret"))

	loaded, err := fs.Load(path, "secret")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
}

func TestFileStorage_Backup(t *testing.T) {
	fs := newTestFileStorage()
	path := filepath.Join(t.TempDir(), "tasks.csv")
	content := []byte("id,title\n1,broken\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	backup, err := fs.Backup(path)
	require.NoError(t, err)
	assert.Equal(t, path+BackupSuffix, backup)

	got, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	info, err := os.Stat(backup)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// The original is left in place.
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestFileStorage_BackupMissingFile(t *testing.T) {
	fs := newTestFileStorage()
	path := filepath.Join(t.TempDir(), "tasks.csv")

	_, err := fs.Backup(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrIO)
	assert.True(t, IsNotExist(err))
}

func TestFileStorage_Argon2Deriver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.csv")
	argon := NewTaskFileStorage(crypto.NewArgon2Deriver(), crypto.NewAESGCMCipher(), logger.Nop())

	require.NoError(t, argon.Save(scenarioStore(t), path, "secret"))

	loaded, err := argon.Load(path, "secret")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())

	_, err = newTestFileStorage().Load(path, "secret")
	assert.ErrorIs(t, err, models.ErrCrypto)
}
