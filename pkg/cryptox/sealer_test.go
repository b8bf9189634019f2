package cryptox_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/vaultshare/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestSealOpen(t *testing.T) {
	sealer, err := cryptox.NewSealer([]byte("test-master-key-for-encryption-12345"))
	require.NoError(t, err)

	sealed, err := sealer.Seal("hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, sealed)
	require.NotContains(t, sealed, "hunter2")

	opened, err := sealer.Open(sealed)
	require.NoError(t, err)
	require.Equal(t, "hunter2", opened)
}

func TestSealProducesDistinctCiphertexts(t *testing.T) {
	sealer, err := cryptox.NewSealer([]byte("test-master-key-multiple-times-xyz"))
	require.NoError(t, err)

	first, err := sealer.Seal("same-secret")
	require.NoError(t, err)
	second, err := sealer.Seal("same-secret")
	require.NoError(t, err)
	require.NotEqual(t, first, second, "random nonce should change every ciphertext")

	for _, sealed := range []string{first, second} {
		opened, err := sealer.Open(sealed)
		require.NoError(t, err)
		require.Equal(t, "same-secret", opened)
	}
}

func TestOpenWithDifferentKeyFails(t *testing.T) {
	a, err := cryptox.NewSealer([]byte("key-a"))
	require.NoError(t, err)
	b, err := cryptox.NewSealer([]byte("key-b"))
	require.NoError(t, err)

	sealed, err := a.Seal("secret")
	require.NoError(t, err)

	_, err = b.Open(sealed)
	require.Error(t, err)
}

func TestOpenRejectsGarbage(t *testing.T) {
	sealer, err := cryptox.NewSealer([]byte("key"))
	require.NoError(t, err)

	t.Run("not base64", func(t *testing.T) {
		_, err := sealer.Open("!!!")
		require.Error(t, err)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := sealer.Open("AAAA")
		require.ErrorIs(t, err, cryptox.ErrCiphertextTooShort)
	})
}

func TestNewSealerRejectsEmptyMaterial(t *testing.T) {
	_, err := cryptox.NewSealer(nil)
	require.Error(t, err)
}

func TestLoadKeyMaterial(t *testing.T) {
	t.Run("file takes precedence", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "master.key")
		require.NoError(t, os.WriteFile(path, []byte("from-file\n"), 0o600))

		material, ephemeral, err := cryptox.LoadKeyMaterial(path, "from-env")
		require.NoError(t, err)
		require.False(t, ephemeral)
		require.Equal(t, []byte("from-file"), material)
	})

	t.Run("value used when no file", func(t *testing.T) {
		material, ephemeral, err := cryptox.LoadKeyMaterial("", "from-env")
		require.NoError(t, err)
		require.False(t, ephemeral)
		require.Equal(t, []byte("from-env"), material)
	})

	t.Run("ephemeral fallback", func(t *testing.T) {
		material, ephemeral, err := cryptox.LoadKeyMaterial("", "")
		require.NoError(t, err)
		require.True(t, ephemeral)
		require.Len(t, material, 32)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := cryptox.LoadKeyMaterial(filepath.Join(t.TempDir(), "nope"), "")
		require.Error(t, err)
	})
}
