package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDiskRoundTrip(t *testing.T) {
	d := &localDisk{root: t.TempDir(), baseURL: "http://localhost:8080/static"}

	require.NoError(t, d.Put("products/apples.webp", []byte("webp-bytes")))
	assert.True(t, d.Exists("products/apples.webp"))

	data, err := d.Get("products/apples.webp")
	require.NoError(t, err)
	assert.Equal(t, []byte("webp-bytes"), data)

	rc, err := d.GetStream("products/apples.webp")
	require.NoError(t, err)
	streamed, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, []byte("webp-bytes"), streamed)

	assert.Equal(t, "http://localhost:8080/static/products/apples.webp", d.URL("products/apples.webp"))

	require.NoError(t, d.Delete("products/apples.webp"))
	assert.False(t, d.Exists("products/apples.webp"))

	// Deleting a missing file is not an error.
	require.NoError(t, d.Delete("products/apples.webp"))
}

func TestLocalDiskGetMissing(t *testing.T) {
	d := &localDisk{root: t.TempDir(), baseURL: "http://localhost:8080/static"}

	_, err := d.Get("nope.webp")
	assert.Error(t, err)
}

func TestManagerDefaultDisk(t *testing.T) {
	d := &localDisk{root: t.TempDir(), baseURL: "http://cdn.test"}
	RegisterDisk("scratch", d)
	SetDefault("scratch")
	t.Cleanup(func() {
		RegisterDisk("local", &localDisk{root: t.TempDir(), baseURL: "http://localhost:8080/static"})
		SetDefault("local")
	})

	url, err := PutStream("products/box.bin", strings.NewReader("contents"))
	require.NoError(t, err)
	assert.Equal(t, "http://cdn.test/products/box.bin", url)

	assert.True(t, Exists("products/box.bin"))
	data, err := Get("products/box.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("contents"), data)

	require.NoError(t, Delete("products/box.bin"))
	assert.False(t, Exists("products/box.bin"))
}
