package config

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument_Success(t *testing.T) {
	// Arrange
	raw := []byte(`{
		"port": 4000,
		"motd": "Welcome!",
		"log": {"level": "info", "file": "mud.log"},
		"admins": ["seisatsu"],
		"debug": false,
		"banner": null
	}`)

	// Act
	store, err := parseDocument(raw)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"port", "motd", "log", "admins", "debug", "banner"}, slices.Collect(store.Keys()))

	port, _ := store.Get("port")
	assert.Equal(t, int64(4000), port)

	motd, _ := store.Get("motd")
	assert.Equal(t, "Welcome!", motd)

	logCfg, _ := store.Get("log")
	assert.Equal(t, map[string]any{"level": "info", "file": "mud.log"}, logCfg)

	admins, _ := store.Get("admins")
	assert.Equal(t, []any{"seisatsu"}, admins)

	debug, _ := store.Get("debug")
	assert.Equal(t, false, debug)

	banner, ok := store.Get("banner")
	assert.True(t, ok)
	assert.Nil(t, banner)
}

func TestParseDocument_EmptyObject(t *testing.T) {
	store, err := parseDocument([]byte(`{}`))

	require.NoError(t, err)
	assert.Zero(t, store.Len())
}

func TestParseDocument_DuplicateKeys(t *testing.T) {
	store, err := parseDocument([]byte(`{"a": 1, "b": 2, "a": 3}`))

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, slices.Collect(store.Keys()))
	a, _ := store.Get("a")
	assert.Equal(t, int64(3), a)
}

func TestParseDocument_LargeInteger(t *testing.T) {
	store, err := parseDocument([]byte(`{"id": 9007199254740993, "huge": 123456789012345678901234567890}`))

	require.NoError(t, err)
	id, _ := store.Get("id")
	assert.Equal(t, int64(9007199254740993), id)
	huge, _ := store.Get("huge")
	assert.Equal(t, json.Number("123456789012345678901234567890"), huge)
}

func TestParseDocument_Numbers(t *testing.T) {
	store, err := parseDocument([]byte(`{
		"ratio": 0.5,
		"exp": 1e3,
		"negative": -42,
		"nested": {"ids": [1, 9007199254740993], "scale": 2.5}
	}`))

	require.NoError(t, err)
	ratio, _ := store.Get("ratio")
	assert.Equal(t, 0.5, ratio)
	exp, _ := store.Get("exp")
	assert.Equal(t, 1000.0, exp)
	negative, _ := store.Get("negative")
	assert.Equal(t, int64(-42), negative)
	nested, _ := store.Get("nested")
	assert.Equal(t, map[string]any{
		"ids":   []any{int64(1), int64(9007199254740993)},
		"scale": 2.5,
	}, nested)
}

func TestParseDocument_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "empty input", raw: ``, wantErr: errInvalidJSON},
		{name: "truncated object", raw: `{"a": 1`, wantErr: errInvalidJSON},
		{name: "unquoted key", raw: `{ this is not json }`, wantErr: errInvalidJSON},
		{name: "trailing garbage", raw: `{"a": 1} x`, wantErr: errInvalidJSON},
		{name: "invalid utf-8 in string", raw: "{\"a\": \"\xff\xfe\"}", wantErr: errInvalidJSON},
		{name: "array document", raw: `[1, 2, 3]`, wantErr: errNotAnObject},
		{name: "scalar document", raw: `42`, wantErr: errNotAnObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := parseDocument([]byte(tt.raw))

			assert.Nil(t, store)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
