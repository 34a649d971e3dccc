package moneytree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moneytree.log")
	l := NewLogger(LogConfig{Path: path, MaxSizeMB: 1})
	l.Printf("derive %s on %s", "m/0'/1", "bitcoin")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "derive m/0'/1 on bitcoin")
}

func TestNewLoggerDiscard(t *testing.T) {
	l := NewLogger(LogConfig{})
	require.NotNil(t, l)
	l.Printf("nothing happens")
}
