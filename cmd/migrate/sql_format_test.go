package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_CarryUpAndDownSections(t *testing.T) {
	dir := migrationsPath(t)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	checked := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".sql" {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)

		s := string(b)
		assert.Contains(t, s, "-- +goose Up", e.Name())
		assert.Contains(t, s, "-- +goose Down", e.Name())
		assert.Less(t, strings.Index(s, "-- +goose Up"), strings.Index(s, "-- +goose Down"),
			"%s: Up section must precede Down", e.Name())
		checked++
	}
	assert.NotZero(t, checked, "no .sql migrations found")
}
