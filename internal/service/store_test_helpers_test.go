package service

import (
	"path/filepath"
	"testing"

	"github.com/platelog/internal/db"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) (*NutritionStore, *gorm.DB) {
	t.Helper()

	gdb, err := db.Open(filepath.Join(t.TempDir(), "platelog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	return NewNutritionStore(gdb), gdb
}

func ptr(v float64) *float64 {
	return &v
}
