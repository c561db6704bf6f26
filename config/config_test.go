package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_DatabaseConfigs_ConnectionString(t *testing.T) {
	cfg := DatabaseConfigs{
		Host:     "localhost",
		Port:     "3306",
		Database: "rutamapas",
		User:     "root",
		Password: "secret",
	}

	dsn := cfg.ConnectionString()
	require.Contains(t, dsn, "root:secret@tcp(localhost:3306)/rutamapas")
	require.Contains(t, dsn, "parseTime=True")

	// Matched-rows semantics, so clamped no-op updates count as affected.
	require.Contains(t, dsn, "clientFoundRows=true")
}
