package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t,
		"reviewboard.db?_pragma=foreign_keys(1)",
		sqliteDSN("reviewboard.db"))
	assert.Equal(t,
		"file::memory:?_pragma=foreign_keys(1)",
		sqliteDSN("file::memory:"))
	assert.Equal(t,
		"file:test.db?cache=shared&_pragma=foreign_keys(1)",
		sqliteDSN("file:test.db?cache=shared"))

	// Already requested; left untouched.
	assert.Equal(t,
		"file::memory:?_pragma=foreign_keys(1)",
		sqliteDSN("file::memory:?_pragma=foreign_keys(1)"))
}
