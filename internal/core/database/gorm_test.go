package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	cases := []struct {
		name, in, user, pass, want string
	}{
		{
			name: "native dsn untouched",
			in:   "root:pw@tcp(127.0.0.1:3306)/lexcase?parseTime=true",
			want: "root:pw@tcp(127.0.0.1:3306)/lexcase?parseTime=true",
		},
		{
			name: "url form",
			in:   "mysql://root:pw@db:3306/lexcase",
			want: "root:pw@tcp(db:3306)/lexcase?charset=utf8mb4&parseTime=true",
		},
		{
			name: "jdbc with overrides",
			in:   "jdbc:mysql://db:3306/lexcase?useSSL=false&useUnicode=true",
			user: "app", pass: "secret",
			want: "app:secret@tcp(db:3306)/lexcase?charset=utf8mb4&parseTime=true&tls=false",
		},
		{name: "empty", in: "  ", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeMySQLDSN(tc.in, tc.user, tc.pass))
		})
	}
}

func TestMaskDSN(t *testing.T) {
	assert.Equal(t, "postgres://app:xxxxx@db:5432/lexcase", MaskDSN("postgres://app:secret@db:5432/lexcase"))
	assert.Equal(t, "root:****@tcp(db:3306)/lexcase", MaskDSN("root:pw@tcp(db:3306)/lexcase"))
	assert.Equal(t, "lexcase.db", MaskDSN("lexcase.db"))
}

func TestNewGorm_SQLiteMigrate(t *testing.T) {
	db, err := NewGorm(Opts{Driver: "sqlite", DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1, LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))
	require.NoError(t, Ping(db))
	for _, table := range []string{"users", "cases", "case_assignments"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestNewGorm_UnknownDriver(t *testing.T) {
	_, err := NewGorm(Opts{Driver: "oracle"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
