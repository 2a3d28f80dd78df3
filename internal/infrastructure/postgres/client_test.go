package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fastygo/furnish/internal/config"
)

func TestConnString(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
		want string
	}{
		{
			name: "url wins",
			cfg:  config.DatabaseConfig{URL: "postgres://a@b/c", Host: "ignored"},
			want: "postgres://a@b/c",
		},
		{
			name: "assembled",
			cfg:  config.DatabaseConfig{Host: "db", Port: "5432", Name: "furnish", User: "app", Password: "secret", SSLMode: "disable"},
			want: "postgres://app:secret@db:5432/furnish?sslmode=disable",
		},
		{
			name: "escaped password",
			cfg:  config.DatabaseConfig{Host: "db", Port: "5432", Name: "furnish", User: "app", Password: "p@ss/word"},
			want: "postgres://app:p%40ss%2Fword@db:5432/furnish",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConnString(tt.cfg))
		})
	}
}
