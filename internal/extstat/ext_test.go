package extstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExt(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"a.txt", ".txt"},
		{"archive.tar.gz", ".gz"},
		{"Makefile", ""},
		{".bashrc", ""},
		{".config.yml", ".yml"},
		{"file.", ""},
		{"PHOTO.JPG", ".JPG"},
		{"dir.d/readme", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ext(tt.name))
		})
	}
}

func TestNormalizeExtensions(t *testing.T) {
	tests := []struct {
		name string
		list string
		want []string
	}{
		{"empty", "", []string{}},
		{"single bare", "bak", []string{".bak"}},
		{"already dotted", ".bak", []string{".bak"}},
		{"trimmed and mixed", " bak , .gif,jpg ", []string{".bak", ".gif", ".jpg"}},
		{"empty tokens dropped", "bak,, ,tmp,", []string{".bak", ".tmp"}},
		{"duplicates dropped", "bak,.bak,BAK", []string{".bak", ".BAK"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeExtensions(tt.list))
		})
	}
}
