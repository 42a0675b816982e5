package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	src, err := Default()
	require.NoError(t, err)
	assert.Equal(t, DefaultURI, src.URL)
	assert.Equal(t, Embedded(), src.Raw)

	for _, name := range []string{"length", "mass", "volume", "time", "temperature"} {
		category, ok := src.Document.Categories[name]
		if assert.True(t, ok, "expected category %s", name) {
			assert.NotEmpty(t, category.Units)
		}
	}
	temperature := src.Document.Categories["temperature"]
	assert.Equal(t, "affine", temperature.Kind)
	assert.ElementsMatch(t, []string{"C", "F", "K"}, temperature.UnitKeys())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name      string
		fileName  string
		content   string
		expectErr bool
		category  string
	}{
		{
			name:     "json document",
			fileName: "units.json",
			content:  `{"categories":{"length":{"kind":"ratio","base":"m","units":{"m":{"factor":1},"km":{"factor":1000,"aliases":["kilometer"]}}}}}`,
			category: "length",
		},
		{
			name:     "yaml document",
			fileName: "units.yaml",
			content: `categories:
  mass:
    kind: ratio
    base: kg
    units:
      kg:
        factor: 1
      g:
        factor: 0.001
        aliases: [gram]
`,
			category: "mass",
		},
		{
			name:      "no categories",
			fileName:  "empty.json",
			content:   `{"categories":{}}`,
			expectErr: true,
		},
		{
			name:      "category without units",
			fileName:  "nounits.json",
			content:   `{"categories":{"length":{"kind":"ratio"}}}`,
			expectErr: true,
		},
		{
			name:      "malformed",
			fileName:  "bad.json",
			content:   `{"categories":`,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			location := filepath.Join(dir, tc.fileName)
			require.NoError(t, os.WriteFile(location, []byte(tc.content), 0o644))

			src, err := Load(context.Background(), location)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.content, string(src.Raw))
			assert.Contains(t, src.Document.Categories, tc.category)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_EmptyURLUsesEmbedded(t *testing.T) {
	src, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, Embedded(), src.Raw)
}
