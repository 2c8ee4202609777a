package concept

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `{
	"version": "1.0.0",
	"concepts": [
		{
			"id": "counting",
			"keywords": ["count", "how many"],
			"prerequisites": [],
			"difficulty": 0.1,
			"probability": 0.5,
			"template_params": {"a": [1, 10]}
		},
		{
			"id": "addition",
			"keywords": ["add", "plus"],
			"prerequisites": ["counting"],
			"difficulty": 0.2
		}
	]
}`

func TestParse_ValidDocument(t *testing.T) {
	concepts, err := Parse([]byte(validDoc))
	require.NoError(t, err)
	require.Len(t, concepts, 2)

	assert.Equal(t, "counting", concepts[0].ID)
	assert.Equal(t, []string{"count", "how many"}, concepts[0].Keywords)
	assert.Equal(t, 0.5, concepts[0].Probability)
	assert.Equal(t, ParamRange{1, 10}, concepts[0].TemplateParams["a"])

	assert.Equal(t, []string{"counting"}, concepts[1].Prerequisites)
	assert.Zero(t, concepts[1].Probability, "omitted probability means unset")
}

func TestParse_VersionWithPrefix(t *testing.T) {
	doc := `{"version": "v1.0.0", "concepts": [{"id": "a", "keywords": ["alpha"], "difficulty": 0.1}]}`
	concepts, err := Parse([]byte(doc))
	require.NoError(t, err, `a "v"-prefixed version must parse like the bare form`)
	assert.Len(t, concepts, 1)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed JSON", `{"version": "1.0.0",`},
		{"missing version", `{"concepts": [{"id": "a", "keywords": [], "difficulty": 0.1}]}`},
		{"missing id", `{"version": "1.0.0", "concepts": [{"keywords": [], "difficulty": 0.1}]}`},
		{"difficulty out of range", `{"version": "1.0.0", "concepts": [{"id": "a", "keywords": [], "difficulty": 2}]}`},
		{"empty concepts", `{"version": "1.0.0", "concepts": []}`},
		{"unknown field", `{"version": "1.0.0", "mystery": true, "concepts": [{"id": "a", "keywords": [], "difficulty": 0.1}]}`},
		{"garbage version", `{"version": "not-a-version", "concepts": [{"id": "a", "keywords": [], "difficulty": 0.1}]}`},
		{"unsupported major", `{"version": "2.0.0", "concepts": [{"id": "a", "keywords": [], "difficulty": 0.1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			var cfgErr *ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.json")
	require.Error(t, err)
}
