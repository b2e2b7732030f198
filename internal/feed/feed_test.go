package feed

import (
	"os"
	"path/filepath"
	"testing"

	dom "Loyalty/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<department>
  <store1>
    <depName> Fresh Grocer </depName>
    <description>Groceries and fresh produce</description>
    <webLink>https://freshgrocer.example</webLink>
    <promotion>Double points on weekends</promotion>
  </store1>
  <store2>
    <depName>Page Turner Books</depName>
    <description></description>
    <webLink>https://pageturner.example</webLink>
    <promotion>5 points per paperback</promotion>
  </store2>
</department>`

func TestParse(t *testing.T) {
	t.Parallel()

	stores, err := Parse([]byte(sampleFeed))
	require.NoError(t, err)
	require.Len(t, stores, 2)

	// The store id is the element's tag name; fields are trimmed.
	assert.Equal(t, dom.Store{
		ID:          "store1",
		Name:        "Fresh Grocer",
		Description: "Groceries and fresh produce",
		Website:     "https://freshgrocer.example",
		Promotion:   "Double points on weekends",
	}, stores[0])
	assert.Equal(t, "store2", stores[1].ID)
	assert.Empty(t, stores[1].Description)
}

func TestParseEmptyDepartment(t *testing.T) {
	t.Parallel()

	stores, err := Parse([]byte(`<department></department>`))
	require.NoError(t, err)
	assert.Empty(t, stores)
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`<department><store1>`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stores.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFeed), 0o644))

	stores, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, stores, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}
