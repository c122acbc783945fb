package composer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/schemadeck/pkg/models"
)

func TestComposeEntry(t *testing.T) {
	entry := models.SchemaEntry{
		Key:  "s1",
		Type: "Article",
		Properties: map[string]any{
			"headline": "Hello",
			"@type":    "Ignored",
			"author":   map[string]any{"@type": "Person", "name": "Ada"},
		},
	}

	out, err := ComposeEntry(entry)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, SchemaContext, doc["@context"])
	assert.Equal(t, "Article", doc["@type"])
	assert.Equal(t, "Hello", doc["headline"])
	assert.Equal(t, "Ada", doc["author"].(map[string]any)["name"])

	// entry properties are left untouched
	assert.Equal(t, "Ignored", entry.Properties["@type"])
}

func TestComposeEntryRequiresType(t *testing.T) {
	_, err := ComposeEntry(models.SchemaEntry{Key: "s1"})
	assert.Error(t, err)
}

func TestComposeGraphPrimaryFirst(t *testing.T) {
	schemas := models.NewCollection(
		models.SchemaEntry{Key: "a", Type: "Article"},
		models.SchemaEntry{Key: "b", Type: "Product", Metadata: models.Metadata{IsPrimary: true}},
		models.SchemaEntry{Key: "c", Type: "Event"},
	)

	out, err := ComposeGraph(schemas)
	require.NoError(t, err)

	var doc struct {
		Context string           `json:"@context"`
		Graph   []map[string]any `json:"@graph"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, SchemaContext, doc.Context)
	require.Len(t, doc.Graph, 3)

	var types []string
	for _, node := range doc.Graph {
		types = append(types, node["@type"].(string))
		assert.NotContains(t, node, "@context")
	}
	assert.Equal(t, []string{"Product", "Article", "Event"}, types)
}

func TestComposeGraphEmpty(t *testing.T) {
	_, err := ComposeGraph(models.Collection{})
	assert.Error(t, err)
}

func TestScriptTag(t *testing.T) {
	out := ScriptTag("{\n  \"@type\": \"Article\"\n}\n\n")
	assert.True(t, strings.HasPrefix(out, `<script type="application/ld+json">`+"\n{"))
	assert.True(t, strings.HasSuffix(out, "}\n</script>\n"))
}
