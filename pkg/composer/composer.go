package composer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pluqqy/schemadeck/pkg/models"
)

const SchemaContext = "https://schema.org"

// Node builds the JSON-LD node for one entry. Properties never override
// the @context or @type keywords.
func Node(entry models.SchemaEntry) map[string]any {
	node := make(map[string]any, len(entry.Properties)+2)
	for k, v := range entry.Properties {
		node[k] = v
	}
	node["@type"] = entry.Type
	return node
}

// ComposeEntry renders a single entry as an indented JSON-LD document
func ComposeEntry(entry models.SchemaEntry) (string, error) {
	if entry.Type == "" {
		return "", fmt.Errorf("schema %s has no @type", entry.Key)
	}

	node := Node(entry)
	node["@context"] = SchemaContext

	out, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to compose schema %s: %w", entry.Key, err)
	}
	return string(out), nil
}

// ComposeGraph renders every entry of an item as one @graph document. The
// primary entry, if any, comes first; the rest keep collection order.
func ComposeGraph(schemas models.Collection) (string, error) {
	if schemas.IsEmpty() {
		return "", fmt.Errorf("collection has no schemas")
	}

	ordered := make([]models.SchemaEntry, 0, schemas.Len())
	primary, hasPrimary := schemas.Primary()
	if hasPrimary {
		ordered = append(ordered, primary)
	}
	for _, e := range schemas.Entries() {
		if hasPrimary && e.Key == primary.Key {
			continue
		}
		ordered = append(ordered, e)
	}

	graph := make([]map[string]any, 0, len(ordered))
	for _, e := range ordered {
		if e.Type == "" {
			return "", fmt.Errorf("schema %s has no @type", e.Key)
		}
		graph = append(graph, Node(e))
	}

	out, err := json.MarshalIndent(map[string]any{
		"@context": SchemaContext,
		"@graph":   graph,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to compose graph: %w", err)
	}
	return string(out), nil
}

// ScriptTag wraps a composed document in the HTML element pages embed it with
func ScriptTag(document string) string {
	var b strings.Builder
	b.WriteString(`<script type="application/ld+json">`)
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(document))
	b.WriteString("\n</script>\n")
	return b.String()
}
