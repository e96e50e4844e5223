package template

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
)

// SetSiteName rewrites site_name in mkdocs.yml. The document is edited as a
// yaml node tree so every other key survives the round trip.
func SetSiteName(root, siteName string) error {
	path := filepath.Join(root, "mkdocs.yml")

	b, err := os.ReadFile(path)
	if err != nil {
		return &domain.OpError{
			Op:   "template.mkdocs",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return &domain.OpError{
			Op:   "template.mkdocs",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	setMappingValue(&doc, "site_name", siteName)

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return &domain.OpError{
			Op:   "template.mkdocs",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return &domain.OpError{
			Op:   "template.mkdocs",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// setMappingValue replaces (or appends) a scalar key in the document's
// top-level mapping.
func setMappingValue(doc *yaml.Node, key, value string) {
	mapping := doc
	if mapping.Kind == yaml.DocumentNode && len(mapping.Content) > 0 {
		mapping = mapping.Content[0]
	}
	if mapping.Kind != yaml.MappingNode {
		return
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content[i+1] = scalarNode(value)
			return
		}
	}

	mapping.Content = append(mapping.Content, scalarNode(key), scalarNode(value))
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: value,
	}
}
