package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const fileHeader = "# rangepick configuration. Every key can be overridden with a\n# RANGEPICK_ environment variable, e.g. RANGEPICK_LOCALE=en-US.\n"

// Write serializes cfg to path as YAML.
func Write(path string, cfg *Config) error {
	var buf strings.Builder
	buf.WriteString(fileHeader)

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Keys lists the settable config keys in dotted form.
var Keys = []string{
	"locale",
	"week_start",
	"mode",
	"min_date",
	"max_date",
	"placeholder",
	"quit_on_complete",
	"output.format",
	"output.color",
}

// SetValue updates one dotted key (e.g. "output.color") in an existing
// config file. It preserves the rest of the YAML structure and comments.
func SetValue(configPath, key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key '%s' (known keys: %s)", key, strings.Join(Keys, ", "))
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if root.Kind == 0 {
		// Empty file
		root = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fmt.Errorf("invalid YAML document structure")
	}

	node := root.Content[0]
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping at document root")
	}

	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		child := findMapValue(node, part)
		if child == nil {
			child = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			node.Content = append(node.Content, scalar(part), child)
		}
		if child.Kind != yaml.MappingNode {
			return fmt.Errorf("'%s' is not a mapping in config", part)
		}
		node = child
	}

	// Only quit_on_complete is a bool; everything else is a string and must
	// not be re-read as a timestamp or a number.
	tag, style := "!!str", yaml.Style(0)
	switch key {
	case "quit_on_complete":
		tag = ""
	case "min_date", "max_date":
		style = yaml.DoubleQuotedStyle
	}

	leaf := parts[len(parts)-1]
	if existing := findMapValue(node, leaf); existing != nil {
		existing.Kind = yaml.ScalarNode
		existing.Tag = tag
		existing.Style = style
		existing.Content = nil
		existing.Value = value
	} else {
		node.Content = append(node.Content, scalar(leaf), &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Style: style, Value: value})
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if err := os.WriteFile(configPath, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return valueNode
		}
	}

	return nil
}
