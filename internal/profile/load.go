package profile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultYAML []byte

// ErrInvalid is returned when a decoded profile is missing required content.
var ErrInvalid = errors.New("invalid profile")

// Default decodes the profile compiled into the binary.
func Default() (Profile, error) {
	return Parse(defaultYAML)
}

// Load reads and decodes a profile from a YAML file.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document into a Profile and validates it. Unknown
// keys are rejected so a typo does not silently drop a section.
func Parse(data []byte) (Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("decoding profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks the fields the page cannot render without.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if p.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalid)
	}
	for i, c := range p.Skills {
		if c.Name == "" {
			return fmt.Errorf("%w: skill category %d has no name", ErrInvalid, i)
		}
	}
	return nil
}

// UnmarshalYAML decodes a mapping of category -> labels while keeping the
// key order of the document.
func (s *Skills) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: skills must be a mapping of category to labels", node.Line)
	}

	out := make(Skills, 0, len(node.Content)/2)
	seen := make(map[string]struct{}, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if _, dup := seen[key.Value]; dup {
			return fmt.Errorf("line %d: skills %q already defined", key.Line, key.Value)
		}
		seen[key.Value] = struct{}{}

		var labels []string
		if err := val.Decode(&labels); err != nil {
			return fmt.Errorf("line %d: skills %q: %w", val.Line, key.Value, err)
		}
		out = append(out, SkillCategory{Name: key.Value, Labels: labels})
	}

	*s = out
	return nil
}

// MarshalYAML writes the categories back as an ordered mapping.
func (s Skills) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range s {
		var val yaml.Node
		if err := val.Encode(c.Labels); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: c.Name},
			&val,
		)
	}
	return node, nil
}
