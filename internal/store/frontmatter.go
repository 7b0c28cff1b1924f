package store

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"
)

var ErrFrontMatter = errors.New("front matter is not a mapping")

var frontMatterBlock = regexp.MustCompile(`(?s)\A---\r?\n(.*?)\r?\n?---[ \t]*(?:\r?\n|\z)`)

type frontMatter struct {
	Tags       []string `yaml:"tags"`
	Pinned     bool     `yaml:"pinned"`
	Markdown   bool     `yaml:"markdown"`
	PublishURL string   `yaml:"publish_url"`
	Modified   string   `yaml:"modified"`
	Created    string   `yaml:"created"`
}

// splitFrontMatter separates the YAML header from the note body. Content
// without a header is returned unchanged.
func splitFrontMatter(content []byte) (header, body []byte, ok bool) {
	loc := frontMatterBlock.FindSubmatchIndex(content)
	if loc == nil {
		return nil, content, false
	}
	return content[loc[2]:loc[3]], content[loc[1]:], true
}

func parseFrontMatter(header []byte) (frontMatter, error) {
	var fm frontMatter
	if len(bytes.TrimSpace(header)) == 0 {
		return fm, nil
	}
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return frontMatter{}, fmt.Errorf("parse front matter: %w", err)
	}
	return fm, nil
}

// parseDate accepts any layout dateparse understands. Empty or unparseable
// values return the fallback.
func parseDate(value string, fallback time.Time) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return fallback
	}
	return t
}

// setFrontMatterField rewrites one key of the header, keeping every other
// key and its order. A false value removes the key.
func setFrontMatterField(content []byte, key string, value bool) ([]byte, error) {
	header, body, _ := splitFrontMatter(content)

	var doc yaml.Node
	if len(bytes.TrimSpace(header)) > 0 {
		if err := yaml.Unmarshal(header, &doc); err != nil {
			return nil, fmt.Errorf("parse front matter: %w", err)
		}
	}
	if len(doc.Content) == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
		}
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, ErrFrontMatter
	}

	found := -1
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			found = i
			break
		}
	}

	switch {
	case value && found >= 0:
		mapping.Content[found+1] = boolNode(true)
	case value:
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			boolNode(true),
		)
	case found >= 0:
		mapping.Content = append(mapping.Content[:found], mapping.Content[found+2:]...)
	}

	if len(mapping.Content) == 0 {
		return body, nil
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("encode front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(out)
	buf.WriteString("---\n")
	buf.Write(body)
	return buf.Bytes(), nil
}

func boolNode(v bool) *yaml.Node {
	value := "false"
	if v {
		value = "true"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: value}
}
