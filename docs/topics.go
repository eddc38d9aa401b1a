// Package docs holds the user manual of dash, one markdown file per topic.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Topic returns the content of a documentation topic. "*" is every topic.
func Topic(topic string) (string, error) {
	if topic == "*" {
		all, err := AllTopics()
		if err != nil {
			return "", err
		}
		return Topics(all...)
	}
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// Topics returns the content of several topics, one after the other.
func Topics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := Topic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// AllTopics returns the sorted names of all topics, except the readme.
func AllTopics() ([]string, error) {
	var topics []string
	err := fs.WalkDir(docs, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		base := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if base != "readme" {
			topics = append(topics, base)
		}
		return nil
	})
	slices.Sort(topics)
	return topics, err
}
