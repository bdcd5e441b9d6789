// Package docs embeds the user documentation and serves it by topic, so the
// command line can print help pages without shipping separate files.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// GetTopic returns the content of one documentation topic. The special topic
// "*" expands to every topic in order.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(all...)
	}

	content, err := pages.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates the content of several topics.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics lists the available topics, sorted. The readme is the index
// page, not a topic.
func GetAllTopics() ([]string, error) {
	entries, err := fs.Glob(pages, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e, ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics, nil
}
