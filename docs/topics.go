// Package docs embeds the built-in user guides served by "spd topic".
package docs

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed *.md
var pages embed.FS

// GetAllTopics lists the guides in reading order, from worksheet layout to
// category classification. The readme is the index page, not a topic.
func GetAllTopics() []string {
	return []string{"schema", "grouping", "windowing", "classification"}
}

// GetTopic returns the markdown source of one guide.
func GetTopic(topic string) (string, error) {
	content, err := pages.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics stitches the named guides together, with "*" standing for
// every topic in reading order.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		names := []string{topic}
		if topic == "*" {
			names = GetAllTopics()
		}
		for _, name := range names {
			content, err := GetTopic(name)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
