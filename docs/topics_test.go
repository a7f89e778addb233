package docs

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics keeps the documentation index in sync with the topic files:
// every topic listed in readme.md must load, and every topic file must be
// listed in readme.md.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	if len(listed) == 0 {
		t.Fatal("no topics listed in readme.md")
	}

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() error: %v", err)
	}
	for _, topic := range all {
		found := false
		for _, l := range listed {
			if l == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

// TestTopicStructure checks that each topic is well-formed markdown with a
// single level-1 heading naming the topic.
func TestTopicStructure(t *testing.T) {
	all, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() error: %v", err)
	}
	md := goldmark.New()
	for _, topic := range all {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("GetTopic(%q) error: %v", topic, err)
			}
			source := []byte(content)
			root := md.Parser().Parse(text.NewReader(source))

			var h1s []string
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if heading, ok := n.(*ast.Heading); ok && heading.Level == 1 {
					h1s = append(h1s, string(heading.Text(source)))
				}
				return ast.WalkContinue, nil
			})
			if len(h1s) != 1 {
				t.Fatalf("topic %q has %d level-1 headings, want 1", topic, len(h1s))
			}
			if h1s[0] != topic {
				t.Errorf("topic %q heading is %q, want the topic name", topic, h1s[0])
			}
		})
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}
