package internal

import "strings"

// StripDoc normalizes a raw documentation comment into plain text: comment
// delimiters and per-line leading markers are removed, each line is trimmed,
// and the non-empty lines are joined with single spaces.
func StripDoc(doc string) string {
	doc = strings.TrimSpace(doc)
	doc = strings.TrimPrefix(doc, "/**")
	doc = strings.TrimPrefix(doc, "/*")
	doc = strings.TrimSuffix(doc, "*/")

	lines := make([]string, 0)

	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "///")
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)

		if line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, " ")
}
