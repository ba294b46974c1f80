package portal

import (
	"io"
	"log/slog"
	"strings"
)

func FilterNonEmpty(values []string) []string {
	var out []string

	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, strings.TrimSpace(v))
		}
	}

	return out
}

func CloseWithLog(c io.Closer) {
	if c == nil {
		return
	}

	if err := c.Close(); err != nil {
		slog.Error("failed to close resource", "err", err)
	}
}

func Excerpt(content string, max int) string {
	runes := []rune(content)

	if len(runes) <= max {
		return content
	}

	return string(runes[:max])
}
