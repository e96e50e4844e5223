package render

import (
	"fmt"
	"strings"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
)

// String replaces {{VAR}} placeholders with vars values. It returns an error
// if a variable is missing or a placeholder is malformed, so a typo in a
// configured commit message fails loudly instead of committing garbage.
func String(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", &domain.OpError{
				Op:   "render.string",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("unclosed template expression"),
			}
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", &domain.OpError{
				Op:   "render.string",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("empty template expression"),
			}
		}

		value, ok := vars[key]
		if !ok {
			return "", &domain.OpError{
				Op:   "render.string",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("missing variable %q", key),
			}
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}
