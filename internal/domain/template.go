package domain

import (
	"path/filepath"
	"strings"
	"unicode"
)

// TemplatePackage is the placeholder package directory shipped by the
// template under src/.
const TemplatePackage = "ir_pipeline_template"

// RepoName is the identifier for a project: the final path segment of its
// root directory, independent of where the clone lives.
func RepoName(root string) string {
	return filepath.Base(filepath.Clean(root))
}

// NormalizePackageName converts a repository name into a valid Python
// package name: lowercase, spaces and dashes become underscores, anything
// else outside [a-z0-9_] becomes an underscore, runs of underscores
// collapse, and the result must start with a letter or underscore.
func NormalizePackageName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	for _, r := range s {
		switch {
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	s = collapseUnderscores(b.String())
	s = strings.Trim(s, "_")

	if s == "" {
		return "pkg"
	}
	if first := rune(s[0]); !unicode.IsLetter(first) && first != '_' {
		return "pkg_" + s
	}
	return s
}

func collapseUnderscores(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prev := false
	for _, r := range s {
		if r == '_' {
			if prev {
				continue
			}
			prev = true
		} else {
			prev = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
