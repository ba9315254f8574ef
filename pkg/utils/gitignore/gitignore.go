// Package gitignore provides loading and matching of .gitignore patterns.
package gitignore

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// rule is a single parsed .gitignore pattern.
type rule struct {
	raw      string
	segments []string // pattern split on "/", wildcards per segment
	negate   bool     // pattern started with "!"
	dirOnly  bool     // pattern ended with "/"
	anchored bool     // pattern contained a non-trailing "/", matches from root
}

// GitIgnore holds the parsed rules of one .gitignore file.
// Rules are evaluated in file order and the last match wins,
// which makes negation ("!pattern") behave as expected.
type GitIgnore struct {
	rules []rule
}

// Load parses a .gitignore file. A missing file yields an empty
// matcher, not an error.
func Load(gitignorePath string) (*GitIgnore, error) {
	file, err := os.Open(gitignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &GitIgnore{}, nil
		}
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return Parse(lines), nil
}

// LoadFromDir loads the .gitignore located directly in dir.
func LoadFromDir(dir string) (*GitIgnore, error) {
	return Load(filepath.Join(dir, ".gitignore"))
}

// Parse builds a matcher from raw .gitignore lines.
// Empty lines and "#" comments are dropped. "**" is supported as a
// whole segment matching any depth ("**/build/", "src/**/gen.py").
func Parse(lines []string) *GitIgnore {
	gi := &GitIgnore{}
	for _, line := range lines {
		p := strings.TrimSpace(line)
		if p == "" || strings.HasPrefix(p, "#") {
			continue
		}

		r := rule{raw: p}
		if after, ok := strings.CutPrefix(p, "!"); ok {
			r.negate = true
			p = after
		}
		if before, ok := strings.CutSuffix(p, "/"); ok {
			r.dirOnly = true
			p = before
		}
		if after, ok := strings.CutPrefix(p, "/"); ok {
			r.anchored = true
			p = after
		}
		if p == "" {
			continue
		}
		// a slash in the middle anchors the pattern to the root,
		// same as git does
		if strings.Contains(p, "/") {
			r.anchored = true
		}
		r.segments = strings.Split(p, "/")
		gi.rules = append(gi.rules, r)
	}
	return gi
}

// Patterns returns the raw patterns that produced rules, for diagnostics.
func (gi *GitIgnore) Patterns() []string {
	out := make([]string, 0, len(gi.rules))
	for _, r := range gi.rules {
		out = append(out, r.raw)
	}
	return out
}

// Match reports whether the path, given relative to the .gitignore
// location with "/" separators, is ignored. isDir tells the matcher
// whether the path itself is a directory, which directory-only
// patterns require. Paths inside an ignored directory are ignored too.
func (gi *GitIgnore) Match(rel string, isDir bool) bool {
	rel = strings.Trim(filepath.ToSlash(rel), "/")
	if rel == "" || rel == "." {
		return false
	}
	segs := strings.Split(rel, "/")

	ignored := false
	for _, r := range gi.rules {
		if r.matches(segs, isDir) {
			ignored = !r.negate
		}
	}
	return ignored
}

// matches checks one rule against a path split into segments.
func (r rule) matches(segs []string, isDir bool) bool {
	if r.anchored {
		// try the pattern against every prefix of the path: matching
		// an ancestor directory ignores the whole subtree, while an
		// exact-length match against a directory-only pattern needs
		// the path itself to be a directory
		for k := 1; k <= len(segs); k++ {
			if !segsMatch(r.segments, segs[:k]) {
				continue
			}
			if k < len(segs) || isDir || !r.dirOnly {
				return true
			}
		}
		return false
	}

	// unanchored patterns are single-segment and may match at any depth
	pat := r.segments[0]
	for i, seg := range segs {
		if !segMatch(pat, seg) {
			continue
		}
		if !r.dirOnly {
			return true
		}
		if i < len(segs)-1 || isDir {
			return true
		}
	}
	return false
}

// segsMatch aligns pattern segments with path segments.
// A "**" segment matches any number of path segments, including none.
func segsMatch(pats, segs []string) bool {
	if len(pats) == 0 {
		return len(segs) == 0
	}
	if pats[0] == "**" {
		for i := 0; i <= len(segs); i++ {
			if segsMatch(pats[1:], segs[i:]) {
				return true
			}
		}
		return false
	}
	if len(segs) == 0 {
		return false
	}
	if !segMatch(pats[0], segs[0]) {
		return false
	}
	return segsMatch(pats[1:], segs[1:])
}

// segMatch matches one path segment with shell wildcards.
// Malformed patterns never match.
func segMatch(pattern, seg string) bool {
	ok, err := path.Match(pattern, seg)
	return err == nil && ok
}
