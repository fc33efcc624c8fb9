package textutil

import "strings"

// Suggest returns up to limit candidates that contain input under case
// folding. Prefix matches come first; within each group the candidate order
// is preserved. An empty input suggests the leading candidates. A limit of
// zero disables suggestions.
func Suggest(candidates []string, input string, limit int) []string {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}
	needle := Fold(input)

	var prefix, contains []string
	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		folded := Fold(candidate)
		switch {
		case strings.HasPrefix(folded, needle):
			prefix = append(prefix, candidate)
		case strings.Contains(folded, needle):
			contains = append(contains, candidate)
		}
	}

	out := append(prefix, contains...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
