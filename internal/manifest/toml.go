package manifest

import (
	"fmt"
	"regexp"
	"strings"
)

// sectionHeaderRegex matches [table] and [[array-of-tables]] headers and
// captures the dotted table name.
var sectionHeaderRegex = regexp.MustCompile(`^\s*\[{1,2}\s*([^\]\s]+)\s*\]{1,2}`)

// setTOMLLine rewrites the version assignment inside a TOML manifest with
// line-level substitution instead of a parse/re-marshal round trip, so
// comments, formatting and key order survive byte-for-byte.
//
// Only the key inside the target table is touched. A Cargo.toml carrying
// both `[package] version = "..."` and a pinned dependency with its own
// `version = "..."` key gets exactly one line rewritten. The target table
// for a field like "package.version" is "package"; a bare "version" field
// targets the implicit top-level table before any header.
func setTOMLLine(data []byte, path, field, version string) ([]byte, error) {
	section, key := splitField(field)

	keyRegex, err := regexp.Compile(`^(\s*` + regexp.QuoteMeta(key) + `\s*=\s*")[^"]*(".*)$`)
	if err != nil {
		return nil, fmt.Errorf("invalid field %q for %q: %w", field, path, err)
	}

	lines := strings.Split(string(data), "\n")

	inSection := section == ""
	replaced := false

	for i, line := range lines {
		if m := sectionHeaderRegex.FindStringSubmatch(line); m != nil {
			// Entering any table ends the previous one. Sub-tables of the
			// target (e.g. [package.metadata] under "package") do not count
			// as the target itself: a version key there is someone else's.
			inSection = m[1] == section
			continue
		}

		if !inSection || replaced {
			continue
		}

		if keyRegex.MatchString(line) {
			lines[i] = keyRegex.ReplaceAllString(line, "${1}"+version+"${2}")
			replaced = true
		}
	}

	if !replaced {
		return nil, fmt.Errorf("field %q not found in %q", field, path)
	}

	return []byte(strings.Join(lines, "\n")), nil
}

// splitField splits a dot-notation field into its table name and key.
// "package.version" -> ("package", "version"); "version" -> ("", "version").
func splitField(field string) (section, key string) {
	idx := strings.LastIndex(field, ".")
	if idx < 0 {
		return "", field
	}
	return field[:idx], field[idx+1:]
}
