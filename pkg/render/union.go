package render

import "strings"

// Unknown is rendered for positions without any observed member type.
const Unknown = "unknown"

// Union joins member types into a TypeScript union. Members after the first
// start on a new line with indent followed by "| ". An empty union is
// [Unknown] and a single member is returned as is.
func Union(members []string, indent string) string {
	switch len(members) {
	case 0:
		return Unknown
	case 1:
		return members[0]
	default:
		return strings.Join(members, "\n"+indent+"| ")
	}
}

// Indent prefixes every line of s that is not blank with indent.
func Indent(indent, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if strings.TrimSpace(l) != "" {
			lines[i] = indent + l
		}
	}
	return strings.Join(lines, "\n")
}
