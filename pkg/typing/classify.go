package typing

// Classifier thresholds. Lengths are measured in UTF-8 bytes.
const (
	// MaxTemplateLen is the longest unique string for which numeric
	// template patterns are considered.
	MaxTemplateLen = 32
	// MaxLiteralLen is the longest unique string for which an enumeration
	// of string literals is considered.
	MaxLiteralLen = 16
)

// StringStats summarizes one run of string samples.
type StringStats struct {
	Unique     []string // distinct non-empty values in first-occurrence order
	MaxLen     int      // byte length of the longest unique value
	Duplicates int      // non-empty samples minus len(Unique)
	Numeric    int      // unique values containing a numeric token
}

// AnalyzeStrings computes [StringStats] over values. Empty strings are
// ignored entirely.
func AnalyzeStrings(values []string) StringStats {
	var st StringStats
	seen := make(map[string]struct{}, len(values))
	total := 0
	for _, v := range values {
		if v == "" {
			continue
		}
		total++
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		st.Unique = append(st.Unique, v)
		st.MaxLen = max(st.MaxLen, len(v))
		if ContainsNumeric(v) {
			st.Numeric++
		}
	}
	st.Duplicates = total - len(st.Unique)
	return st
}

// ClassifyStrings decides how a run of string samples is typed and returns
// the shape nodes to attach. The rules are applied in order:
//
//  1. Short, repeated values that mostly contain numbers become one
//     template literal per distinct template.
//  2. Short, repeated values become one string literal per unique value.
//  3. Anything else becomes a single [String] node.
//
// "Repeated" means at least one duplicate among the non-empty values.
func ClassifyStrings(values []string) []Node {
	st := AnalyzeStrings(values)

	repeated := st.Duplicates >= 1
	switch {
	case repeated && st.MaxLen >= 1 && st.MaxLen <= MaxTemplateLen && st.Numeric > len(st.Unique)/2:
		var nodes []Node
		seen := make(map[string]struct{}, len(st.Unique))
		for _, v := range st.Unique {
			tpl := Templatize(v)
			if _, ok := seen[tpl]; ok {
				continue
			}
			seen[tpl] = struct{}{}
			nodes = append(nodes, LiteralType{Value: TemplateLiteral(tpl)})
		}
		return nodes
	case repeated && st.MaxLen >= 1 && st.MaxLen <= MaxLiteralLen:
		nodes := make([]Node, 0, len(st.Unique))
		for _, v := range st.Unique {
			nodes = append(nodes, LiteralType{Value: StringLiteral(v)})
		}
		return nodes
	default:
		return []Node{String{}}
	}
}
