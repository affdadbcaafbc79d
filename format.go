package easylog

import (
	"fmt"
	"strconv"
	"strings"
)

// Format substitutes args into template. Each argument is stringified once and
// then consumes, in priority order, the first placeholder that can take it:
// its explicit index form {i}, the first empty {}, the first spaced { }, or
// the first typed {:spec}. Typed specs are d (as-is), f with an optional
// decimal precision (default 6), s (as-is), and x with an optional minimum
// hex-digit count. Excess placeholders stay in the result untouched; excess
// arguments are dropped. Format never fails: malformed specs degrade to their
// defaults.
//
//	Format("{0},{1}", 1, 2)   // "1,2"
//	Format("{:f2}", 3.14159)  // "3.14"
//	Format("{:x4}", 6789)     // "0x1A85"
func Format(template string, args ...any) string {
	result := template
	for i, arg := range args {
		val := fmt.Sprint(arg)
		if key := "{" + strconv.Itoa(i) + "}"; strings.Contains(result, key) {
			result = strings.Replace(result, key, val, 1)
			continue
		}
		if strings.Contains(result, "{}") {
			result = strings.Replace(result, "{}", val, 1)
			continue
		}
		if strings.Contains(result, "{ }") {
			result = strings.Replace(result, "{ }", val, 1)
			continue
		}
		result = replaceTypedSpec(result, val)
	}
	return result
}

// replaceTypedSpec resolves the first {:spec} placeholder in template against
// val. A template without a well-formed typed placeholder is returned
// unchanged, consuming the argument.
func replaceTypedSpec(template, val string) string {
	start := strings.Index(template, "{:")
	if start < 0 {
		return template
	}
	end := strings.Index(template[start:], "}")
	if end < 0 {
		return template
	}
	end += start
	spec := template[start+2 : end]

	var out string
	switch {
	case strings.Contains(spec, "d"), strings.Contains(spec, "s"):
		out = val
	case strings.Contains(spec, "f"):
		out = formatFloat(val, precisionAfter(spec, "f", 6))
	case strings.Contains(spec, "x"):
		out = formatHex(val, precisionAfter(spec, "x", 0))
	default:
		// Unknown spec letter: drop the placeholder, keep the argument out.
		out = ""
	}
	return template[:start] + out + template[end+1:]
}

// precisionAfter parses the integer following letter in spec. A missing or
// malformed precision yields def.
func precisionAfter(spec, letter string, def int) int {
	idx := strings.Index(spec, letter)
	if idx < 0 || idx+1 >= len(spec) {
		return def
	}
	precision, err := strconv.Atoi(spec[idx+1:])
	if err != nil {
		return def
	}
	return precision
}

// formatFloat pads or truncates the decimal digits of val to precision. A
// value without a decimal point passes through unchanged.
func formatFloat(val string, precision int) string {
	dot := strings.IndexByte(val, '.')
	if dot < 0 {
		return val
	}
	want := dot + 1 + precision
	if len(val) < want {
		return val + strings.Repeat("0", want-len(val))
	}
	return val[:want]
}

// formatHex converts a base-10 integer literal into an uppercase 0x-prefixed
// hex literal, zero-padded to at least precision digits when precision >= 1.
// Non-numeric or fractional input yields the empty string.
func formatHex(val string, precision int) string {
	if val == "" || strings.ContainsRune(val, '.') {
		return ""
	}
	for _, r := range val {
		if r < '0' || r > '9' {
			return ""
		}
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return ""
	}
	digits := strings.ToUpper(strconv.FormatInt(n, 16))
	if precision >= 1 && len(digits) < precision {
		digits = strings.Repeat("0", precision-len(digits)) + digits
	}
	return "0x" + digits
}
