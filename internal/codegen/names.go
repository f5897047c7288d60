package codegen

import (
	"strings"
	"unicode"
)

// Common initialisms that should be all caps in Go
var initialisms = map[string]string{
	"id":   "ID",
	"ids":  "IDs",
	"url":  "URL",
	"uri":  "URI",
	"uuid": "UUID",
	"api":  "API",
	"http": "HTTP",
	"json": "JSON",
	"xml":  "XML",
	"ip":   "IP",
	"tcp":  "TCP",
	"udp":  "UDP",
	"rpc":  "RPC",
	"ui":   "UI",
	"hp":   "HP",
	"xp":   "XP",
}

// toGoFieldName converts a snake_case schema name to PascalCase.
func toGoFieldName(name string) string {
	parts := strings.Split(name, "_")
	for i, part := range parts {
		if len(part) == 0 {
			continue
		}
		if upper, ok := initialisms[strings.ToLower(part)]; ok {
			parts[i] = upper
		} else {
			parts[i] = strings.ToUpper(part[0:1]) + part[1:]
		}
	}
	return strings.Join(parts, "")
}

// toGoEnumValueName converts an enum value name, usually SCREAMING_SNAKE, to PascalCase.
func toGoEnumValueName(name string) string {
	if isAllUpper(name) {
		name = strings.ToLower(name)
	}
	return toGoFieldName(name)
}

// toGoTypeName joins path segments into one exported name: ["Outer", "Inner"] -> "OuterInner".
func toGoTypeName(segments ...string) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(toGoFieldName(s))
	}
	return sb.String()
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
