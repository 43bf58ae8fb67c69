// Package naming turns AxonOps resource names into Terraform identifiers and
// string values into text that is safe inside HCL and shell double quotes.
package naming

import (
	"strconv"
	"strings"
)

func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// SanitizeIdentifier maps name onto the Terraform resource-name grammar.
// Dots, hyphens, spaces and every other rune outside [A-Za-z0-9_] become
// underscores. A leading digit is prefixed with an underscore.
func SanitizeIdentifier(name string) string {
	if name == "" {
		return "_"
	}
	var b strings.Builder
	b.Grow(len(name) + 1)
	for i, r := range name {
		if i == 0 && r >= '0' && r <= '9' {
			b.WriteByte('_')
		}
		if isIdentRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

var hclEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"${", "$${",
	"%{", "%%{",
)

// EscapeText escapes value for use between double quotes in HCL.
// Backslashes are handled before quotes so inserted escapes are not doubled;
// strings.Replacer makes a single pass, which gives the same guarantee.
// HCL files must be UTF-8, so invalid byte sequences become U+FFFD.
func EscapeText(value string) string {
	return hclEscaper.Replace(strings.ToValidUTF8(value, "\uFFFD"))
}

var shellEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"$", `\$`,
	"`", "\\`",
)

// ShellQuote returns value as one double-quoted bash word.
func ShellQuote(value string) string {
	return `"` + shellEscaper.Replace(value) + `"`
}

// Allocator hands out local names that are unique within one output file.
// Names that sanitize to the same identifier get _2, _3, ... in call order.
type Allocator struct {
	used map[string]int
}

func NewAllocator() *Allocator {
	return &Allocator{used: make(map[string]int)}
}

func (a *Allocator) Next(name string) string {
	base := SanitizeIdentifier(name)
	n := a.used[base]
	a.used[base] = n + 1
	if n == 0 {
		return base
	}
	for {
		candidate := base + "_" + strconv.Itoa(n+1)
		if _, taken := a.used[candidate]; !taken {
			a.used[candidate] = 1
			return candidate
		}
		n++
	}
}
