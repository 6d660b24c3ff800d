package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	// \s chỉ khớp khoảng trắng ASCII nên thêm \p{Z} cho no-break space, ideographic space
	slugInvalidChars = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s\p{Z}-]`)
	slugSeparators   = regexp.MustCompile(`[\s\p{Z}_-]+`)
)

// MakeSlug chuyển tiêu đề thành slug, giữ nguyên chữ có dấu:
// "Điện tử" -> "điện-tử", "  Hello, World!  " -> "hello-world"
func MakeSlug(text string) string {
	s := norm.NFC.String(cases.Lower(language.Und).String(text))
	s = strings.TrimSpace(s)
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
