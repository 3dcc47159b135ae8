package driftmail

import (
	"html"
	"regexp"
	"strings"
)

// Sentinel body texts. MessageBody substitutes these so callers always
// have something to display.
const (
	// EmptyBodyText stands in for a message whose body is empty after
	// decoding.
	EmptyBodyText = "(no content)"
	// UnavailableBodyText stands in for a message whose body could not
	// be fetched.
	UnavailableBodyText = "(message body unavailable)"
)

// tagPattern matches anything tag-shaped. This is a permissive strip,
// not an HTML parser: any <...> substring is removed, which is good
// enough for rendering mail bodies as chat text.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// renderBodyText reduces a message's representations to displayable
// plain text. The plain-text body wins when present; otherwise the first
// HTML body is used, with entities decoded before tags are stripped.
func renderBodyText(text string, htmlBodies []string) string {
	body := text
	if body == "" && len(htmlBodies) > 0 {
		body = htmlBodies[0]
	}

	body = html.UnescapeString(body)
	body = tagPattern.ReplaceAllString(body, "")
	body = strings.ReplaceAll(body, " ", " ")
	body = strings.TrimSpace(body)

	if body == "" {
		return EmptyBodyText
	}
	return body
}
