package advisor

import "strings"

var markdownStripper = strings.NewReplacer("#", "", "*", "")

// StripMarkdown removes heading markers and emphasis asterisks so model
// output reads as plain text. Applying it twice equals applying it once.
func StripMarkdown(s string) string {
	return markdownStripper.Replace(s)
}
