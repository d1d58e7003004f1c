package render

import "regexp"

// Characters reserved by Telegram MarkdownV2.
const specials = "_*[]()~`>#+-=|{}.!"

var specialsRe = regexp.MustCompile("[" + regexp.QuoteMeta(specials) + "]")

// Escape prefixes every reserved MarkdownV2 character with a backslash.
// Callers must escape each outbound string exactly once, after translation:
// escaping twice produces visible backslashes, and escaping before
// translation lets the language service mangle the markers.
func Escape(text string) string {
	return specialsRe.ReplaceAllString(text, `\$0`)
}
