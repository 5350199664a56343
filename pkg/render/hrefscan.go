package render

import (
	"strings"

	"golang.org/x/net/html"
)

// ContainsLink reports whether s contains an anchor tag with an href
// attribute. Plain text, other markup and bare URLs do not count.
func ContainsLink(s string) bool {
	if !strings.Contains(s, "<") {
		return false
	}

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "a" || !hasAttr {
				continue
			}
			for {
				key, _, more := z.TagAttr()
				if string(key) == "href" {
					return true
				}
				if !more {
					break
				}
			}
		}
	}
}
