package logic

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var reGyazoImage = regexp.MustCompile(`(?i)^https://i\.gyazo\.com/([a-f0-9]+)\.(?:png|jpg|gif|webp)$`)
var reGyazoPage = regexp.MustCompile(`(?i)^https://gyazo\.com/([a-f0-9]+)$`)

// ExtractGyazoIds pulls Gyazo capture ids out of a status's HTML content,
// from direct i.gyazo.com image links as well as gyazo.com page links.
// Matching is case-insensitive but only considers link and image
// attributes; a URL in bare text is not picked up.
// Ids come back in first-seen order, without duplicates; they let the
// client render inline image previews for posts that only carry a link.
func ExtractGyazoIds(htmlContent string) []string {
	if htmlContent == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil
	}
	seen := make(map[string]struct{})
	var res []string
	add := func(val string) {
		var groups []string
		if groups = reGyazoImage.FindStringSubmatch(val); groups == nil {
			groups = reGyazoPage.FindStringSubmatch(val)
		}
		if groups == nil {
			return
		}
		if _, exists := seen[groups[1]]; exists {
			return
		}
		seen[groups[1]] = struct{}{}
		res = append(res, groups[1])
	}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok {
			add(strings.TrimSpace(href))
		}
	})
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok {
			add(strings.TrimSpace(src))
		}
	})
	return res
}
