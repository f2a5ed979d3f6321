package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mako"
)

// Ensure MediaScanner implements mako.MediaScanner at compile time.
var _ mako.MediaScanner = (*MediaScanner)(nil)

// MediaScanner counts media elements in raw HTML and picks a cover
// image from page metadata or content.
type MediaScanner struct{}

// NewMediaScanner creates a new MediaScanner.
func NewMediaScanner() *MediaScanner {
	return &MediaScanner{}
}

// ScanMedia counts images, video (including embeds), audio, and
// interactive elements, and selects a cover image: the og:image meta
// tag when present, otherwise the first content image with a src.
// Zero counts stay zero and are omitted at serialization.
func (s *MediaScanner) ScanMedia(rawHTML string, baseURL string) (*mako.Media, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &mako.Media{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return &mako.Media{}, nil
	}

	base, _ := url.Parse(baseURL)

	media := &mako.Media{
		Images:      doc.Find("img").Length(),
		Video:       doc.Find("video").Length() + doc.Find("iframe").Length(),
		Audio:       doc.Find("audio").Length(),
		Interactive: doc.Find("canvas").Length() + doc.Find("form").Length(),
	}

	media.Cover = findCover(doc, base)

	return media, nil
}

func findCover(doc *goquery.Document, base *url.URL) *mako.Cover {
	if og, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content"); ok && og != "" {
		alt, _ := doc.Find(`meta[property="og:image:alt"]`).First().Attr("content")
		return &mako.Cover{URL: resolve(base, og), Alt: alt}
	}

	var cover *mako.Cover
	doc.Find("img[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, _ := sel.Attr("src")
		if src == "" || strings.HasPrefix(src, "data:") {
			return true
		}
		alt, _ := sel.Attr("alt")
		cover = &mako.Cover{URL: resolve(base, src), Alt: alt}
		return false
	})

	return cover
}

func resolve(base *url.URL, ref string) string {
	if base == nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}
