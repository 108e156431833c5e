// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HasPostStructure reports whether doc carries both an article element and
// an entry-content container. Documents without both are not posts: the
// export also renders archive and error pages at post-like depths.
func HasPostStructure(doc *goquery.Document) bool {
	return doc.Find("article").Length() > 0 && doc.Find(contentSelector).Length() > 0
}

// Content returns the sanitized body of the entry-content container: script
// and noscript descendants removed, inner markup serialized, surrounding
// whitespace trimmed. An absent container yields the empty string, which
// callers treat as a skip signal. The removal mutates doc.
func Content(doc *goquery.Document) (string, error) {
	sel := doc.Find(contentSelector).First()
	if sel.Length() == 0 {
		return "", nil
	}

	sel.Find("script, noscript").Remove()

	inner, err := sel.Html()
	if err != nil {
		return "", fmt.Errorf("serializing entry content: %w", err)
	}
	return strings.TrimSpace(inner), nil
}

// PageContent locates a static page's body through the container chain:
// entry-content, then main, then a site-content div. The sanitized
// entry-content extraction wins when it yields anything; otherwise the
// located container's full outer markup is used. A site-content container
// defers to a nested entry-content or main when one exists. An empty
// return means no container was found.
func PageContent(doc *goquery.Document) (string, error) {
	container := doc.Find(contentSelector).First()
	siteContent := false
	if container.Length() == 0 {
		container = doc.Find("main").First()
	}
	if container.Length() == 0 {
		container = doc.Find("div.site-content").First()
		siteContent = container.Length() > 0
	}
	if container.Length() == 0 {
		return "", nil
	}

	body, err := Content(doc)
	if err != nil {
		return "", err
	}
	if body == "" {
		if body, err = goquery.OuterHtml(container); err != nil {
			return "", fmt.Errorf("serializing page container: %w", err)
		}
	}

	if siteContent {
		nested := container.Find(contentSelector).First()
		if nested.Length() == 0 {
			nested = container.Find("main").First()
		}
		if nested.Length() > 0 {
			if body, err = goquery.OuterHtml(nested); err != nil {
				return "", fmt.Errorf("serializing page container: %w", err)
			}
		}
	}

	return body, nil
}
