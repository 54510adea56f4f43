package reading

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

// uploadURL is the base URL uploaded documents are resolved against.
var uploadURL = &url.URL{Scheme: "http", Host: "localhost", Path: "/upload"}

func looksLikeHTML(text string) bool {
	head := strings.ToLower(text)
	if len(head) > 1024 {
		head = head[:1024]
	}
	return strings.Contains(head, "<html") || strings.Contains(head, "<body") || strings.Contains(head, "<!doctype html")
}

// extractArticle reduces an HTML document to its title and readable text.
func extractArticle(doc string) (title, text string, err error) {
	article, err := readability.FromReader(strings.NewReader(doc), uploadURL)
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(article.Title), strings.TrimSpace(article.TextContent), nil
}
