package request

import (
	"net/url"
	"strings"
)

// NormalizePreviewLink trims link and requires an absolute http(s) URL.
func NormalizePreviewLink(link string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", ErrEmptyPreviewLink
	}
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return "", ErrInvalidPreviewLink
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return link, nil
	}
	return "", ErrInvalidPreviewLink
}
