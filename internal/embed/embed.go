// Package embed maps YouTube links onto embeddable player URLs.
package embed

import (
	"fmt"
	"net/url"
	"strings"
)

const playerURL = "https://www.youtube.com/embed/%s?rel=0&modestbranding=1"

// Resolve returns the embeddable player URL for the link. The boolean is false when
// the link cannot be parsed or does not point at a supported YouTube video.
func Resolve(link string) (string, bool) {
	id, ok := VideoID(link)
	if !ok {
		return "", false
	}
	return fmt.Sprintf(playerURL, url.PathEscape(id)), true
}

// VideoID extracts the video identifier from a youtube.com watch or shorts link,
// or from a youtu.be short link.
func VideoID(link string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}

	var id string
	host := strings.ToLower(u.Hostname())
	switch {
	case strings.Contains(host, "youtube.com"):
		if v := queryValue(u.RawQuery, "v"); v != "" {
			id = v
		} else {
			id = shortsID(u.Path)
		}
	case strings.Contains(host, "youtu.be"):
		id = strings.TrimPrefix(u.Path, "/")
	}
	return id, id != ""
}

// Get the first value of the named query parameter. Unlike url.ParseQuery, pairs
// holding a semicolon are kept and only '&' separates pairs.
func queryValue(rawQuery, name string) string {
	for _, pair := range strings.Split(rawQuery, "&") {
		key, value, _ := strings.Cut(pair, "=")
		if unescapeQuery(key) == name {
			return unescapeQuery(value)
		}
	}
	return ""
}

// Decode a query component, leaving it as is when it holds a bad escape.
func unescapeQuery(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return strings.ReplaceAll(s, "+", " ")
}

// Get the path segment following /shorts/.
func shortsID(path string) string {
	const marker = "/shorts/"
	i := strings.Index(path, marker)
	if i < 0 {
		return ""
	}
	rest := path[i+len(marker):]
	if j := strings.IndexByte(rest, '/'); j >= 0 {
		rest = rest[:j]
	}
	return rest
}
