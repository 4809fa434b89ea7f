package yelp

import (
	"net/url"
	"strings"
)

// ParseBusinessID accepts either a bare business id/alias or a full
// business page URL (https://www.yelp.com/biz/<alias>) and returns the
// id. Anything that is not a business URL passes through trimmed.
func ParseBusinessID(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "://") {
		return s
	}

	u, err := url.Parse(s)
	if err != nil {
		return s
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, part := range parts {
		if part == "biz" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return s
}
