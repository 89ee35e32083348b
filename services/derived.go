package services

import (
	"strings"
)

const wordsPerMinute = 200

// GenerateSlug derives a URL-safe slug from a post title: lower-cased, with
// runs of non-alphanumeric characters collapsed into single hyphens and no
// leading or trailing hyphen. It is a pure function of the title; two posts
// with the same title produce the same slug.
func GenerateSlug(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}

// CalculateReadingTime estimates reading time in minutes from the body text:
// whitespace-separated word count at 200 words per minute, rounded up, with
// a floor of one minute.
func CalculateReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
