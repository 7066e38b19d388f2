package rssfeeds

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"

	"golang.org/x/net/html"
)

// GenerateID derives a stable positive article id by hashing input
func GenerateID(input string) int {
	hash := sha256.Sum256([]byte(input))
	id := int(binary.BigEndian.Uint32(hash[:4]) & 0x7fffffff)
	if id == 0 {
		id = 1
	}
	return id
}

// plainText drops markup from an RSS description and collapses whitespace
func plainText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
			b.WriteByte(' ')
		}
	}
}

// truncateRunes shortens s to at most n runes, ending with an ellipsis when cut
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n])) + "..."
}
