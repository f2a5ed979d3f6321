package crawl

import (
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash computes the content hash recorded in the capsule index,
// used to detect unchanged pages across crawls.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// TruncateURL shortens a URL for display, keeping the end which is
// more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatTokens formats a token count in human-readable form.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}

// FormatSavings formats a token-savings percentage for display.
func FormatSavings(savings float64) string {
	return fmt.Sprintf("%.1f%% saved", savings)
}
