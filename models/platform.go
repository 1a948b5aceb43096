package models

import "strings"

// Supported social platforms.
const (
	PlatformTikTok    = "tiktok"
	PlatformInstagram = "instagram"
	PlatformYouTube   = "youtube"
)

// SupportedPlatforms lists the platforms trends can be recorded for.
var SupportedPlatforms = []string{PlatformTikTok, PlatformInstagram, PlatformYouTube}

// NormalizePlatform lower-cases and trims a platform name.
func NormalizePlatform(p string) string {
	return strings.ToLower(strings.TrimSpace(p))
}

// IsSupportedPlatform reports whether p (already normalized) is supported.
func IsSupportedPlatform(p string) bool {
	for _, s := range SupportedPlatforms {
		if s == p {
			return true
		}
	}
	return false
}
