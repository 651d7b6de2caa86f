// Package thumbnail resolves a displayable preview image for a video.
package thumbnail

import (
	"fmt"
	"regexp"

	"github.com/coursedesk/media-library/internal/models"
)

// youtubeIDPattern matches the common YouTube URL shapes (watch, embed,
// shorts, short-link) and captures the video identifier: alphanumeric
// plus '-'/'_', at least 6 characters.
var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:watch\?(?:.*&)?v=|embed/|shorts/|v/)|youtu\.be/)([A-Za-z0-9_-]{6,})`)

// Resolve returns the preview image URL for a video: the explicit
// thumbnail URL when present, else the platform's maximum-resolution
// thumbnail derived from the source URL, else the empty string (the
// caller renders a placeholder). It never fails on malformed URLs.
func Resolve(video models.Video) string {
	if video.ThumbnailURL != "" {
		return video.ThumbnailURL
	}

	id := ExtractVideoID(video.SourceURL)
	if id == "" {
		return ""
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id)
}

// ExtractVideoID extracts the external-platform video identifier from a
// URL, or returns the empty string if none is recognizable
func ExtractVideoID(sourceURL string) string {
	if sourceURL == "" {
		return ""
	}
	matches := youtubeIDPattern.FindStringSubmatch(sourceURL)
	if len(matches) < 2 {
		return ""
	}
	return matches[1]
}
