package listening

import "regexp"

// WatchURLPrefix builds the canonical URL of a video id.
const WatchURLPrefix = "https://www.youtube.com/watch?v="

const videoIDLength = 11

var videoIDPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// ExtractVideoID returns the 11-character video id embedded in url, or ""
// when url is not a recognizable video link.
func ExtractVideoID(url string) string {
	m := videoIDPattern.FindStringSubmatch(url)
	if m == nil || len(m[2]) != videoIDLength {
		return ""
	}
	return m[2]
}
