package listening

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
	"github.com/heartmarshall/myenglish-suite/internal/panel"
)

// submittedPrefix is the id prefix of batches extracted from a pasted URL.
const submittedPrefix = "v"

// Submit starts an extraction for a pasted video URL. A URL without a
// recognizable video id is ignored: the call reports false and leaves the
// panel untouched.
func (p *Panel) Submit(ctx context.Context, url string) bool {
	videoID := ExtractVideoID(url)
	if videoID == "" {
		p.log.DebugContext(ctx, "ignoring unrecognized video url", slog.String("url", url))
		return false
	}

	p.start(ctx, url, videoID, p.extract(p.selector.SubmittedSet, submittedPrefix))
	return true
}

// SelectVideo starts an extraction for a video picked from the history.
// The batch comes from the curated set for the video id, and entry ids are
// prefixed with the id's first character.
func (p *Panel) SelectVideo(ctx context.Context, videoID string) error {
	if videoID == "" {
		return domain.NewValidationError("video_id", "required")
	}

	_, size := utf8.DecodeRuneInString(videoID)
	base := func(ctx context.Context) []domain.BaseWord {
		return p.selector.SelectBaseSet(ctx, videoID)
	}
	p.start(ctx, WatchURLPrefix+videoID, videoID, p.extract(base, videoID[:size]))
	return nil
}

// start records the video and bumps the shell generation under one lock, so
// the metadata always belongs to the batch that wins.
func (p *Panel) start(ctx context.Context, url, videoID string, job panel.Job[[]domain.VocabularyEntry]) {
	p.mu.Lock()
	p.url = url
	p.videoID = videoID
	p.selectedWordID = ""
	gen := p.shell.Start(ctx, job)
	p.mu.Unlock()

	p.log.InfoContext(ctx, "extraction started",
		slog.String("video_id", videoID),
		slog.Uint64("generation", gen),
	)
}
