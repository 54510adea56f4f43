package writing

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/domain"
	"github.com/heartmarshall/myenglish-suite/internal/panel"
)

func newTestPanel(t *testing.T) *Panel {
	t.Helper()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	p := NewPanel(log, time.Millisecond)
	t.Cleanup(p.Close)
	return p
}

func analyzed(t *testing.T, p *Panel) State {
	t.Helper()
	p.ChangeContent("I has a apple.")
	require.True(t, p.Analyze(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.Wait(ctx))
	return p.Snapshot()
}

func TestPanel_InitialState(t *testing.T) {
	t.Parallel()
	st := newTestPanel(t).Snapshot()

	assert.Equal(t, panel.StateIdle, st.Status)
	assert.Equal(t, domain.LevelB2, st.Level)
	assert.Equal(t, domain.TabWrite, st.Tab)
	assert.False(t, st.Analyzed)
	assert.Empty(t, st.Suggestions.Grammar)
	assert.Empty(t, st.Suggestions.Style)
}

func TestPanel_Analyze_BlankContentIsIgnored(t *testing.T) {
	t.Parallel()
	p := newTestPanel(t)

	p.ChangeContent("  \t\n")
	assert.False(t, p.Analyze(context.Background()))
	assert.Equal(t, panel.StateIdle, p.Snapshot().Status)
}

func TestPanel_Analyze_LoadsSuggestions(t *testing.T) {
	t.Parallel()
	st := analyzed(t, newTestPanel(t))

	assert.Equal(t, panel.StateReady, st.Status)
	assert.True(t, st.Analyzed)
	assert.Equal(t, domain.TabSuggestions, st.Tab)
	assert.Equal(t, content.GrammarSuggestions(), st.Suggestions.Grammar)
	assert.Equal(t, content.StyleSuggestions(), st.Suggestions.Style)
}

func TestPanel_StaleCompletionLeavesNewAnalysisLoading(t *testing.T) {
	t.Parallel()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	p := NewPanel(log, time.Hour)
	t.Cleanup(p.Close)

	p.ChangeContent("I has a apple.")
	require.True(t, p.Analyze(context.Background()))
	loading := p.Snapshot()
	require.Equal(t, panel.StateLoading, loading.Status)

	p.analysisDone(loading.Generation-1, Suggestions{})

	st := p.Snapshot()
	assert.Equal(t, panel.StateLoading, st.Status)
	assert.False(t, st.Analyzed)
	assert.Equal(t, domain.TabWrite, st.Tab)

	p.analysisDone(loading.Generation, Suggestions{})
	st = p.Snapshot()
	assert.True(t, st.Analyzed)
	assert.Equal(t, domain.TabSuggestions, st.Tab)
}

func TestPanel_ChangeContentClearsAnalyzed(t *testing.T) {
	t.Parallel()
	p := newTestPanel(t)
	analyzed(t, p)

	p.ChangeContent("new draft")
	st := p.Snapshot()
	assert.False(t, st.Analyzed)
	assert.Equal(t, "new draft", st.Content)
}

func TestPanel_ChangeLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   domain.Level
		wantErr bool
	}{
		{domain.LevelB1, false},
		{domain.LevelC2, false},
		{domain.LevelA2, true},
		{domain.Level("Z9"), true},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			t.Parallel()
			p := newTestPanel(t)
			err := p.ChangeLevel(tt.level)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Equal(t, domain.LevelB2, p.Snapshot().Level)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.level, p.Snapshot().Level)
		})
	}
}

func TestPanel_TopicsFollowLevel(t *testing.T) {
	t.Parallel()
	p := newTestPanel(t)

	assert.Equal(t, content.WritingTopics()[domain.LevelB2], p.Topics())
	require.NoError(t, p.ChangeLevel(domain.LevelC1))
	assert.Equal(t, content.WritingTopics()[domain.LevelC1], p.Topics())
}

func TestPanel_UseTopic(t *testing.T) {
	t.Parallel()
	p := newTestPanel(t)
	require.NoError(t, p.SetTab(domain.TabTopics))

	topic, err := p.UseTopic(1)
	require.NoError(t, err)

	st := p.Snapshot()
	assert.Equal(t, "Topic: "+topic+"\n\n", st.Content)
	assert.Equal(t, domain.TabWrite, st.Tab)

	_, err = p.UseTopic(3)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = p.UseTopic(-1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPanel_SetTab_Invalid(t *testing.T) {
	t.Parallel()
	p := newTestPanel(t)
	assert.ErrorIs(t, p.SetTab("preview"), domain.ErrValidation)
}

func TestPanel_AcceptAndReject(t *testing.T) {
	t.Parallel()
	p := newTestPanel(t)
	st := analyzed(t, p)
	ctx := context.Background()

	grammarID := st.Suggestions.Grammar[0].ID
	styleID := st.Suggestions.Style[1].ID

	s, err := p.Accept(ctx, grammarID)
	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionGrammar, s.Category())

	s, err = p.Reject(ctx, styleID)
	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionStyle, s.Category())

	after := p.Snapshot().Suggestions
	assert.Len(t, after.Grammar, len(st.Suggestions.Grammar)-1)
	assert.Len(t, after.Style, len(st.Suggestions.Style)-1)
	for _, g := range after.Grammar {
		assert.NotEqual(t, grammarID, g.ID)
	}
	for _, g := range after.Style {
		assert.NotEqual(t, styleID, g.ID)
	}

	_, err = p.Accept(ctx, grammarID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
