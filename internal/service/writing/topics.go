package writing

import (
	"fmt"

	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// Topics returns the essay prompts for the current level.
func (p *Panel) Topics() []string {
	p.mu.Lock()
	level := p.level
	p.mu.Unlock()
	return content.WritingTopics()[level]
}

// UseTopic starts a new draft from the topic at index and returns to the
// write tab.
func (p *Panel) UseTopic(index int) (string, error) {
	topics := p.Topics()
	if index < 0 || index >= len(topics) {
		return "", domain.NewValidationError("index", fmt.Sprintf("must be between 0 and %d", len(topics)-1))
	}

	p.mu.Lock()
	p.content = "Topic: " + topics[index] + "\n\n"
	p.analyzed = false
	p.tab = domain.TabWrite
	p.mu.Unlock()
	return topics[index], nil
}
