package flow

import (
	"strings"

	"github.com/google/uuid"

	"relationnel_backend/internals/features/questionnaire/catalog/model"
)

// =======================
// Answer Collector
// =======================
// One answer per question id for an in-progress run. Not persisted until
// submission; SetAnswer overwrites without history.

type Collector struct {
	answers map[uuid.UUID]string
}

func NewCollector() *Collector {
	return &Collector{answers: make(map[uuid.UUID]string)}
}

func (c *Collector) SetAnswer(questionID uuid.UUID, text string) {
	c.answers[questionID] = text
}

func (c *Collector) Answer(questionID uuid.UUID) (string, bool) {
	v, ok := c.answers[questionID]
	return v, ok
}

// Answers returns a copy of the collected map.
func (c *Collector) Answers() map[uuid.UUID]string {
	out := make(map[uuid.UUID]string, len(c.answers))
	for k, v := range c.answers {
		out[k] = v
	}
	return out
}

func (c *Collector) Len() int { return len(c.answers) }

// =======================
// Completion Gate
// =======================

// IsModuleComplete reports whether every required question of the module
// has a non-empty post-trim answer in the collector. Non-required
// questions never block. Linear in the module's question count.
func IsModuleComplete(m model.ModuleModel, c *Collector) bool {
	for _, q := range m.ModuleQuestions {
		if !q.QuestionIsRequired {
			continue
		}
		ans, ok := c.Answer(q.QuestionID)
		if !ok || strings.TrimSpace(ans) == "" {
			return false
		}
	}
	return true
}
