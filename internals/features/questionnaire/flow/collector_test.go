package flow

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	catalogModel "relationnel_backend/internals/features/questionnaire/catalog/model"
)

func newQuestion(order int, required bool) catalogModel.QuestionModel {
	return catalogModel.QuestionModel{
		QuestionID:         uuid.New(),
		QuestionText:       "test question",
		QuestionType:       catalogModel.QuestionTypeText,
		QuestionOrder:      order,
		QuestionIsRequired: required,
	}
}

func TestCollectorSetAnswerOverwrites(t *testing.T) {
	c := NewCollector()
	qid := uuid.New()

	c.SetAnswer(qid, "first")
	c.SetAnswer(qid, "second")

	got, ok := c.Answer(qid)
	assert.True(t, ok)
	assert.Equal(t, "second", got)
	assert.Equal(t, 1, c.Len())
}

func TestCollectorAnswersReturnsCopy(t *testing.T) {
	c := NewCollector()
	qid := uuid.New()
	c.SetAnswer(qid, "a")

	snapshot := c.Answers()
	snapshot[qid] = "mutated"

	got, _ := c.Answer(qid)
	assert.Equal(t, "a", got)
}

func TestIsModuleComplete(t *testing.T) {
	req1 := newQuestion(1, true)
	req2 := newQuestion(2, true)
	opt := newQuestion(3, false)
	m := catalogModel.ModuleModel{
		ModuleID:        uuid.New(),
		ModuleQuestions: []catalogModel.QuestionModel{req1, req2, opt},
	}

	c := NewCollector()
	assert.False(t, IsModuleComplete(m, c), "no answers")

	c.SetAnswer(req1.QuestionID, "réponse")
	assert.False(t, IsModuleComplete(m, c), "one required answer missing")

	c.SetAnswer(req2.QuestionID, "   ")
	assert.False(t, IsModuleComplete(m, c), "whitespace-only answer does not count")

	c.SetAnswer(req2.QuestionID, "autre réponse")
	assert.True(t, IsModuleComplete(m, c), "optional question never blocks")

	c.SetAnswer(opt.QuestionID, "")
	assert.True(t, IsModuleComplete(m, c), "empty optional answer never blocks")
}

func TestIsModuleCompleteNoRequiredQuestions(t *testing.T) {
	m := catalogModel.ModuleModel{
		ModuleID:        uuid.New(),
		ModuleQuestions: []catalogModel.QuestionModel{newQuestion(1, false)},
	}
	assert.True(t, IsModuleComplete(m, NewCollector()))
}
