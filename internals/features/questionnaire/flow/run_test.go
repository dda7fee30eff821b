package flow

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogModel "relationnel_backend/internals/features/questionnaire/catalog/model"
)

func newModule(order int, questions ...catalogModel.QuestionModel) catalogModel.ModuleModel {
	return catalogModel.ModuleModel{
		ModuleID:        uuid.New(),
		ModuleTitle:     "module",
		ModuleOrder:     order,
		ModuleIsActive:  true,
		ModuleQuestions: questions,
	}
}

func answerModule(r *Run, m catalogModel.ModuleModel) {
	for _, q := range m.ModuleQuestions {
		r.Collector().SetAnswer(q.QuestionID, "réponse")
	}
}

func TestNewRunRejectsEmptyCatalog(t *testing.T) {
	_, err := NewRun(nil)
	assert.ErrorIs(t, err, ErrNoModules)
}

func TestForwardBlockedUntilComplete(t *testing.T) {
	m1 := newModule(1, newQuestion(1, true), newQuestion(2, true))
	m2 := newModule(2, newQuestion(1, true))
	r, err := NewRun([]catalogModel.ModuleModel{m1, m2})
	require.NoError(t, err)

	done, err := r.Forward()
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.False(t, done)
	assert.Equal(t, 0, r.Index(), "failed forward must not move")

	r.Collector().SetAnswer(m1.ModuleQuestions[0].QuestionID, "a")
	_, err = r.Forward()
	assert.ErrorIs(t, err, ErrIncomplete, "partial answers still block")

	r.Collector().SetAnswer(m1.ModuleQuestions[1].QuestionID, "b")
	done, err = r.Forward()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 1, r.Index())
	assert.Equal(t, m2.ModuleID, r.Current().ModuleID)
}

func TestForwardOnLastModuleSubmits(t *testing.T) {
	m1 := newModule(1, newQuestion(1, true))
	r, err := NewRun([]catalogModel.ModuleModel{m1})
	require.NoError(t, err)

	answerModule(r, m1)
	done, err := r.Forward()
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, r.Submitted())

	done, err = r.Forward()
	assert.True(t, done)
	assert.ErrorIs(t, err, ErrAlreadyEnded)
}

func TestBackIsFreeAndKeepsAnswers(t *testing.T) {
	m1 := newModule(1, newQuestion(1, true))
	m2 := newModule(2, newQuestion(1, true))
	r, err := NewRun([]catalogModel.ModuleModel{m1, m2})
	require.NoError(t, err)

	assert.False(t, r.Back(), "back is a no-op on the first module")

	answerModule(r, m1)
	_, err = r.Forward()
	require.NoError(t, err)

	assert.True(t, r.Back())
	assert.Equal(t, 0, r.Index())

	got, ok := r.Collector().Answer(m1.ModuleQuestions[0].QuestionID)
	assert.True(t, ok)
	assert.Equal(t, "réponse", got)

	// Forward is free again without re-answering.
	done, err := r.Forward()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 1, r.Index())
}

func TestFullTraversal(t *testing.T) {
	modules := []catalogModel.ModuleModel{
		newModule(1, newQuestion(1, true), newQuestion(2, true)),
		newModule(2, newQuestion(1, true)),
		newModule(3, newQuestion(1, false)),
		newModule(4, newQuestion(1, true)),
	}
	r, err := NewRun(modules)
	require.NoError(t, err)

	for i, m := range modules {
		answerModule(r, m)
		done, err := r.Forward()
		require.NoError(t, err)
		assert.Equal(t, i == len(modules)-1, done)
	}
	assert.True(t, r.Submitted())
	assert.Equal(t, 5, r.Collector().Len())
}
