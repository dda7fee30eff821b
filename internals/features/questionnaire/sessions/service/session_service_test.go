package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogModel "relationnel_backend/internals/features/questionnaire/catalog/model"
	"relationnel_backend/internals/features/insight"
	"relationnel_backend/internals/features/questionnaire/sessions/dto"
	"relationnel_backend/internals/features/questionnaire/sessions/model"
)

// =======================
// Stubs
// =======================

type stubSubmissionStore struct {
	questions map[uuid.UUID]catalogModel.QuestionModel
	created   *model.SessionModel
	createErr error
	stored    map[uuid.UUID]*model.SessionModel
}

func newStubSubmissionStore() *stubSubmissionStore {
	return &stubSubmissionStore{
		questions: map[uuid.UUID]catalogModel.QuestionModel{},
		stored:    map[uuid.UUID]*model.SessionModel{},
	}
}

func (s *stubSubmissionStore) addQuestion(order int, text string) uuid.UUID {
	q := catalogModel.QuestionModel{
		QuestionID:         uuid.New(),
		QuestionText:       text,
		QuestionType:       catalogModel.QuestionTypeText,
		QuestionOrder:      order,
		QuestionIsRequired: true,
	}
	s.questions[q.QuestionID] = q
	return q.QuestionID
}

func (s *stubSubmissionStore) QuestionsByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]catalogModel.QuestionModel, error) {
	out := map[uuid.UUID]catalogModel.QuestionModel{}
	for _, id := range ids {
		if q, ok := s.questions[id]; ok {
			out[id] = q
		}
	}
	return out, nil
}

func (s *stubSubmissionStore) CreateSessionWithResponses(_ context.Context, sess *model.SessionModel) error {
	if s.createErr != nil {
		return s.createErr
	}
	sess.SessionID = uuid.New()
	for i := range sess.SessionResponses {
		sess.SessionResponses[i].ResponseID = uuid.New()
		sess.SessionResponses[i].ResponseSessionID = sess.SessionID
	}
	s.created = sess
	s.stored[sess.SessionID] = sess
	return nil
}

func (s *stubSubmissionStore) SessionWithResponses(_ context.Context, id uuid.UUID) (*model.SessionModel, error) {
	sess, ok := s.stored[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

type stubReportUpserter struct {
	sessionID uuid.UUID
	content   string
	source    []insight.QA
	calls     int
	err       error
}

func (r *stubReportUpserter) UpsertForSession(_ context.Context, sessionID uuid.UUID, content string, source []insight.QA) error {
	r.calls++
	r.sessionID = sessionID
	r.content = content
	r.source = source
	return r.err
}

type stubGenerator struct {
	result insight.Result
	pairs  []insight.QA
}

func (g *stubGenerator) Generate(_ context.Context, pairs []insight.QA) insight.Result {
	g.pairs = pairs
	return g.result
}

// =======================
// Submit
// =======================

func TestSubmitPersistsAndGeneratesReport(t *testing.T) {
	store := newStubSubmissionStore()
	q1 := store.addQuestion(2, "Comment gères-tu les conflits ?")
	q2 := store.addQuestion(1, "Qu'est-ce qui compte le plus pour toi ?")
	q3 := store.addQuestion(3, "Que veux-tu améliorer ?")
	q4 := store.addQuestion(4, "Comment exprimes-tu ta reconnaissance ?")

	reports := &stubReportUpserter{}
	gen := &stubGenerator{result: insight.Result{Content: "**Rapport**", Success: true}}
	svc := NewSessionService(store, reports, gen)

	res, err := svc.Submit(context.Background(), dto.SubmitSessionRequest{
		Responses: []dto.SubmitResponseInput{
			{QuestionID: q1.String(), Answer: "j'en parle"},
			{QuestionID: q2.String(), Answer: "la confiance"},
			{QuestionID: q3.String(), Answer: "mon écoute"},
			{QuestionID: q4.String(), Answer: "par des mots"},
		},
	})
	require.NoError(t, err)
	assert.True(t, res.AIGenerated)

	require.NotNil(t, store.created)
	assert.Equal(t, store.created.SessionID.String(), res.SessionID)
	assert.Len(t, store.created.SessionResponses, 4)

	// Pairs handed to the generator follow question order, not input order.
	require.Len(t, gen.pairs, 4)
	assert.Equal(t, "Qu'est-ce qui compte le plus pour toi ?", gen.pairs[0].Question)
	assert.Equal(t, "la confiance", gen.pairs[0].Answer)
	assert.Equal(t, "Comment gères-tu les conflits ?", gen.pairs[1].Question)
	assert.Equal(t, "Comment exprimes-tu ta reconnaissance ?", gen.pairs[3].Question)

	assert.Equal(t, 1, reports.calls)
	assert.Equal(t, store.created.SessionID, reports.sessionID)
	assert.Equal(t, "**Rapport**", reports.content)
	assert.Equal(t, gen.pairs, reports.source)
}

func TestSubmitGenerationFailureStillReturnsSession(t *testing.T) {
	store := newStubSubmissionStore()
	q := store.addQuestion(1, "question")

	reports := &stubReportUpserter{}
	gen := &stubGenerator{result: insight.Result{Success: false, Error: "upstream down"}}
	svc := NewSessionService(store, reports, gen)

	res, err := svc.Submit(context.Background(), dto.SubmitSessionRequest{
		Responses: []dto.SubmitResponseInput{{QuestionID: q.String(), Answer: "réponse"}},
	})
	require.NoError(t, err)
	assert.False(t, res.AIGenerated)
	assert.NotEmpty(t, res.SessionID, "answers are never lost to a provider outage")
	assert.Equal(t, 0, reports.calls, "no report row on failed generation")
}

func TestSubmitUpsertFailureIsNotFatal(t *testing.T) {
	store := newStubSubmissionStore()
	q := store.addQuestion(1, "question")

	reports := &stubReportUpserter{err: errors.New("disk full")}
	gen := &stubGenerator{result: insight.Result{Content: "rapport", Success: true}}
	svc := NewSessionService(store, reports, gen)

	res, err := svc.Submit(context.Background(), dto.SubmitSessionRequest{
		Responses: []dto.SubmitResponseInput{{QuestionID: q.String(), Answer: "réponse"}},
	})
	require.NoError(t, err)
	assert.True(t, res.AIGenerated)
	assert.NotEmpty(t, res.SessionID)
}

func TestSubmitRejectsBeforePersistence(t *testing.T) {
	store := newStubSubmissionStore()
	known := store.addQuestion(1, "question")

	svc := NewSessionService(store, &stubReportUpserter{}, &stubGenerator{})

	cases := []struct {
		name string
		req  dto.SubmitSessionRequest
	}{
		{
			name: "malformed user id",
			req: dto.SubmitSessionRequest{
				UserID:    strPtr("not-a-uuid"),
				Responses: []dto.SubmitResponseInput{{QuestionID: known.String(), Answer: "a"}},
			},
		},
		{
			name: "malformed question id",
			req: dto.SubmitSessionRequest{
				Responses: []dto.SubmitResponseInput{{QuestionID: "nope", Answer: "a"}},
			},
		},
		{
			name: "duplicate question",
			req: dto.SubmitSessionRequest{
				Responses: []dto.SubmitResponseInput{
					{QuestionID: known.String(), Answer: "a"},
					{QuestionID: known.String(), Answer: "b"},
				},
			},
		},
		{
			name: "unknown question",
			req: dto.SubmitSessionRequest{
				Responses: []dto.SubmitResponseInput{{QuestionID: uuid.NewString(), Answer: "a"}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, store.created, "rejection must happen before any write")
		})
	}
}

func TestSubmitCarriesUserID(t *testing.T) {
	store := newStubSubmissionStore()
	q := store.addQuestion(1, "question")
	userID := uuid.New()

	svc := NewSessionService(store, &stubReportUpserter{}, &stubGenerator{result: insight.Result{Success: false}})

	_, err := svc.Submit(context.Background(), dto.SubmitSessionRequest{
		UserID:    strPtr(userID.String()),
		Responses: []dto.SubmitResponseInput{{QuestionID: q.String(), Answer: "a"}},
	})
	require.NoError(t, err)

	require.NotNil(t, store.created.SessionUserID)
	assert.Equal(t, userID, *store.created.SessionUserID)
	require.NotNil(t, store.created.SessionResponses[0].ResponseUserID)
	assert.Equal(t, userID, *store.created.SessionResponses[0].ResponseUserID)
}

// =======================
// Reads
// =======================

func TestGetSessionNotFound(t *testing.T) {
	svc := NewSessionService(newStubSubmissionStore(), &stubReportUpserter{}, &stubGenerator{})

	_, err := svc.GetSession(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestOrderedPairsHandlesDeletedQuestion(t *testing.T) {
	store := newStubSubmissionStore()
	kept := catalogModel.QuestionModel{
		QuestionID:    uuid.New(),
		QuestionText:  "question conservée",
		QuestionOrder: 1,
	}
	sessID := uuid.New()
	store.stored[sessID] = &model.SessionModel{
		SessionID: sessID,
		SessionResponses: []model.ResponseModel{
			{ResponseID: uuid.New(), ResponseQuestionID: uuid.New(), ResponseAnswer: "réponse orpheline"},
			{ResponseID: uuid.New(), ResponseQuestionID: kept.QuestionID, ResponseAnswer: "réponse gardée", ResponseQuestion: &kept},
		},
	}

	svc := NewSessionService(store, &stubReportUpserter{}, &stubGenerator{})
	pairs, err := svc.OrderedPairs(context.Background(), sessID)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	// The orphaned response sorts with order 0 and keeps an empty prompt.
	assert.Equal(t, insight.QA{Question: "", Answer: "réponse orpheline"}, pairs[0])
	assert.Equal(t, insight.QA{Question: "question conservée", Answer: "réponse gardée"}, pairs[1])
}

func strPtr(s string) *string { return &s }
