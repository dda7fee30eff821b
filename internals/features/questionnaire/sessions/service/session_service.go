package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogModel "relationnel_backend/internals/features/questionnaire/catalog/model"
	"relationnel_backend/internals/features/insight"
	"relationnel_backend/internals/features/questionnaire/sessions/dto"
	"relationnel_backend/internals/features/questionnaire/sessions/model"
)

var (
	// ErrValidation marks rejections that happen before any persistence;
	// callers must keep it distinguishable from storage failures.
	ErrValidation      = errors.New("invalid submission")
	ErrSessionNotFound = errors.New("session not found")
)

// SubmissionStore is the persistence surface of the submitter; tests
// substitute a stub.
type SubmissionStore interface {
	QuestionsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]catalogModel.QuestionModel, error)
	CreateSessionWithResponses(ctx context.Context, s *model.SessionModel) error
	SessionWithResponses(ctx context.Context, id uuid.UUID) (*model.SessionModel, error)
}

// ReportUpserter stores the generated report for a session (create or
// overwrite, single row).
type ReportUpserter interface {
	UpsertForSession(ctx context.Context, sessionID uuid.UUID, content string, source []insight.QA) error
}

// Generator produces the narrative report; it never fails hard.
type Generator interface {
	Generate(ctx context.Context, pairs []insight.QA) insight.Result
}

// =======================
// GORM store
// =======================

type GormSubmissionStore struct {
	DB *gorm.DB
}

func NewGormSubmissionStore(db *gorm.DB) *GormSubmissionStore {
	return &GormSubmissionStore{DB: db}
}

func (s *GormSubmissionStore) QuestionsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]catalogModel.QuestionModel, error) {
	var questions []catalogModel.QuestionModel
	if err := s.DB.WithContext(ctx).
		Where("question_id IN ?", ids).
		Find(&questions).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]catalogModel.QuestionModel, len(questions))
	for _, q := range questions {
		out[q.QuestionID] = q
	}
	return out, nil
}

func (s *GormSubmissionStore) CreateSessionWithResponses(ctx context.Context, sess *model.SessionModel) error {
	// Session + nested responses in one transaction.
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(sess).Error
	})
}

func (s *GormSubmissionStore) SessionWithResponses(ctx context.Context, id uuid.UUID) (*model.SessionModel, error) {
	var sess model.SessionModel
	err := s.DB.WithContext(ctx).
		Preload("SessionResponses", func(db *gorm.DB) *gorm.DB {
			return db.Order("response_created_at ASC, response_id ASC")
		}).
		Preload("SessionResponses.ResponseQuestion").
		First(&sess, "session_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &sess, nil
}

// =======================
// Service
// =======================

type SessionService struct {
	Store     SubmissionStore
	Reports   ReportUpserter
	Generator Generator
}

func NewSessionService(store SubmissionStore, reports ReportUpserter, gen Generator) *SessionService {
	return &SessionService{Store: store, Reports: reports, Generator: gen}
}

// Submit validates the collected answers, persists session + responses
// atomically, then runs report generation. Generation failure is not fatal:
// the session id is returned either way.
func (s *SessionService) Submit(ctx context.Context, req dto.SubmitSessionRequest) (dto.SubmitSessionResult, error) {
	var userID *uuid.UUID
	if req.UserID != nil {
		parsed, err := uuid.Parse(*req.UserID)
		if err != nil {
			return dto.SubmitSessionResult{}, fmt.Errorf("%w: malformed user_id", ErrValidation)
		}
		userID = &parsed
	}

	// Reject unknown and duplicate question ids before touching storage.
	seen := make(map[uuid.UUID]bool, len(req.Responses))
	ids := make([]uuid.UUID, 0, len(req.Responses))
	for _, r := range req.Responses {
		qid, err := uuid.Parse(r.QuestionID)
		if err != nil {
			return dto.SubmitSessionResult{}, fmt.Errorf("%w: malformed question_id %q", ErrValidation, r.QuestionID)
		}
		if seen[qid] {
			return dto.SubmitSessionResult{}, fmt.Errorf("%w: duplicate answer for question %s", ErrValidation, qid)
		}
		seen[qid] = true
		ids = append(ids, qid)
	}

	questions, err := s.Store.QuestionsByIDs(ctx, ids)
	if err != nil {
		return dto.SubmitSessionResult{}, err
	}
	for _, qid := range ids {
		if _, ok := questions[qid]; !ok {
			return dto.SubmitSessionResult{}, fmt.Errorf("%w: unknown question %s", ErrValidation, qid)
		}
	}

	sess := model.SessionModel{SessionUserID: userID}
	for _, r := range req.Responses {
		qid, _ := uuid.Parse(r.QuestionID)
		sess.SessionResponses = append(sess.SessionResponses, model.ResponseModel{
			ResponseQuestionID: qid,
			ResponseUserID:     userID,
			ResponseAnswer:     r.Answer,
		})
	}

	if err := s.Store.CreateSessionWithResponses(ctx, &sess); err != nil {
		return dto.SubmitSessionResult{}, err
	}

	pairs := orderedPairs(sess.SessionResponses, questions)
	result := s.Generator.Generate(ctx, pairs)
	if result.Success && result.Content != "" {
		if err := s.Reports.UpsertForSession(ctx, sess.SessionID, result.Content, pairs); err != nil {
			// Report storage failure must not undo a committed session.
			log.Printf("[ERROR] report upsert for session %s failed: %v", sess.SessionID, err)
		}
	} else if !result.Success {
		log.Printf("[WARN] AI generation failed for session %s: %s", sess.SessionID, result.Error)
	}

	return dto.SubmitSessionResult{
		SessionID:   sess.SessionID.String(),
		AIGenerated: result.Success,
	}, nil
}

// GetSession reads a session with its responses and their questions.
func (s *SessionService) GetSession(ctx context.Context, id uuid.UUID) (*model.SessionModel, error) {
	return s.Store.SessionWithResponses(ctx, id)
}

// OrderedPairs rebuilds the canonical (question text, answer) list of a
// stored session, for report regeneration.
func (s *SessionService) OrderedPairs(ctx context.Context, sessionID uuid.UUID) ([]insight.QA, error) {
	sess, err := s.Store.SessionWithResponses(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	questions := make(map[uuid.UUID]catalogModel.QuestionModel, len(sess.SessionResponses))
	for _, r := range sess.SessionResponses {
		if r.ResponseQuestion != nil {
			questions[r.ResponseQuestionID] = *r.ResponseQuestion
		}
	}
	return orderedPairs(sess.SessionResponses, questions), nil
}

// orderedPairs applies the canonical comparator once: question order
// ascending, ties broken by question id. Responses whose question was
// deleted keep their answer under an empty prompt.
func orderedPairs(responses []model.ResponseModel, questions map[uuid.UUID]catalogModel.QuestionModel) []insight.QA {
	type entry struct {
		order int
		id    uuid.UUID
		qa    insight.QA
	}
	entries := make([]entry, 0, len(responses))
	for _, r := range responses {
		e := entry{id: r.ResponseQuestionID}
		if q, ok := questions[r.ResponseQuestionID]; ok {
			e.order = q.QuestionOrder
			e.qa = insight.QA{Question: q.QuestionText, Answer: r.ResponseAnswer}
		} else {
			e.qa = insight.QA{Answer: r.ResponseAnswer}
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].order != entries[j].order {
			return entries[i].order < entries[j].order
		}
		return entries[i].id.String() < entries[j].id.String()
	})

	pairs := make([]insight.QA, 0, len(entries))
	for _, e := range entries {
		pairs = append(pairs, e.qa)
	}
	return pairs
}
