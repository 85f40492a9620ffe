package service

import (
	"context"
	"errors"

	"github.com/gogotex/qa-service/internal/qa"
	"github.com/gogotex/qa-service/internal/store"
	"github.com/gogotex/qa-service/pkg/logger"
	"github.com/gogotex/qa-service/pkg/metrics"
)

// Operation names, used in errors and metrics.
const (
	OpQuestions       = "questions"
	OpQuestion        = "question"
	OpAnswers         = "answers"
	OpAnswer          = "answer"
	OpQuestionAnswers = "Question.answers"
	OpAddQuestion     = "addQuestion"
	OpAddAnswer       = "addAnswer"
)

// AddQuestionInput carries the addQuestion arguments. Empty strings are accepted.
type AddQuestionInput struct {
	Question string
	Contents string
}

// AddAnswerInput carries the addAnswer arguments. QuestionID is not checked
// against existing questions.
type AddAnswerInput struct {
	QuestionID string
	Contents   string
}

// Service implements the question/answer operations on top of a document
// store. It holds no state besides the store handle.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// finish converts a store failure into an *OperationError and records the
// outcome. Not-found is handled by callers before reaching here.
func (s *Service) finish(op string, err error) error {
	if err == nil {
		metrics.GraphQLOperations.WithLabelValues(op, metrics.OutcomeOK).Inc()
		return nil
	}
	metrics.GraphQLOperations.WithLabelValues(op, metrics.OutcomeError).Inc()
	logger.Warnf("%s failed: %v", op, err)
	return &OperationError{Op: op, Err: err}
}

func (s *Service) Questions(ctx context.Context) ([]qa.Question, error) {
	docs, err := s.store.All(ctx, qa.QuestionsCollection)
	if err != nil {
		return nil, s.finish(OpQuestions, err)
	}
	return qa.QuestionsFromDocuments(docs), s.finish(OpQuestions, nil)
}

// Question returns nil, nil when no question has the given id.
func (s *Service) Question(ctx context.Context, id string) (*qa.Question, error) {
	doc, err := s.store.Get(ctx, qa.QuestionsCollection, id)
	if errors.Is(err, store.ErrNotFound) {
		metrics.GraphQLOperations.WithLabelValues(OpQuestion, metrics.OutcomeNotFound).Inc()
		return nil, nil
	}
	if err != nil {
		return nil, s.finish(OpQuestion, err)
	}
	q := qa.QuestionFromDocument(doc)
	return &q, s.finish(OpQuestion, nil)
}

func (s *Service) Answers(ctx context.Context) ([]qa.Answer, error) {
	docs, err := s.store.All(ctx, qa.AnswersCollection)
	if err != nil {
		return nil, s.finish(OpAnswers, err)
	}
	return qa.AnswersFromDocuments(docs), s.finish(OpAnswers, nil)
}

// Answer returns nil, nil when no answer has the given id.
func (s *Service) Answer(ctx context.Context, id string) (*qa.Answer, error) {
	doc, err := s.store.Get(ctx, qa.AnswersCollection, id)
	if errors.Is(err, store.ErrNotFound) {
		metrics.GraphQLOperations.WithLabelValues(OpAnswer, metrics.OutcomeNotFound).Inc()
		return nil, nil
	}
	if err != nil {
		return nil, s.finish(OpAnswer, err)
	}
	a := qa.AnswerFromDocument(doc)
	return &a, s.finish(OpAnswer, nil)
}

// AnswersFor returns every answer whose questionId equals questionID.
func (s *Service) AnswersFor(ctx context.Context, questionID string) ([]qa.Answer, error) {
	docs, err := s.store.Where(ctx, qa.AnswersCollection, "questionId", questionID)
	if err != nil {
		return nil, s.finish(OpQuestionAnswers, err)
	}
	return qa.AnswersFromDocuments(docs), s.finish(OpQuestionAnswers, nil)
}

func (s *Service) AddQuestion(ctx context.Context, in AddQuestionInput) (*qa.Question, error) {
	q := qa.Question{
		ID:       s.store.NewID(qa.QuestionsCollection),
		Question: in.Question,
		Contents: in.Contents,
	}
	doc, err := s.create(ctx, qa.QuestionsCollection, q.ID, q.Document())
	if err != nil {
		return nil, s.finish(OpAddQuestion, err)
	}
	saved := qa.QuestionFromDocument(doc)
	logger.Debugf("question created: id=%s", saved.ID)
	return &saved, s.finish(OpAddQuestion, nil)
}

func (s *Service) AddAnswer(ctx context.Context, in AddAnswerInput) (*qa.Answer, error) {
	a := qa.Answer{
		ID:         s.store.NewID(qa.AnswersCollection),
		Contents:   in.Contents,
		QuestionID: in.QuestionID,
	}
	doc, err := s.create(ctx, qa.AnswersCollection, a.ID, a.Document())
	if err != nil {
		return nil, s.finish(OpAddAnswer, err)
	}
	saved := qa.AnswerFromDocument(doc)
	logger.Debugf("answer created: id=%s question=%s", saved.ID, saved.QuestionID)
	return &saved, s.finish(OpAddAnswer, nil)
}

// create writes doc and reads it back so the caller sees exactly what the
// store persisted. The read must follow the write.
func (s *Service) create(ctx context.Context, collection, id string, doc store.Document) (store.Document, error) {
	if err := s.store.Set(ctx, collection, id, doc); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, collection, id)
}
