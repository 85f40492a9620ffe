package graph

import (
	"context"

	"github.com/gogotex/qa-service/internal/qa"
	"github.com/gogotex/qa-service/internal/qa/service"
	graphql "github.com/graph-gophers/graphql-go"
)

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	svc *service.Service
}

func NewResolver(svc *service.Service) *Resolver {
	return &Resolver{svc: svc}
}

type idArgs struct {
	ID graphql.ID
}

type addQuestionArgs struct {
	Question string
	Contents string
}

type addAnswerArgs struct {
	QuestionID graphql.ID
	Contents   string
}

func (r *Resolver) Questions(ctx context.Context) ([]*questionResolver, error) {
	qs, err := r.svc.Questions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*questionResolver, 0, len(qs))
	for _, q := range qs {
		out = append(out, &questionResolver{q: q, svc: r.svc})
	}
	return out, nil
}

func (r *Resolver) Question(ctx context.Context, args idArgs) (*questionResolver, error) {
	q, err := r.svc.Question(ctx, string(args.ID))
	if err != nil || q == nil {
		return nil, err
	}
	return &questionResolver{q: *q, svc: r.svc}, nil
}

func (r *Resolver) Answers(ctx context.Context) ([]*answerResolver, error) {
	as, err := r.svc.Answers(ctx)
	if err != nil {
		return nil, err
	}
	return answerResolvers(as), nil
}

func (r *Resolver) Answer(ctx context.Context, args idArgs) (*answerResolver, error) {
	a, err := r.svc.Answer(ctx, string(args.ID))
	if err != nil || a == nil {
		return nil, err
	}
	return &answerResolver{a: *a}, nil
}

func (r *Resolver) AddQuestion(ctx context.Context, args addQuestionArgs) (*questionResolver, error) {
	q, err := r.svc.AddQuestion(ctx, service.AddQuestionInput{Question: args.Question, Contents: args.Contents})
	if err != nil {
		return nil, err
	}
	return &questionResolver{q: *q, svc: r.svc}, nil
}

func (r *Resolver) AddAnswer(ctx context.Context, args addAnswerArgs) (*answerResolver, error) {
	a, err := r.svc.AddAnswer(ctx, service.AddAnswerInput{QuestionID: string(args.QuestionID), Contents: args.Contents})
	if err != nil {
		return nil, err
	}
	return &answerResolver{a: *a}, nil
}

type questionResolver struct {
	q   qa.Question
	svc *service.Service
}

func (r *questionResolver) ID() graphql.ID { return graphql.ID(r.q.ID) }
func (r *questionResolver) Question() string { return r.q.Question }
func (r *questionResolver) Contents() string { return r.q.Contents }

// Answers only runs when the client selects the field.
func (r *questionResolver) Answers(ctx context.Context) ([]*answerResolver, error) {
	as, err := r.svc.AnswersFor(ctx, r.q.ID)
	if err != nil {
		return nil, err
	}
	return answerResolvers(as), nil
}

type answerResolver struct {
	a qa.Answer
}

func (r *answerResolver) ID() graphql.ID { return graphql.ID(r.a.ID) }
func (r *answerResolver) Contents() string { return r.a.Contents }
func (r *answerResolver) QuestionID() graphql.ID { return graphql.ID(r.a.QuestionID) }

func answerResolvers(as []qa.Answer) []*answerResolver {
	out := make([]*answerResolver, 0, len(as))
	for _, a := range as {
		out = append(out, &answerResolver{a: a})
	}
	return out
}
