package qa

import (
	"github.com/gogotex/qa-service/internal/store"
	"github.com/spf13/cast"
)

// Stored documents are written in entity shape already, so mapping is a field
// copy: extra fields are dropped and missing ones come back as "".

func field(doc store.Document, key string) string {
	return cast.ToString(doc[key])
}

func QuestionFromDocument(doc store.Document) Question {
	return Question{
		ID:       field(doc, "id"),
		Question: field(doc, "question"),
		Contents: field(doc, "contents"),
	}
}

func AnswerFromDocument(doc store.Document) Answer {
	return Answer{
		ID:         field(doc, "id"),
		Contents:   field(doc, "contents"),
		QuestionID: field(doc, "questionId"),
	}
}

func (q Question) Document() store.Document {
	return store.Document{"id": q.ID, "question": q.Question, "contents": q.Contents}
}

func (a Answer) Document() store.Document {
	return store.Document{"id": a.ID, "contents": a.Contents, "questionId": a.QuestionID}
}

func QuestionsFromDocuments(docs []store.Document) []Question {
	out := make([]Question, 0, len(docs))
	for _, d := range docs {
		out = append(out, QuestionFromDocument(d))
	}
	return out
}

func AnswersFromDocuments(docs []store.Document) []Answer {
	out := make([]Answer, 0, len(docs))
	for _, d := range docs {
		out = append(out, AnswerFromDocument(d))
	}
	return out
}
