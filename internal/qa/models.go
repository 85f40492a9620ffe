package qa

// Collection names in the document store.
const (
	QuestionsCollection = "questions"
	AnswersCollection   = "answers"
)

// Question is a prompt with supplementary body text. Its answers are found by
// back-reference (Answer.QuestionID), never stored on the question itself.
type Question struct {
	ID       string `json:"id" bson:"id"`
	Question string `json:"question" bson:"question"`
	Contents string `json:"contents" bson:"contents"`
}

// Answer belongs to the question named by QuestionID. The reference is not
// checked when the answer is written.
type Answer struct {
	ID         string `json:"id" bson:"id"`
	Contents   string `json:"contents" bson:"contents"`
	QuestionID string `json:"questionId" bson:"questionId"`
}
