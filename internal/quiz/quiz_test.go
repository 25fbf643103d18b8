package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type questionDoc struct {
	Question      any `json:"question,omitempty"`
	Options       any `json:"options,omitempty"`
	CorrectAnswer any `json:"correct_answer,omitempty"`
	Explanation   any `json:"explanation,omitempty"`
}

func validQuestion(n int) questionDoc {
	return questionDoc{
		Question:      fmt.Sprintf("Who scored in play %d?", n),
		Options:       []string{"Ohtani", "Betts", "Freeman", "Smith"},
		CorrectAnswer: "Ohtani",
		Explanation:   "Ohtani homered.",
	}
}

func validDoc() map[string]any {
	questions := make([]questionDoc, 0, QuestionCount)
	for i := 0; i < QuestionCount; i++ {
		questions = append(questions, validQuestion(i))
	}
	return map[string]any{"questions": questions}
}

func marshal(t *testing.T, doc any) string {
	t.Helper()
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(b)
}

func assertParseError(t *testing.T, err error, wantIndex int, wantRule string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if pe.QuestionIndex != wantIndex {
		t.Fatalf("expected question index %d, got %d", wantIndex, pe.QuestionIndex)
	}
	if !strings.Contains(pe.Rule, wantRule) {
		t.Fatalf("expected rule containing %q, got %q", wantRule, pe.Rule)
	}
}

func TestParseQuizValidDocument(t *testing.T) {
	quiz, err := ParseQuiz(marshal(t, validDoc()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz.Questions) != QuestionCount {
		t.Fatalf("expected %d questions, got %d", QuestionCount, len(quiz.Questions))
	}
	for i, q := range quiz.Questions {
		if q.Index != i {
			t.Fatalf("question %d has index %d", i, q.Index)
		}
		if len(q.Options) != 4 {
			t.Fatalf("question %d has %d options", i, len(q.Options))
		}
		if q.CorrectAnswer != "Ohtani" {
			t.Fatalf("question %d answer %q", i, q.CorrectAnswer)
		}
	}
}

func TestParseQuizExtractsObjectFromProse(t *testing.T) {
	raw := "Here is your quiz!\n\n" + marshal(t, validDoc()) + "\n\nEnjoy the game."
	quiz, err := ParseQuiz(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz.Questions) != QuestionCount {
		t.Fatalf("expected %d questions, got %d", QuestionCount, len(quiz.Questions))
	}
}

func TestParseQuizStripsCommentLines(t *testing.T) {
	body := marshal(t, validDoc())
	// Re-indent so comment lines sit on their own lines inside the object.
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(body), "", "  "); err != nil {
		t.Fatalf("indent fixture: %v", err)
	}
	lines := strings.SplitN(buf.String(), "\n", 2)
	raw := lines[0] + "\n  // model commentary\n  # more commentary\n" + lines[1]

	quiz, err := ParseQuiz(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz.Questions) != QuestionCount {
		t.Fatalf("expected %d questions, got %d", QuestionCount, len(quiz.Questions))
	}
}

func TestParseQuizNoObjectFound(t *testing.T) {
	_, err := ParseQuiz("I could not generate a quiz, sorry.")
	assertParseError(t, err, -1, "no JSON object found")
}

func TestParseQuizInvalidJSON(t *testing.T) {
	_, err := ParseQuiz(`{"questions": [}`)
	assertParseError(t, err, -1, "invalid JSON")
}

func TestParseQuizMissingQuestionsArray(t *testing.T) {
	_, err := ParseQuiz(`{"title": "quiz"}`)
	assertParseError(t, err, -1, "missing questions array")
}

func TestParseQuizWrongQuestionCount(t *testing.T) {
	doc := validDoc()
	doc["questions"] = doc["questions"].([]questionDoc)[:3]
	_, err := ParseQuiz(marshal(t, doc))
	assertParseError(t, err, -1, "expected 5 questions, got 3")
}

func TestParseQuizMissingQuestionText(t *testing.T) {
	doc := validDoc()
	questions := doc["questions"].([]questionDoc)
	questions[2].Question = "   "
	_, err := ParseQuiz(marshal(t, doc))
	assertParseError(t, err, 2, "missing question text")
}

func TestParseQuizMissingExplanation(t *testing.T) {
	doc := validDoc()
	questions := doc["questions"].([]questionDoc)
	questions[1].Explanation = nil
	_, err := ParseQuiz(marshal(t, doc))
	assertParseError(t, err, 1, "missing explanation")
}

func TestParseQuizWrongOptionCount(t *testing.T) {
	doc := validDoc()
	questions := doc["questions"].([]questionDoc)
	questions[4].Options = []string{"Ohtani", "Betts", "Freeman"}
	_, err := ParseQuiz(marshal(t, doc))
	assertParseError(t, err, 4, "expected 4 options, got 3")
}

func TestParseQuizNonStringOption(t *testing.T) {
	doc := validDoc()
	questions := doc["questions"].([]questionDoc)
	questions[0].Options = []any{"Ohtani", 42, "Freeman", "Smith"}
	_, err := ParseQuiz(marshal(t, doc))
	assertParseError(t, err, 0, "option is not a string value")
}

func TestParseQuizAnswerMustMatchOption(t *testing.T) {
	doc := validDoc()
	questions := doc["questions"].([]questionDoc)
	questions[3].CorrectAnswer = "ohtani"
	_, err := ParseQuiz(marshal(t, doc))
	assertParseError(t, err, 3, "correct answer does not match any option")
}

func TestParseQuizAnswerTrimmedBeforeMatch(t *testing.T) {
	doc := validDoc()
	questions := doc["questions"].([]questionDoc)
	questions[0].CorrectAnswer = "  Ohtani  "
	quiz, err := ParseQuiz(marshal(t, doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quiz.Questions[0].CorrectAnswer != "Ohtani" {
		t.Fatalf("expected trimmed answer, got %q", quiz.Questions[0].CorrectAnswer)
	}
}

func TestParseQuizMissingCorrectAnswer(t *testing.T) {
	doc := validDoc()
	questions := doc["questions"].([]questionDoc)
	questions[0].CorrectAnswer = nil
	_, err := ParseQuiz(marshal(t, doc))
	assertParseError(t, err, 0, "missing correct answer")
}

func TestParseErrorMessageFormats(t *testing.T) {
	docLevel := &ParseError{QuestionIndex: -1, Rule: "no JSON object found"}
	if docLevel.Error() != "malformed model output: no JSON object found" {
		t.Fatalf("unexpected message %q", docLevel.Error())
	}
	perQuestion := &ParseError{QuestionIndex: 2, Rule: "missing options"}
	if perQuestion.Error() != "malformed model output: question 2: missing options" {
		t.Fatalf("unexpected message %q", perQuestion.Error())
	}
}
