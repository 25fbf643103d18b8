// Package quiz validates the structured output of a generative model. Model
// text is never trusted to be syntactically or semantically correct; any
// violation fails the whole parse.
package quiz

import (
	"encoding/json"
	"fmt"
	"strings"
)

// QuestionCount is the number of questions a quiz must carry.
const QuestionCount = 5

const optionCount = 4

// Question is one validated quiz entry. Index is zero-based and assigned in
// array order during validation.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Index         int      `json:"index"`
}

// Quiz is the exact shape delivered to downstream clients.
type Quiz struct {
	Questions []Question `json:"questions"`
}

// ParseError reports which question and which rule failed validation.
// QuestionIndex is -1 for document-level failures.
type ParseError struct {
	QuestionIndex int
	Rule          string
}

func (e *ParseError) Error() string {
	if e.QuestionIndex < 0 {
		return "malformed model output: " + e.Rule
	}
	return fmt.Sprintf("malformed model output: question %d: %s", e.QuestionIndex, e.Rule)
}

func docErr(rule string) *ParseError {
	return &ParseError{QuestionIndex: -1, Rule: rule}
}

type rawQuestion struct {
	Question      *string           `json:"question"`
	Options       []json.RawMessage `json:"options"`
	CorrectAnswer json.RawMessage   `json:"correct_answer"`
	Explanation   *string           `json:"explanation"`
}

// ParseQuiz extracts, repairs superficially, parses and validates a model
// response expected to contain an embedded quiz object. The only repairs
// applied are discarding commentary outside the outermost braces and
// stripping comment lines; everything else is validated strictly.
func ParseQuiz(raw string) (Quiz, error) {
	candidate, err := extractJSON(raw)
	if err != nil {
		return Quiz{}, err
	}

	var doc struct {
		Questions []rawQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return Quiz{}, docErr("invalid JSON: " + err.Error())
	}
	if doc.Questions == nil {
		return Quiz{}, docErr("missing questions array")
	}
	if len(doc.Questions) != QuestionCount {
		return Quiz{}, docErr(fmt.Sprintf("expected %d questions, got %d", QuestionCount, len(doc.Questions)))
	}

	quiz := Quiz{Questions: make([]Question, 0, QuestionCount)}
	for i, rq := range doc.Questions {
		q, err := validateQuestion(i, rq)
		if err != nil {
			return Quiz{}, err
		}
		quiz.Questions = append(quiz.Questions, q)
	}
	return quiz, nil
}

func validateQuestion(index int, rq rawQuestion) (Question, error) {
	if rq.Question == nil || strings.TrimSpace(*rq.Question) == "" {
		return Question{}, &ParseError{QuestionIndex: index, Rule: "missing question text"}
	}
	if rq.Explanation == nil {
		return Question{}, &ParseError{QuestionIndex: index, Rule: "missing explanation"}
	}
	if rq.Options == nil {
		return Question{}, &ParseError{QuestionIndex: index, Rule: "missing options"}
	}
	if len(rq.Options) != optionCount {
		return Question{}, &ParseError{
			QuestionIndex: index,
			Rule:          fmt.Sprintf("expected %d options, got %d", optionCount, len(rq.Options)),
		}
	}
	if rq.CorrectAnswer == nil {
		return Question{}, &ParseError{QuestionIndex: index, Rule: "missing correct answer"}
	}

	options := make([]string, 0, optionCount)
	for _, raw := range rq.Options {
		opt, ok := coerceString(raw)
		if !ok {
			return Question{}, &ParseError{QuestionIndex: index, Rule: "option is not a string value"}
		}
		options = append(options, opt)
	}

	answer, ok := coerceString(rq.CorrectAnswer)
	if !ok {
		return Question{}, &ParseError{QuestionIndex: index, Rule: "correct answer is not a string value"}
	}

	// A near-miss (trailing punctuation, casing) is a failure, not an
	// auto-correction.
	found := false
	for _, opt := range options {
		if opt == answer {
			found = true
			break
		}
	}
	if !found {
		return Question{}, &ParseError{QuestionIndex: index, Rule: "correct answer does not match any option"}
	}

	return Question{
		Question:      strings.TrimSpace(*rq.Question),
		Options:       options,
		CorrectAnswer: answer,
		Explanation:   strings.TrimSpace(*rq.Explanation),
		Index:         index,
	}, nil
}

// extractJSON takes the span between the first '{' and the last '}'
// inclusive, then drops comment lines the model may have emitted inside the
// block.
func extractJSON(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", docErr("no JSON object found")
	}
	return stripCommentLines(raw[start : end+1]), nil
}

func stripCommentLines(candidate string) string {
	lines := strings.Split(candidate, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// coerceString accepts only JSON strings, trimming the result. Numbers,
// booleans, objects and arrays do not coerce.
func coerceString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return strings.TrimSpace(s), true
}
