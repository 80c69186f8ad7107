package learning

import (
	"encoding/json"
	"fmt"
	"strings"

	learningModels "worksuite/models/learning"
)

// ScoreQuiz scores one answer set against a quiz. Pure: same inputs always
// give the same result. A question with no submitted answer, or with
// SelectedOption -1, simply earns no points.
func ScoreQuiz(quiz learningModels.Quiz, questions []learningModels.Question, answers []Answer) ScoreResult {
	selected := make(map[uint]int, len(answers))
	for _, a := range answers {
		selected[a.QuestionID] = a.SelectedOption
	}

	result := ScoreResult{}
	for _, q := range questions {
		result.TotalPoints += q.Points
		idx, ok := selected[q.ID]
		if !ok || idx < 0 {
			continue
		}
		if idx == q.CorrectOption {
			result.Score += q.Points
		}
	}

	if result.TotalPoints > 0 {
		result.Percentage = float64(result.Score) / float64(result.TotalPoints) * 100
	}
	result.Passed = result.Percentage >= float64(quiz.PassingScore)
	return result
}

// QuestionOptions decodes a question's JSON option list
func QuestionOptions(q learningModels.Question) ([]string, error) {
	if len(q.Options) == 0 {
		return nil, nil
	}
	var options []string
	if err := json.Unmarshal(q.Options, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// ValidateQuiz checks a quiz definition is usable before it is scored or
// published. It returns a ValidationError describing every problem found.
func ValidateQuiz(quiz learningModels.Quiz, questions []learningModels.Question) error {
	errs := make(map[string]string)

	if quiz.PassingScore < 0 || quiz.PassingScore > 100 {
		errs["passing_score"] = "Passing score must be between 0 and 100!"
	}
	if quiz.TimeLimit < 0 {
		errs["time_limit"] = "Time limit cannot be negative!"
	}
	if len(questions) == 0 {
		errs["questions"] = "Quiz must have at least one question!"
	}

	for i, q := range questions {
		field := fmt.Sprintf("questions[%d]", i)

		if strings.TrimSpace(q.Text) == "" {
			errs[field+".text"] = "Question text is required!"
		}
		if q.Points <= 0 {
			errs[field+".points"] = "Points must be a positive number!"
		}

		switch q.Type {
		case learningModels.QuestionTypeMultipleChoice:
			options, err := QuestionOptions(q)
			if err != nil {
				errs[field+".options"] = "Options must be a JSON array of strings!"
				continue
			}
			if len(options) < 2 {
				errs[field+".options"] = "At least two options are required!"
				continue
			}
			for j, opt := range options {
				if strings.TrimSpace(opt) == "" {
					errs[fmt.Sprintf("%s.options[%d]", field, j)] = "Option text cannot be empty!"
				}
			}
			if q.CorrectOption < 0 || q.CorrectOption >= len(options) {
				errs[field+".correct_option"] = "Correct option index is out of range!"
			}
		case learningModels.QuestionTypeTrueFalse:
			// fixed two-option variant
			if q.CorrectOption != 0 && q.CorrectOption != 1 {
				errs[field+".correct_option"] = "True-false answer must be 0 or 1!"
			}
		default:
			errs[field+".type"] = "Unknown question type!"
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// TrueFalseOptions is the fixed option pair used for true-false questions
func TrueFalseOptions() []string {
	return []string{"True", "False"}
}
