package learning

import (
	"encoding/json"
	"testing"

	learningModels "worksuite/models/learning"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoQuestionQuiz(t *testing.T) (learningModels.Quiz, []learningModels.Question) {
	t.Helper()
	options, err := json.Marshal([]string{"Right", "Wrong", "Also wrong"})
	require.NoError(t, err)

	quiz := learningModels.Quiz{PassingScore: 70}
	questions := []learningModels.Question{
		{Text: "Q1", Type: learningModels.QuestionTypeMultipleChoice, Options: options, CorrectOption: 0, Points: 1},
		{Text: "Q2", Type: learningModels.QuestionTypeMultipleChoice, Options: options, CorrectOption: 1, Points: 1},
	}
	questions[0].ID = 1
	questions[1].ID = 2
	return quiz, questions
}

func TestScoreQuizAllCorrect(t *testing.T) {
	quiz, questions := twoQuestionQuiz(t)

	result := ScoreQuiz(quiz, questions, []Answer{
		{QuestionID: 1, SelectedOption: 0},
		{QuestionID: 2, SelectedOption: 1},
	})

	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 2, result.TotalPoints)
	assert.Equal(t, float64(100), result.Percentage)
	assert.True(t, result.Passed)
}

func TestScoreQuizHalfCorrectFailsAt70(t *testing.T) {
	quiz, questions := twoQuestionQuiz(t)

	result := ScoreQuiz(quiz, questions, []Answer{
		{QuestionID: 1, SelectedOption: 0},
		{QuestionID: 2, SelectedOption: 0},
	})

	assert.Equal(t, 1, result.Score)
	assert.Equal(t, float64(50), result.Percentage)
	assert.False(t, result.Passed)
}

func TestScoreQuizUnansweredNeverErrors(t *testing.T) {
	quiz, questions := twoQuestionQuiz(t)

	// one answer missing entirely, one explicitly unanswered
	result := ScoreQuiz(quiz, questions, []Answer{
		{QuestionID: 2, SelectedOption: -1},
	})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 2, result.TotalPoints)
	assert.Equal(t, float64(0), result.Percentage)
	assert.False(t, result.Passed)
}

func TestScoreQuizEmptyAnswerSet(t *testing.T) {
	quiz, questions := twoQuestionQuiz(t)

	result := ScoreQuiz(quiz, questions, []Answer{})

	assert.Equal(t, 0, result.Score)
	assert.GreaterOrEqual(t, result.Percentage, float64(0))
	assert.LessOrEqual(t, result.Percentage, float64(100))
}

func TestScoreQuizNeverExceedsTotalPoints(t *testing.T) {
	quiz, questions := twoQuestionQuiz(t)

	// duplicate answers for the same question must not double-award
	result := ScoreQuiz(quiz, questions, []Answer{
		{QuestionID: 1, SelectedOption: 0},
		{QuestionID: 1, SelectedOption: 0},
		{QuestionID: 2, SelectedOption: 1},
	})

	assert.LessOrEqual(t, result.Score, result.TotalPoints)
	assert.Equal(t, 2, result.Score)
}

func TestScoreQuizZeroQuestionsGuarded(t *testing.T) {
	quiz := learningModels.Quiz{PassingScore: 0}

	result := ScoreQuiz(quiz, nil, nil)

	// percentage must be a guarded 0, not NaN, even though 0 >= 0 would pass
	assert.Equal(t, float64(0), result.Percentage)
	assert.Equal(t, 0, result.TotalPoints)

	// and the definition itself is rejected upstream
	err := ValidateQuiz(quiz, nil)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "questions")
}

func TestScoreQuizDeterministic(t *testing.T) {
	quiz, questions := twoQuestionQuiz(t)
	answers := []Answer{
		{QuestionID: 1, SelectedOption: 0},
		{QuestionID: 2, SelectedOption: 2},
	}

	first := ScoreQuiz(quiz, questions, answers)
	second := ScoreQuiz(quiz, questions, answers)

	assert.Equal(t, first, second)
}

func TestScoreQuizWeightedPoints(t *testing.T) {
	options, err := json.Marshal([]string{"A", "B"})
	require.NoError(t, err)

	quiz := learningModels.Quiz{PassingScore: 60}
	questions := []learningModels.Question{
		{Text: "Q1", Type: learningModels.QuestionTypeMultipleChoice, Options: options, CorrectOption: 0, Points: 3},
		{Text: "Q2", Type: learningModels.QuestionTypeMultipleChoice, Options: options, CorrectOption: 0, Points: 1},
	}
	questions[0].ID = 10
	questions[1].ID = 11

	// only the heavy question correct: 3/4 = 75%
	result := ScoreQuiz(quiz, questions, []Answer{
		{QuestionID: 10, SelectedOption: 0},
		{QuestionID: 11, SelectedOption: 1},
	})

	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 4, result.TotalPoints)
	assert.Equal(t, float64(75), result.Percentage)
	assert.True(t, result.Passed)
}

func TestValidateQuizRejectsBadDefinitions(t *testing.T) {
	goodOptions, err := json.Marshal([]string{"A", "B"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		quiz      learningModels.Quiz
		questions []learningModels.Question
		field     string
	}{
		{
			name:  "passing score above 100",
			quiz:  learningModels.Quiz{PassingScore: 120},
			field: "passing_score",
			questions: []learningModels.Question{
				{Text: "Q", Type: learningModels.QuestionTypeMultipleChoice, Options: goodOptions, CorrectOption: 0, Points: 1},
			},
		},
		{
			name:  "empty question text",
			quiz:  learningModels.Quiz{PassingScore: 70},
			field: "questions[0].text",
			questions: []learningModels.Question{
				{Text: "  ", Type: learningModels.QuestionTypeMultipleChoice, Options: goodOptions, CorrectOption: 0, Points: 1},
			},
		},
		{
			name:  "correct option out of range",
			quiz:  learningModels.Quiz{PassingScore: 70},
			field: "questions[0].correct_option",
			questions: []learningModels.Question{
				{Text: "Q", Type: learningModels.QuestionTypeMultipleChoice, Options: goodOptions, CorrectOption: 5, Points: 1},
			},
		},
		{
			name:  "non-positive points",
			quiz:  learningModels.Quiz{PassingScore: 70},
			field: "questions[0].points",
			questions: []learningModels.Question{
				{Text: "Q", Type: learningModels.QuestionTypeMultipleChoice, Options: goodOptions, CorrectOption: 0, Points: 0},
			},
		},
		{
			name:  "unknown question type",
			quiz:  learningModels.Quiz{PassingScore: 70},
			field: "questions[0].type",
			questions: []learningModels.Question{
				{Text: "Q", Type: "essay", Options: goodOptions, CorrectOption: 0, Points: 1},
			},
		},
		{
			name:  "true-false answer out of range",
			quiz:  learningModels.Quiz{PassingScore: 70},
			field: "questions[0].correct_option",
			questions: []learningModels.Question{
				{Text: "Q", Type: learningModels.QuestionTypeTrueFalse, CorrectOption: 2, Points: 1},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateQuiz(tc.quiz, tc.questions)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tc.field)
		})
	}
}

func TestValidateQuizRejectsEmptyOptionText(t *testing.T) {
	options, err := json.Marshal([]string{"A", "  "})
	require.NoError(t, err)

	quiz := learningModels.Quiz{PassingScore: 70}
	questions := []learningModels.Question{
		{Text: "Q", Type: learningModels.QuestionTypeMultipleChoice, Options: options, CorrectOption: 0, Points: 1},
	}

	verr := ValidateQuiz(quiz, questions)
	var vErr *ValidationError
	require.ErrorAs(t, verr, &vErr)
	assert.Contains(t, vErr.Fields, "questions[0].options[1]")
}

func TestValidateQuizAcceptsWellFormed(t *testing.T) {
	options, err := json.Marshal([]string{"A", "B", "C"})
	require.NoError(t, err)

	quiz := learningModels.Quiz{PassingScore: 70}
	questions := []learningModels.Question{
		{Text: "Q1", Type: learningModels.QuestionTypeMultipleChoice, Options: options, CorrectOption: 2, Points: 2},
		{Text: "Q2", Type: learningModels.QuestionTypeTrueFalse, CorrectOption: 1, Points: 1},
	}

	assert.NoError(t, ValidateQuiz(quiz, questions))
}
