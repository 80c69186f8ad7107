package main

import (
	"encoding/csv"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"worksuite/config"
	"worksuite/database"
	learningModels "worksuite/models/learning"

	"github.com/google/uuid"
)

// Imports quiz questions from QuestionBank.csv into an existing quiz.
// Expected columns: quiz_id, text, type, options (pipe-separated),
// correct_option, points, explanation
func main() {
	config.LoadConfig()
	database.ConnectDb()

	file, err := os.Open("QuestionBank.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	batchID := uuid.New().String()
	log.Printf("Import batch: %s", batchID)

	inserted := 0
	skipped := 0

	for rowNum, row := range records[1:] {
		quizID, err := strconv.Atoi(strings.TrimSpace(row[headerIndex["quiz_id"]]))
		if err != nil || quizID < 1 {
			log.Printf("Row %d: invalid quiz_id, skipping", rowNum+2)
			skipped++
			continue
		}

		var quiz learningModels.Quiz
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
			log.Printf("Row %d: quiz %d not found, skipping", rowNum+2, quizID)
			skipped++
			continue
		}

		text := strings.TrimSpace(row[headerIndex["text"]])
		if text == "" {
			log.Printf("Row %d: empty question text, skipping", rowNum+2)
			skipped++
			continue
		}

		qType := strings.TrimSpace(row[headerIndex["type"]])
		if qType == "" {
			qType = learningModels.QuestionTypeMultipleChoice
		}

		var options []string
		if qType == learningModels.QuestionTypeTrueFalse {
			options = []string{"True", "False"}
		} else {
			options = strings.Split(row[headerIndex["options"]], "|")
			for i := range options {
				options[i] = strings.TrimSpace(options[i])
			}
			if len(options) < 2 {
				log.Printf("Row %d: needs at least two options, skipping", rowNum+2)
				skipped++
				continue
			}
		}

		correctOption, err := strconv.Atoi(strings.TrimSpace(row[headerIndex["correct_option"]]))
		if err != nil || correctOption < 0 || correctOption >= len(options) {
			log.Printf("Row %d: correct_option out of range, skipping", rowNum+2)
			skipped++
			continue
		}

		points := 1
		if p, err := strconv.Atoi(strings.TrimSpace(row[headerIndex["points"]])); err == nil && p > 0 {
			points = p
		}

		optionsJSON, err := json.Marshal(options)
		if err != nil {
			log.Printf("Row %d: failed to encode options, skipping", rowNum+2)
			skipped++
			continue
		}

		var maxOrder int
		database.Database.Db.Model(&learningModels.Question{}).
			Where("quiz_id = ? AND is_deleted = ?", quizID, false).
			Select("COALESCE(MAX(order_index), -1)").Scan(&maxOrder)

		question := learningModels.Question{
			QuizID:        uint(quizID),
			Text:          text,
			Type:          qType,
			Options:       optionsJSON,
			CorrectOption: correctOption,
			Points:        points,
			Explanation:   strings.TrimSpace(row[headerIndex["explanation"]]),
			OrderIndex:    maxOrder + 1,
		}

		if err := database.Database.Db.Create(&question).Error; err != nil {
			log.Printf("Row %d: insert failed: %v", rowNum+2, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("Import complete. Inserted: %d, Skipped: %d", inserted, skipped)
}
