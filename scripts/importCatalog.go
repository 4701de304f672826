package main

import (
	"encoding/csv"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"codelearn/config"
	"codelearn/database"
	courseModels "codelearn/models/course"

	"gorm.io/datatypes"
)

// Imports a course catalog from catalog.csv. One row per lesson; course rows
// repeat the course columns and are deduplicated by title. Quiz options are
// pipe-separated in a single column.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	file, err := os.Open("catalog.csv")
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

	courseByTitle := make(map[string]uint)
	coursesCreated := 0
	lessonsCreated := 0
	skipped := 0

	for i, row := range records[1:] {
		courseTitle := getField(row, headerIndex, "course_title")
		lessonTitle := getField(row, headerIndex, "lesson_title")
		if courseTitle == "" || lessonTitle == "" {
			log.Printf("Row %d: missing course or lesson title, skipping", i+1)
			skipped++
			continue
		}

		courseID, ok := courseByTitle[courseTitle]
		if !ok {
			course := courseModels.Course{
				Title:       courseTitle,
				Description: getField(row, headerIndex, "course_description"),
				Category:    getField(row, headerIndex, "category"),
				Level:       strings.ToUpper(getField(row, headerIndex, "level")),
				Duration:    getField(row, headerIndex, "course_duration"),
				PriceCents:  int64(parseInt(getField(row, headerIndex, "price_cents"))),
				IsPublished: true,
			}

			var existing courseModels.Course
			err := database.Database.Db.
				Where("title = ? AND is_deleted = ?", courseTitle, false).
				First(&existing).Error
			if err == nil {
				courseID = existing.ID
			} else {
				if err := database.Database.Db.Create(&course).Error; err != nil {
					log.Printf("Row %d: failed to create course %q: %v", i+1, courseTitle, err)
					skipped++
					continue
				}
				courseID = course.ID
				coursesCreated++
			}
			courseByTitle[courseTitle] = courseID
		}

		lesson := courseModels.Lesson{
			CourseID:    courseID,
			Title:       lessonTitle,
			Duration:    getField(row, headerIndex, "lesson_duration"),
			Content:     getField(row, headerIndex, "content"),
			VideoURL:    getField(row, headerIndex, "video_url"),
			OrderIndex:  parseInt(getField(row, headerIndex, "order_index")),
			QuizAnswer:  -1,
			IsPublished: true,
		}

		question := getField(row, headerIndex, "quiz_question")
		if question != "" {
			options := strings.Split(getField(row, headerIndex, "quiz_options"), "|")
			answer := parseInt(getField(row, headerIndex, "quiz_answer"))
			if len(options) < 2 || answer < 0 || answer >= len(options) {
				log.Printf("Row %d: invalid quiz on lesson %q, importing without quiz", i+1, lessonTitle)
			} else {
				raw, _ := json.Marshal(options)
				lesson.QuizQuestion = question
				lesson.QuizOptions = datatypes.JSON(raw)
				lesson.QuizAnswer = answer
			}
		}

		if err := database.Database.Db.Create(&lesson).Error; err != nil {
			log.Printf("Row %d: failed to create lesson %q: %v", i+1, lessonTitle, err)
			skipped++
			continue
		}
		lessonsCreated++
	}

	log.Printf("Import complete: %d courses, %d lessons, %d skipped", coursesCreated, lessonsCreated, skipped)
}

func getField(row []string, headerIndex map[string]int, name string) string {
	idx, ok := headerIndex[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseInt(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
