package main

import (
	"codelearn/config"
	"codelearn/database"
	"codelearn/models"
	"codelearn/progress"
	"encoding/json"
	"log"
	"os"

	"gorm.io/datatypes"
)

type seedCourse struct {
	Title       string           `json:"courseTitle"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	Category    string           `json:"category"`
	Image       string           `json:"image"`
	Chapters    []models.Chapter `json:"chapters"`
}

type seedQuiz struct {
	Title     string            `json:"title"`
	Questions []models.Question `json:"quiz"`
}

type seedFile struct {
	Courses []seedCourse `json:"courses"`
	Quizzes []seedQuiz   `json:"quiz"`
}

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	path := "seed.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to open seed file: %v", err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	log.Printf("Courses to import: %d, quizzes to import: %d", len(seed.Courses), len(seed.Quizzes))

	inserted := 0
	updated := 0
	skipped := 0

	for _, sc := range seed.Courses {
		if sc.Title == "" || len(sc.Chapters) == 0 {
			skipped++
			continue
		}

		// Authored content never ships with completion flags set.
		for i := range sc.Chapters {
			sc.Chapters[i].Completed = false
		}
		encoded, err := progress.EncodeChapters(sc.Chapters)
		if err != nil {
			log.Printf("Error encoding chapters for course %q: %v", sc.Title, err)
			skipped++
			continue
		}

		var existing models.Course
		result := database.Database.Db.Where("title = ?", sc.Title).First(&existing)

		if result.Error != nil {
			course := models.Course{
				Title:        sc.Title,
				Description:  sc.Description,
				Type:         sc.Type,
				Category:     sc.Category,
				Image:        sc.Image,
				ChapterCount: len(sc.Chapters),
				Chapters:     encoded,
				Status:       "ACTIVE",
			}
			if err := database.Database.Db.Create(&course).Error; err != nil {
				log.Printf("Error inserting course %q: %v", sc.Title, err)
				continue
			}
			inserted++
		} else {
			existing.Description = sc.Description
			existing.Type = sc.Type
			existing.Category = sc.Category
			existing.Image = sc.Image
			existing.ChapterCount = len(sc.Chapters)
			existing.Chapters = encoded
			existing.IsDeleted = false
			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating course %q: %v", sc.Title, err)
				continue
			}
			updated++
		}
	}

	for _, sq := range seed.Quizzes {
		if sq.Title == "" || len(sq.Questions) == 0 {
			skipped++
			continue
		}

		encoded, err := json.Marshal(sq.Questions)
		if err != nil {
			log.Printf("Error encoding questions for quiz %q: %v", sq.Title, err)
			skipped++
			continue
		}

		var existing models.Quiz
		result := database.Database.Db.Where("title = ?", sq.Title).First(&existing)

		if result.Error != nil {
			quiz := models.Quiz{
				Title:     sq.Title,
				Questions: datatypes.JSON(encoded),
			}
			if err := database.Database.Db.Create(&quiz).Error; err != nil {
				log.Printf("Error inserting quiz %q: %v", sq.Title, err)
				continue
			}
			inserted++
		} else {
			existing.Questions = datatypes.JSON(encoded)
			existing.IsDeleted = false
			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating quiz %q: %v", sq.Title, err)
				continue
			}
			updated++
		}
	}

	log.Printf("Import complete: %d inserted, %d updated, %d skipped", inserted, updated, skipped)
}
