package database

import (
	course "codelearn/models/course"
	"encoding/json"
	"log"

	"codelearn/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedAchievements inserts the badge definitions if missing
func SeedAchievements(db *gorm.DB) {
	defs := []models.Achievement{
		{Slug: models.AchievementFirstEnrollment, Title: "First Course Enrolled", Description: "Welcome to CodeLearn!"},
		{Slug: models.AchievementQuickLearner, Title: "Quick Learner", Description: "Complete 5 lessons in a day"},
		{Slug: models.AchievementConsistentStudent, Title: "Consistent Student", Description: "Study for 7 days straight"},
		{Slug: models.AchievementCourseCompleter, Title: "Course Completer", Description: "Complete your first course"},
	}

	for _, def := range defs {
		var existing models.Achievement
		if err := db.Where("slug = ?", def.Slug).First(&existing).Error; err != nil {
			if err := db.Create(&def).Error; err != nil {
				log.Printf("[SEED] Failed to create achievement %s: %v", def.Slug, err)
			}
		}
	}
}

// SeedCatalog loads the sample CodeLearn catalog when the course table is
// empty. Published courses and lessons are immutable from the learner's
// perspective; this is the authoring step for the demo data.
func SeedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&course.Course{}).Where("is_deleted = ?", false).Count(&count)
	if count > 0 {
		return
	}

	log.Println("[SEED] Empty catalog, loading sample courses...")

	instructors := []course.Instructor{
		{Name: "Sarah Johnson", Title: "Dr.", Rating: 4.8, Bio: "Computer science professor with 15 years of systems programming experience."},
		{Name: "Michael Chen", Title: "Prof.", Rating: 4.9, Bio: "Author and long-time Python educator focused on practical software design."},
		{Name: "Alex Rodriguez", Title: "", Rating: 4.7, Bio: "Full-stack engineer who has shipped production web apps for a decade."},
		{Name: "Emma Thompson", Title: "", Rating: 4.6, Bio: "Mobile developer specializing in cross-platform React Native apps."},
	}
	for i := range instructors {
		if err := db.Create(&instructors[i]).Error; err != nil {
			log.Printf("[SEED] Failed to create instructor: %v", err)
			return
		}
	}

	courses := []course.Course{
		{
			Title:         "C/C++ Programming",
			Description:   "Master the fundamentals of C and C++ programming languages with hands-on projects and real-world applications.",
			Category:      "Systems Programming",
			Level:         course.LevelBeginner,
			Duration:      "8 weeks",
			PriceCents:    9900,
			InstructorID:  instructors[0].ID,
			Rating:        4.8,
			StudentsCount: 1250,
			IsPublished:   true,
		},
		{
			Title:         "Python Development",
			Description:   "Learn Python from basics to advanced concepts including data structures, algorithms, and web development.",
			Category:      "General Programming",
			Level:         course.LevelBeginner,
			Duration:      "10 weeks",
			PriceCents:    12900,
			InstructorID:  instructors[1].ID,
			Rating:        4.9,
			StudentsCount: 2100,
			IsPublished:   true,
		},
		{
			Title:         "Web Development",
			Description:   "Full-stack web development covering HTML, CSS, JavaScript, React, Node.js, and database integration.",
			Category:      "Web Development",
			Level:         course.LevelIntermediate,
			Duration:      "12 weeks",
			PriceCents:    19900,
			InstructorID:  instructors[2].ID,
			Rating:        4.7,
			StudentsCount: 1800,
			IsPublished:   true,
		},
		{
			Title:         "Mobile App Development",
			Description:   "Build cross-platform mobile applications for iOS and Android using React Native and modern development practices.",
			Category:      "Mobile Development",
			Level:         course.LevelIntermediate,
			Duration:      "14 weeks",
			PriceCents:    24900,
			InstructorID:  instructors[3].ID,
			Rating:        4.6,
			StudentsCount: 950,
			IsPublished:   true,
		},
	}
	for i := range courses {
		if err := db.Create(&courses[i]).Error; err != nil {
			log.Printf("[SEED] Failed to create course: %v", err)
			return
		}
	}

	seedLessons(db, courses[0].ID, cLessons())
	seedLessons(db, courses[1].ID, pythonLessons())
	seedLessons(db, courses[2].ID, webLessons())
	seedLessons(db, courses[3].ID, mobileLessons())

	log.Printf("[SEED] Catalog loaded: %d courses.", len(courses))
}

func seedLessons(db *gorm.DB, courseID uint, lessons []course.Lesson) {
	for i := range lessons {
		lessons[i].CourseID = courseID
		lessons[i].OrderIndex = i + 1
		lessons[i].IsPublished = true
		if !lessons[i].HasQuiz() {
			lessons[i].QuizAnswer = -1
		}
		if err := db.Create(&lessons[i]).Error; err != nil {
			log.Printf("[SEED] Failed to create lesson %q: %v", lessons[i].Title, err)
		}
	}
}

func quizOptions(options ...string) datatypes.JSON {
	raw, _ := json.Marshal(options)
	return datatypes.JSON(raw)
}

func cLessons() []course.Lesson {
	return []course.Lesson{
		{
			Title:    "Introduction to C Programming",
			Duration: "45 min",
			Content: "# Introduction to C Programming\n\n" +
				"C is a procedural programming language developed by Dennis Ritchie at Bell Labs. " +
				"It is known for efficiency, portability and its role as the foundation of many other languages.\n\n" +
				"## Your First C Program\n\n" +
				"```c\n#include <stdio.h>\n\nint main() {\n    printf(\"Hello, World!\\n\");\n    return 0;\n}\n```\n",
			ExerciseInstruction: "Write a C program that prints 'Welcome to CodeLearn!' to the screen.",
			ExerciseStarterCode: "#include <stdio.h>\n\nint main() {\n    // Write your code here\n\n    return 0;\n}",
			ExerciseSolution:    "#include <stdio.h>\n\nint main() {\n    printf(\"Welcome to CodeLearn!\\n\");\n    return 0;\n}",
			QuizQuestion:        "What does the #include <stdio.h> directive do in a C program?",
			QuizOptions: quizOptions(
				"It defines the main function",
				"It includes the standard input/output library",
				"It compiles the program",
				"It creates a variable",
			),
			QuizAnswer: 1,
		},
		{
			Title:    "Variables and Data Types",
			Duration: "60 min",
			Content: "# Variables and Data Types in C\n\n" +
				"Variables are containers that store data values. In C you must declare a variable before " +
				"using it, specifying its data type: int, short, long, float, double or char.\n",
			ExerciseInstruction: "Declare an int, a double and a char, assign values and print all three.",
			ExerciseStarterCode: "#include <stdio.h>\n\nint main() {\n    // Declare your variables here\n\n    return 0;\n}",
			ExerciseSolution:    "#include <stdio.h>\n\nint main() {\n    int age = 25;\n    double pi = 3.14159;\n    char grade = 'A';\n    printf(\"%d %.5f %c\\n\", age, pi, grade);\n    return 0;\n}",
			QuizQuestion:        "Which data type stores a single character in C?",
			QuizOptions:         quizOptions("string", "char", "byte", "letter"),
			QuizAnswer:          1,
		},
		{Title: "Control Structures", Duration: "75 min",
			QuizQuestion: "Which keyword exits a loop immediately?",
			QuizOptions:  quizOptions("stop", "exit", "break", "return"),
			QuizAnswer:   2},
		{Title: "Functions and Scope", Duration: "90 min"},
		{Title: "Arrays and Pointers", Duration: "120 min",
			QuizQuestion: "What does the & operator yield when applied to a variable?",
			QuizOptions:  quizOptions("Its value", "Its address", "Its size", "Its type"),
			QuizAnswer:   1},
		{Title: "Introduction to C++", Duration: "60 min"},
		{Title: "Object-Oriented Programming", Duration: "150 min"},
		{Title: "Final Project", Duration: "180 min"},
	}
}

func pythonLessons() []course.Lesson {
	return []course.Lesson{
		{Title: "Python Basics and Syntax", Duration: "60 min",
			QuizQuestion: "Which function prints output to the console in Python?",
			QuizOptions:  quizOptions("echo()", "console.log()", "print()", "write()"),
			QuizAnswer:   2},
		{Title: "Data Types and Variables", Duration: "45 min"},
		{Title: "Control Flow and Loops", Duration: "75 min",
			QuizQuestion: "Which keyword starts a conditional block in Python?",
			QuizOptions:  quizOptions("when", "case", "if", "cond"),
			QuizAnswer:   2},
		{Title: "Functions and Modules", Duration: "90 min"},
		{Title: "Data Structures", Duration: "120 min"},
		{Title: "Object-Oriented Programming", Duration: "150 min"},
		{Title: "File Handling and APIs", Duration: "90 min"},
		{Title: "Web Development with Flask", Duration: "180 min"},
		{Title: "Database Integration", Duration: "120 min"},
		{Title: "Final Project", Duration: "240 min"},
	}
}

func webLessons() []course.Lesson {
	return []course.Lesson{
		{Title: "HTML Fundamentals", Duration: "60 min"},
		{Title: "CSS Styling and Layout", Duration: "90 min"},
		{Title: "JavaScript Basics", Duration: "120 min",
			QuizQuestion: "Which keyword declares a block-scoped variable in JavaScript?",
			QuizOptions:  quizOptions("var", "let", "dim", "def"),
			QuizAnswer:   1},
		{Title: "DOM Manipulation", Duration: "90 min"},
		{Title: "React Introduction", Duration: "150 min"},
		{Title: "React Hooks and State", Duration: "120 min"},
		{Title: "Node.js and Express", Duration: "180 min"},
		{Title: "Database Design", Duration: "90 min"},
		{Title: "API Development", Duration: "150 min"},
		{Title: "Authentication and Security", Duration: "120 min"},
		{Title: "Deployment", Duration: "90 min"},
		{Title: "Capstone Project", Duration: "300 min"},
	}
}

func mobileLessons() []course.Lesson {
	return []course.Lesson{
		{Title: "React Native Setup", Duration: "60 min"},
		{Title: "Components and Styling", Duration: "90 min"},
		{Title: "Navigation", Duration: "120 min"},
		{Title: "State Management", Duration: "120 min"},
		{Title: "Native Device APIs", Duration: "150 min"},
		{Title: "Offline Storage", Duration: "90 min"},
		{Title: "Push Notifications", Duration: "90 min"},
		{Title: "App Store Deployment", Duration: "120 min"},
	}
}
