package database

import (
	"byteforge/models"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed inserts the Java curriculum starter data. Safe to run repeatedly:
// every record is keyed on its slug.
func Seed(db *gorm.DB) error {
	log.Println("Seeding starter content...")

	categories := []models.Category{
		{
			Slug:        "java-fundamentals",
			Title:       "Java Fundamentals",
			Description: "Core language concepts every Java developer needs first.",
			Icon:        "book-open",
			Color:       "#f89820",
			Order:       1,
			Topics:      datatypes.JSONSlice[models.Slug]{"java-basics", "oop-concepts"},
		},
		{
			Slug:        "advanced-java",
			Title:       "Advanced Java",
			Description: "Collections, generics, streams and concurrency.",
			Icon:        "cpu",
			Color:       "#5382a1",
			Order:       2,
			Topics:      datatypes.JSONSlice[models.Slug]{"collections-framework"},
		},
	}
	for i := range categories {
		if err := db.Where(models.Category{Slug: categories[i].Slug}).FirstOrCreate(&categories[i]).Error; err != nil {
			return err
		}
	}

	topics := []models.Topic{
		{
			Slug:        "java-basics",
			Title:       "Java Basics",
			Description: "Variables, data types, operators and control flow.",
			Level:       models.LevelBeginner,
			Duration:    "2 weeks",
			Category:    "java-fundamentals",
			Tags:        datatypes.JSONSlice[string]{"syntax", "variables", "control-flow"},
		},
		{
			Slug:          "oop-concepts",
			Title:         "Object-Oriented Programming",
			Description:   "Classes, objects, inheritance, polymorphism and encapsulation.",
			Level:         models.LevelBeginner,
			Duration:      "3 weeks",
			Category:      "java-fundamentals",
			Prerequisites: datatypes.JSONSlice[models.Slug]{"java-basics"},
			Tags:          datatypes.JSONSlice[string]{"oop", "classes", "inheritance"},
		},
		{
			Slug:          "collections-framework",
			Title:         "Collections Framework",
			Description:   "Lists, sets, maps and the iteration patterns around them.",
			Level:         models.LevelIntermediate,
			Duration:      "2 weeks",
			Category:      "advanced-java",
			Prerequisites: datatypes.JSONSlice[models.Slug]{"oop-concepts"},
			Tags:          datatypes.JSONSlice[string]{"collections", "generics"},
		},
	}
	for i := range topics {
		if err := db.Where(models.Topic{Slug: topics[i].Slug}).FirstOrCreate(&topics[i]).Error; err != nil {
			return err
		}
	}

	subtopics := []models.SubTopic{
		{
			SubtopicSlug:  "introduction",
			TopicSlug:     "java-basics",
			Title:         "Introduction to Java",
			Description:   "What Java is, the JVM, and your first program.",
			EstimatedTime: "30 minutes",
			Content: datatypes.JSONSlice[models.ContentBlock]{
				{Type: "text", Content: "Java is a class-based, object-oriented language designed to have as few implementation dependencies as possible."},
				{Type: "code", Language: "java", Content: "public class HelloWorld {\n    public static void main(String[] args) {\n        System.out.println(\"Hello, World!\");\n    }\n}"},
			},
			CodeExamples: datatypes.JSONSlice[models.CodeExample]{
				{
					Title:       "Hello World",
					Code:        "public class HelloWorld {\n    public static void main(String[] args) {\n        System.out.println(\"Hello, World!\");\n    }\n}",
					Language:    "java",
					Description: "The smallest runnable Java program.",
				},
			},
			Resources: datatypes.JSONSlice[models.Resource]{
				{
					Title:       "The Java Tutorials",
					URL:         "https://docs.oracle.com/javase/tutorial/",
					Type:        "documentation",
					Description: "Oracle's official getting-started guides.",
					Level:       models.LevelBeginner,
				},
			},
			QuizQuestions: datatypes.JSONSlice[models.QuizQuestion]{
				{
					Question:      "Which method is the entry point of a Java program?",
					Options:       []string{"start()", "main(String[] args)", "run()", "init()"},
					CorrectAnswer: 1,
					Explanation:   "The JVM looks for public static void main(String[] args).",
					Difficulty:    "easy",
					TimeLimit:     30,
				},
			},
		},
		{
			SubtopicSlug:  "variables-and-types",
			TopicSlug:     "java-basics",
			Title:         "Variables and Data Types",
			Description:   "Primitive types, reference types and type conversion.",
			EstimatedTime: "45 minutes",
			Content: datatypes.JSONSlice[models.ContentBlock]{
				{Type: "text", Content: "Java has eight primitive types; everything else is a reference type."},
				{Type: "code", Language: "java", Content: "int count = 42;\ndouble price = 9.99;\nString name = \"ByteForge\";"},
			},
		},
	}
	for i := range subtopics {
		if err := db.Where(models.SubTopic{SubtopicSlug: subtopics[i].SubtopicSlug}).FirstOrCreate(&subtopics[i]).Error; err != nil {
			return err
		}
	}

	log.Println("Seeding completed.")
	return nil
}
