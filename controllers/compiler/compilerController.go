package compilerController

import (
	"codelearn/database"
	"codelearn/middleware"
	"codelearn/models"
	"codelearn/utils"
	"log"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

// Language describes one selectable compiler target with its starter snippet.
type Language struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Snippet string `json:"snippet"`
}

// Languages is the supported compiler menu, keyed by Judge0 language id.
var Languages = []Language{
	{ID: 71, Name: "Python", Snippet: "print(\"Hello, World!\")"},
	{ID: 54, Name: "C++", Snippet: "#include <iostream>\n\nint main() {\n    std::cout << \"Hello, World!\" << std::endl;\n    return 0;\n}"},
	{ID: 62, Name: "Java", Snippet: "public class Main {\n    public static void main(String[] args) {\n        System.out.println(\"Hello, World!\");\n    }\n}"},
	{ID: 50, Name: "C", Snippet: "#include <stdio.h>\n\nint main() {\n    printf(\"Hello, World!\\n\");\n    return 0;\n}"},
	{ID: 63, Name: "JavaScript", Snippet: "console.log(\"Hello, World!\");"},
	{ID: 73, Name: "Rust", Snippet: "fn main() {\n    println!(\"Hello, World!\");\n}"},
	{ID: 72, Name: "Ruby", Snippet: "puts \"Hello, World!\""},
	{ID: 60, Name: "Go", Snippet: "package main\n\nimport \"fmt\"\n\nfunc main() {\n    fmt.Println(\"Hello, World!\")\n}"},
	{ID: 68, Name: "PHP", Snippet: "<?php\necho \"Hello, World!\\n\";"},
}

// IsSupportedLanguage reports whether the given Judge0 id is on the menu.
func IsSupportedLanguage(id int) bool {
	for _, l := range Languages {
		if l.ID == id {
			return true
		}
	}
	return false
}

var inputPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\binput\s*\(`),         // Python
	regexp.MustCompile(`\bcin\s*>>`),           // C++
	regexp.MustCompile(`\bscanf\s*\(`),         // C
	regexp.MustCompile(`new\s+Scanner\s*\(`),   // Java
	regexp.MustCompile(`\bgets(\.chomp)?\b`),   // Ruby
	regexp.MustCompile(`\breadline\s*\(`),      // JavaScript / PHP-ish
	regexp.MustCompile(`\bfmt\.Scan`),          // Go
	regexp.MustCompile(`io::stdin\s*\(\)`),     // Rust
	regexp.MustCompile(`\bfgets\s*\(`),         // PHP / C
}

// CodeRequiresInput heuristically detects whether the source reads from
// stdin, so the client can prompt for input before submitting.
func CodeRequiresInput(source string) bool {
	for _, p := range inputPatterns {
		if p.MatchString(source) {
			return true
		}
	}
	return false
}

// GetLanguages lists the compiler menu with starter snippets.
func GetLanguages(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Languages fetched successfully!", fiber.Map{
		"languages": Languages,
	})
}

// RunCode executes submitted source against the Judge0 API and returns the
// verdict: stdout on success, otherwise the compile or runtime diagnostics.
func RunCode(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedRunCode").(*struct {
		SourceCode string `json:"sourceCode"`
		LanguageID int    `json:"languageId"`
		Stdin      string `json:"stdin"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Stdin == "" && CodeRequiresInput(reqData.SourceCode) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Program requires input.", fiber.Map{
			"requiresInput": true,
		})
	}

	result, err := utils.RunJudge0(utils.Judge0Submission{
		SourceCode: reqData.SourceCode,
		LanguageID: reqData.LanguageID,
		Stdin:      reqData.Stdin,
	})
	if err != nil {
		log.Printf("Error executing code for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Code execution is unavailable right now. Please try again.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Code executed!", fiber.Map{
		"stdout":        result.Stdout,
		"stderr":        result.Stderr,
		"compileOutput": result.CompileOutput,
		"message":       result.Message,
		"time":          result.Time,
		"memory":        result.Memory,
		"status":        result.Status,
		"requiresInput": false,
	})
}
