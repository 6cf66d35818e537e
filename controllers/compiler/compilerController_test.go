package compilerController

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeRequiresInputDetectsReads(t *testing.T) {
	cases := map[string]string{
		"python":     "name = input(\"Your name: \")",
		"cpp":        "int x; std::cin >> x;",
		"c":          "scanf(\"%d\", &x);",
		"java":       "Scanner sc = new Scanner(System.in);",
		"go":         "fmt.Scanln(&name)",
		"rust":       "io::stdin().read_line(&mut line).unwrap();",
		"ruby":       "name = gets.chomp",
		"javascript": "const line = readline();",
	}
	for lang, src := range cases {
		assert.True(t, CodeRequiresInput(src), "expected %s source to require input", lang)
	}
}

func TestCodeRequiresInputIgnoresPlainPrograms(t *testing.T) {
	assert.False(t, CodeRequiresInput("print(\"Hello, World!\")"))
	assert.False(t, CodeRequiresInput("std::cout << \"sum\" << std::endl;"))
	// Mentioning the word input in a string is not a read.
	assert.False(t, CodeRequiresInput("print(\"no user interaction here\")"))
}

func TestIsSupportedLanguage(t *testing.T) {
	for _, l := range Languages {
		assert.True(t, IsSupportedLanguage(l.ID))
	}
	assert.False(t, IsSupportedLanguage(0))
	assert.False(t, IsSupportedLanguage(999))
}

func TestLanguageMenuHasSnippets(t *testing.T) {
	for _, l := range Languages {
		assert.NotEmpty(t, l.Name)
		assert.NotEmpty(t, l.Snippet)
	}
}
