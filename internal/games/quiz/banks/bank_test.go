package banks

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBankIsValid(t *testing.T) {
	b := DefaultBank()
	if err := b.Validate(); err != nil {
		t.Fatalf("embedded default bank invalid: %v", err)
	}
	if len(b.Questions) == 0 {
		t.Fatal("default bank has no questions")
	}
	if b.DurationMinutes <= 0 {
		t.Errorf("default bank duration = %d, want > 0", b.DurationMinutes)
	}
}

func TestParseYAMLValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "valid bank",
			yaml: `
id: test-1
title: Test
duration_minutes: 1
questions:
  - prompt: "1+1?"
    choices: ["1", "2"]
    answer: 1
`,
			wantErr: false,
		},
		{
			name:    "missing id",
			yaml:    "title: Test\nquestions:\n  - prompt: q\n    choices: [a, b]\n    answer: 0\n",
			wantErr: true,
		},
		{
			name:    "no questions",
			yaml:    "id: test\ntitle: Test\nquestions: []\n",
			wantErr: true,
		},
		{
			name:    "answer out of range",
			yaml:    "id: test\nquestions:\n  - prompt: q\n    choices: [a, b]\n    answer: 5\n",
			wantErr: true,
		},
		{
			name:    "single choice",
			yaml:    "id: test\nquestions:\n  - prompt: q\n    choices: [a]\n    answer: 0\n",
			wantErr: true,
		},
		{
			name:    "not yaml",
			yaml:    "{{{",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseYAML() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGrade(t *testing.T) {
	b := Bank{
		ID: "g",
		Questions: []Question{
			{Prompt: "a", Choices: []string{"x", "y"}, Answer: 0},
			{Prompt: "b", Choices: []string{"x", "y"}, Answer: 1},
			{Prompt: "c", Choices: []string{"x", "y"}, Answer: 1},
		},
	}

	tests := []struct {
		name    string
		answers []int
		want    int
	}{
		{"all correct", []int{0, 1, 1}, 3},
		{"all wrong", []int{1, 0, 0}, 0},
		{"partial", []int{0, 0, 1}, 2},
		{"unanswered tail", []int{0}, 1},
		{"negative means unanswered", []int{-1, 1, -1}, 1},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Grade(tt.answers); got != tt.want {
				t.Errorf("Grade(%v) = %d, want %d", tt.answers, got, tt.want)
			}
		})
	}
}

func TestLoaderSkipsInvalidAndSortsByID(t *testing.T) {
	dir := t.TempDir()

	valid := `
id: zebra
title: Z
questions:
  - prompt: q
    choices: [a, b]
    answer: 0
`
	valid2 := `
id: alpha
title: A
questions:
  - prompt: q
    choices: [a, b]
    answer: 1
`
	writeFile(t, filepath.Join(dir, "z.yaml"), valid)
	writeFile(t, filepath.Join(dir, "a.yml"), valid2)
	writeFile(t, filepath.Join(dir, "broken.yaml"), "answer: {{{")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignore me")

	banks, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(banks) != 2 {
		t.Fatalf("loaded %d banks, want 2", len(banks))
	}
	if banks[0].ID != "alpha" || banks[1].ID != "zebra" {
		t.Errorf("banks not sorted by ID: %s, %s", banks[0].ID, banks[1].ID)
	}
}

func TestLoadByID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.yaml"), `
id: findme
questions:
  - prompt: q
    choices: [a, b]
    answer: 0
`)

	l := NewLoader(dir)
	b, err := l.LoadByID("findme")
	if err != nil {
		t.Fatalf("LoadByID() error = %v", err)
	}
	if b.ID != "findme" {
		t.Errorf("ID = %q, want findme", b.ID)
	}

	if _, err := l.LoadByID("missing"); err == nil {
		t.Error("LoadByID(missing) succeeded, want error")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
