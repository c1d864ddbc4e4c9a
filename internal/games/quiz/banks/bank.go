// Package banks provides question bank loading for the Quiz Player.
// This package depends only on the YAML codec; the game depends on it,
// not the other way around.
package banks

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Question is a single multiple-choice question.
type Question struct {
	Prompt  string   `yaml:"prompt"`
	Choices []string `yaml:"choices"`
	Answer  int      `yaml:"answer"` // Index into Choices
}

// Bank is a complete quiz: an ordered question list with timing metadata.
type Bank struct {
	ID              string     `yaml:"id"`
	Title           string     `yaml:"title"`
	Subject         string     `yaml:"subject,omitempty"`
	DurationMinutes int        `yaml:"duration_minutes"`
	Questions       []Question `yaml:"questions"`
	FilePath        string     `yaml:"-"`
}

// ParseYAML parses and validates a YAML question bank.
func ParseYAML(data []byte) (Bank, error) {
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Bank{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Bank{}, err
	}
	return b, nil
}

// Validate checks the bank for structural problems.
func (b Bank) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("bank has no id")
	}
	if len(b.Questions) == 0 {
		return fmt.Errorf("bank %q has no questions", b.ID)
	}
	for i, q := range b.Questions {
		if q.Prompt == "" {
			return fmt.Errorf("bank %q: question %d has an empty prompt", b.ID, i)
		}
		if len(q.Choices) < 2 {
			return fmt.Errorf("bank %q: question %d needs at least two choices", b.ID, i)
		}
		if q.Answer < 0 || q.Answer >= len(q.Choices) {
			return fmt.Errorf("bank %q: question %d answer index %d out of range", b.ID, i, q.Answer)
		}
	}
	return nil
}

// Grade counts correct answers. answers[i] is the chosen index for
// question i, or a negative value when unanswered.
func (b Bank) Grade(answers []int) int {
	correct := 0
	for i, q := range b.Questions {
		if i < len(answers) && answers[i] == q.Answer {
			correct++
		}
	}
	return correct
}
