package quiz

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//Summary is the outcome of a session.
type Summary struct {
	SessionID  string           `yaml:"session_id"`
	Mode       string           `yaml:"mode"`
	Units      string           `yaml:"units"`
	Tolerance  float64          `yaml:"tolerance"`
	Asked      int              `yaml:"asked"`
	Score      int              `yaml:"score"`
	StartedAt  time.Time        `yaml:"started_at"`
	FinishedAt time.Time        `yaml:"finished_at"`
	Questions  []QuestionRecord `yaml:"questions"`
}

//QuestionRecord keeps one asked question and the answers to it.
type QuestionRecord struct {
	Number  int            `yaml:"number"`
	Kind    string         `yaml:"kind"`
	Givens  []string       `yaml:"givens"`
	Answers []AnswerRecord `yaml:"answers"`
	Correct bool           `yaml:"correct"`
}

//AnswerRecord keeps one expected value and what the user gave for it.
//Given is nil when no number was entered.
type AnswerRecord struct {
	Prompt   string   `yaml:"prompt"`
	Expected float64  `yaml:"expected"`
	Given    *float64 `yaml:"given,omitempty"`
	Correct  bool     `yaml:"correct"`
}

//WriteYAML encodes the summary as a YAML document.
func (s Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return enc.Close()
}

//WriteFile writes the summary to path, replacing an existing file.
func (s Summary) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary file: %w", err)
	}
	if err := s.WriteYAML(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

//ReadSummary decodes a summary written by WriteYAML.
func ReadSummary(r io.Reader) (Summary, error) {
	var s Summary
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Summary{}, fmt.Errorf("decoding summary: %w", err)
	}
	return s, nil
}
