package quiz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gehtsoft-usa/go_moaquiz"
	"github.com/gehtsoft-usa/go_moaquiz/bmath/unit"
)

//Settings controls one quiz session.
type Settings struct {
	Mode        Mode
	Tolerance   float64
	Questions   int
	Units       byte
	MaxAttempts int
}

//DefaultSettings mirrors the command line defaults.
func DefaultSettings() Settings {
	return Settings{
		Mode:        ModeAngle,
		Tolerance:   0.05,
		Questions:   10,
		Units:       unit.Angular_MOA,
		MaxAttempts: 3,
	}
}

//Validate checks the settings before a session starts.
func (s Settings) Validate() error {
	if _, err := ParseMode(string(s.Mode)); err != nil {
		return err
	}
	if s.Tolerance <= 0 || s.Tolerance >= 1 {
		return fmt.Errorf("quiz: tolerance %v must be in (0, 1)", s.Tolerance)
	}
	if s.Questions <= 0 {
		return fmt.Errorf("quiz: number of questions %d must be positive", s.Questions)
	}
	if s.Units != unit.Angular_MOA && s.Units != unit.Angular_MIL {
		return fmt.Errorf("quiz: angular unit %d is not supported", s.Units)
	}
	if s.MaxAttempts <= 0 {
		return fmt.Errorf("quiz: max attempts %d must be positive", s.MaxAttempts)
	}
	return nil
}

//TargetViewer shows a target outside of the text flow, e.g. full screen.
type TargetViewer interface {
	View(target go_moaquiz.Target, caption string) error
}

//Session runs a sequence of questions over a line based prompt.
type Session struct {
	settings  Settings
	generator *Generator
	in        *bufio.Reader
	out       io.Writer
	logger    *zap.Logger
	viewer    TargetViewer
	now       func() time.Time
	id        uuid.UUID
}

//Option customizes a Session.
type Option func(*Session)

//WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

//WithViewer shows every target question with the viewer before asking it.
func WithViewer(viewer TargetViewer) Option {
	return func(s *Session) {
		s.viewer = viewer
	}
}

//WithClock replaces the clock used for the summary timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

//WithID sets the session id instead of a random one.
func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}

//NewSession creates a session reading answers from in and writing prompts to out.
func NewSession(settings Settings, rng *rand.Rand, in io.Reader, out io.Writer, opts ...Option) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		settings: settings,
		in:       bufio.NewReader(in),
		out:      out,
		logger:   zap.NewNop(),
		now:      time.Now,
		id:       uuid.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", s.id.String()))

	generator, err := NewGenerator(rng, settings.Units, s.logger)
	if err != nil {
		return nil, err
	}
	s.generator = generator
	return s, nil
}

//ID returns the session id.
func (s *Session) ID() uuid.UUID {
	return s.id
}

//Run asks all questions and prints the score.
//
//If the input ends before the last question, Run returns the partial
//summary together with io.ErrUnexpectedEOF.
func (s *Session) Run() (Summary, error) {
	summary := Summary{
		SessionID: s.id.String(),
		Mode:      string(s.settings.Mode),
		Units:     unit.AngularUnitsName(s.settings.Units),
		Tolerance: s.settings.Tolerance,
		StartedAt: s.now(),
	}
	s.logger.Info("session started",
		zap.String("mode", summary.Mode),
		zap.String("units", summary.Units),
		zap.Float64("tolerance", s.settings.Tolerance),
		zap.Int("questions", s.settings.Questions))

	finish := func(err error) (Summary, error) {
		summary.FinishedAt = s.now()
		fmt.Fprintf(s.out, "Score: %d/%d\n", summary.Score, summary.Asked)
		s.logger.Info("session finished",
			zap.Int("score", summary.Score),
			zap.Int("asked", summary.Asked),
			zap.Error(err))
		return summary, err
	}

	for i := 1; i <= s.settings.Questions; i++ {
		fmt.Fprintf(s.out, "== Question %d/%d ==\n", i, s.settings.Questions)
		question, err := s.generator.Next(s.settings.Mode)
		if err != nil {
			return finish(fmt.Errorf("question %d: %w", i, err))
		}
		summary.Asked++

		record, err := s.ask(i, question)
		summary.Questions = append(summary.Questions, record)
		if record.Correct {
			summary.Score++
		}
		if err != nil {
			return finish(err)
		}
	}
	return finish(nil)
}

func (s *Session) ask(number int, question Question) (QuestionRecord, error) {
	record := QuestionRecord{
		Number:  number,
		Kind:    string(question.Kind),
		Givens:  question.Givens,
		Correct: true,
	}
	for _, line := range question.Givens {
		fmt.Fprintln(s.out, line)
	}
	if question.Target != nil {
		fmt.Fprint(s.out, question.Target.Render())
		if s.viewer != nil {
			if err := s.viewer.View(*question.Target, strings.Join(question.Givens, "  ")); err != nil {
				s.logger.Warn("target view failed", zap.Error(err))
			}
		}
	}

	for _, answer := range question.Answers {
		answerRecord := AnswerRecord{Prompt: strings.TrimSpace(answer.Prompt), Expected: answer.Expected}
		given, err := s.readAnswer(answer.Prompt)
		if err != nil {
			record.Correct = false
			record.Answers = append(record.Answers, answerRecord)
			return record, err
		}
		if given != nil {
			answerRecord.Given = given
			answerRecord.Correct = Within(answer.Expected, *given, s.settings.Tolerance)
		}
		if answerRecord.Correct {
			fmt.Fprintf(s.out, "Correct! %s\n", formatNumber(answer.Expected))
		} else {
			fmt.Fprintf(s.out, "Incorrect! Correct answer: %s\n", formatNumber(answer.Expected))
			record.Correct = false
		}
		record.Answers = append(record.Answers, answerRecord)
	}
	return record, nil
}

//readAnswer prompts until a number is read. It returns nil when all
//attempts were used on input that is not a number.
func (s *Session) readAnswer(prompt string) (*float64, error) {
	for attempt := 1; attempt <= s.settings.MaxAttempts; attempt++ {
		fmt.Fprintln(s.out, prompt)
		line, err := s.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("reading answer: %w", err)
		}
		text := strings.TrimSpace(line)
		value, perr := strconv.ParseFloat(text, 64)
		if perr == nil {
			return &value, nil
		}
		s.logger.Warn("answer is not a number", zap.String("input", text), zap.Int("attempt", attempt))
		fmt.Fprintf(s.out, "Not a number: %q\n", text)
	}
	return nil, nil
}
