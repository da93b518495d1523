package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"go.uber.org/zap"

	"github.com/gehtsoft-usa/go_moaquiz"
	"github.com/gehtsoft-usa/go_moaquiz/bmath/unit"
	"github.com/gehtsoft-usa/go_moaquiz/bmath/vector"
)

//Candidate values the questions are drawn from.
//Distances are in meters, drops and target offsets in centimeters.
var (
	Distances     = []float64{25, 50, 100, 200, 400, 800, 1000}
	MOAAngles     = []float64{0.2, 0.5, 1, 2}
	MILAngles     = []float64{0.1, 0.2, 0.5, 1}
	Drops         = []float64{0.5, 1, 2, 5}
	TargetOffsets = []float64{-5, -2, -1, 0, 1, 2, 5}
)

//targetCenter is the middle of the center cell, where a zero offset lands.
var targetCenter = vector.Create(float64(go_moaquiz.CenterCell)+0.5, float64(go_moaquiz.CenterCell)+0.5)

//maxRedraws bounds the attempts to draw a target question whose impact fits the grid.
const maxRedraws = 64

//Answer is one value the user has to find.
type Answer struct {
	Prompt   string
	Expected float64
}

//Question is a generated question: what the user is told and what they have to answer.
type Question struct {
	Kind    Mode
	Givens  []string
	Target  *go_moaquiz.Target
	Answers []Answer
}

//Generator draws questions from the candidate sets using the injected random source.
type Generator struct {
	rng    *rand.Rand
	units  byte
	logger *zap.Logger
}

//NewGenerator creates a generator for the angular units (unit.Angular_MOA or unit.Angular_MIL).
func NewGenerator(rng *rand.Rand, units byte, logger *zap.Logger) (*Generator, error) {
	if rng == nil {
		return nil, errors.New("quiz: random source is required")
	}
	if units != unit.Angular_MOA && units != unit.Angular_MIL {
		return nil, fmt.Errorf("quiz: angular unit %d is not supported", units)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{rng: rng, units: units, logger: logger}, nil
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

//Next generates the next question for the mode.
func (g *Generator) Next(mode Mode) (Question, error) {
	switch mode {
	case ModeAngle:
		return g.angleQuestion()
	case ModeDrop:
		return g.dropQuestion()
	case ModeRandom:
		return g.Next(pick(g.rng, []Mode{ModeAngle, ModeDrop}))
	case ModeTarget:
		return g.targetQuestion()
	default:
		return Question{}, fmt.Errorf("quiz: mode %q is not supported", mode)
	}
}

func (g *Generator) unitsName() string {
	return unit.AngularUnitsName(g.units)
}

func (g *Generator) angleQuestion() (Question, error) {
	candidates := MOAAngles
	if g.units == unit.Angular_MIL {
		candidates = MILAngles
	}
	value := pick(g.rng, candidates)
	distance := pick(g.rng, Distances)

	angle, err := unit.CreateAngular(value, g.units)
	if err != nil {
		return Question{}, err
	}
	add, err := go_moaquiz.CreateFromAngleAndDistance(angle, distance)
	if err != nil {
		return Question{}, fmt.Errorf("quiz: angle question: %w", err)
	}
	g.logger.Debug("generated question",
		zap.String("kind", string(ModeAngle)),
		zap.Stringer("angle", angle),
		zap.Float64("distance", distance))

	return Question{
		Kind: ModeAngle,
		Givens: []string{
			fmt.Sprintf("Distance: %s meters", formatNumber(distance)),
			fmt.Sprintf("%s: %s", g.unitsName(), formatNumber(value)),
		},
		Answers: []Answer{{Prompt: "Find in cm drop: ", Expected: add.DropInCentimeters()}},
	}, nil
}

func (g *Generator) dropQuestion() (Question, error) {
	drop := pick(g.rng, Drops)
	distance := pick(g.rng, Distances)

	add, err := go_moaquiz.CreateFromDropAndDistance(drop/100, distance)
	if err != nil {
		return Question{}, fmt.Errorf("quiz: drop question: %w", err)
	}
	g.logger.Debug("generated question",
		zap.String("kind", string(ModeDrop)),
		zap.Float64("drop_cm", drop),
		zap.Float64("distance", distance))

	return Question{
		Kind: ModeDrop,
		Givens: []string{
			fmt.Sprintf("Distance: %s meters", formatNumber(distance)),
			fmt.Sprintf("Drop: %s cm", formatNumber(drop)),
		},
		Answers: []Answer{{Prompt: fmt.Sprintf("Find %s: ", g.unitsName()), Expected: add.Angle().In(g.units)}},
	}, nil
}

//targetQuestion places a signed horizontal and vertical drop on the grid.
//One cell spans one angular unit, right and up are positive.
func (g *Generator) targetQuestion() (Question, error) {
	var rangeErr *go_moaquiz.OutOfRangeError
	for attempt := 1; attempt <= maxRedraws; attempt++ {
		horizontal := pick(g.rng, TargetOffsets)
		vertical := pick(g.rng, TargetOffsets)
		distance := pick(g.rng, Distances)

		h, err := go_moaquiz.CreateFromDropAndDistance(horizontal/100, distance)
		if err != nil {
			return Question{}, fmt.Errorf("quiz: target question: %w", err)
		}
		v, err := go_moaquiz.CreateFromDropAndDistance(vertical/100, distance)
		if err != nil {
			return Question{}, fmt.Errorf("quiz: target question: %w", err)
		}
		offset := vector.Create(h.Angle().In(g.units), v.Angle().In(g.units))

		impact := targetCenter.Add(offset.FlipY())
		target, err := go_moaquiz.CreateTarget(impact.X, impact.Y)
		if errors.As(err, &rangeErr) {
			g.logger.Debug("target question does not fit the grid, redrawing",
				zap.Int("attempt", attempt),
				zap.Float64("horizontal_cm", horizontal),
				zap.Float64("vertical_cm", vertical),
				zap.Float64("distance", distance))
			continue
		}
		if err != nil {
			return Question{}, fmt.Errorf("quiz: target question: %w", err)
		}
		g.logger.Debug("generated question",
			zap.String("kind", string(ModeTarget)),
			zap.Float64("horizontal_cm", horizontal),
			zap.Float64("vertical_cm", vertical),
			zap.Float64("distance", distance))

		name := g.unitsName()
		return Question{
			Kind: ModeTarget,
			Givens: []string{
				fmt.Sprintf("Distance: %s meters", formatNumber(distance)),
				fmt.Sprintf("Impact: %s cm right, %s cm up", formatNumber(horizontal), formatNumber(vertical)),
				fmt.Sprintf("One cell is 1 %s", name),
			},
			Target: &target,
			Answers: []Answer{
				{Prompt: fmt.Sprintf("Find horizontal offset in %s (right is positive): ", name), Expected: offset.X},
				{Prompt: fmt.Sprintf("Find vertical offset in %s (up is positive): ", name), Expected: offset.Y},
			},
		}, nil
	}
	return Question{}, fmt.Errorf("quiz: no target question fits the grid after %d draws", maxRedraws)
}
