//Package config loads the quiz settings from flags, environment and an optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gehtsoft-usa/go_moaquiz/bmath/unit"
	"github.com/gehtsoft-usa/go_moaquiz/internal/logging"
	"github.com/gehtsoft-usa/go_moaquiz/quiz"
)

//EnvPrefix prefixes every environment override, e.g. MOAQUIZ_NUMBER_OF_QUESTIONS.
const EnvPrefix = "MOAQUIZ"

//Config keys. Flags, environment variables and config file entries share them.
const (
	KeyMode        = "mode"
	KeyTolerance   = "tolerance"
	KeyQuestions   = "number-of-questions"
	KeyUnits       = "units"
	KeySeed        = "seed"
	KeyMaxAttempts = "max-attempts"
	KeySummary     = "summary"
	KeyScreen      = "screen"
	KeyLogLevel    = "log-level"
	KeyConfig      = "config"
)

//Settings is the validated configuration of one run.
type Settings struct {
	Quiz     quiz.Settings
	Seed     uint64
	Summary  string
	Screen   bool
	LogLevel string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyMode, "angle")
	v.SetDefault(KeyTolerance, 0.05)
	v.SetDefault(KeyQuestions, 10)
	v.SetDefault(KeyUnits, "moa")
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyMaxAttempts, 3)
	v.SetDefault(KeySummary, "")
	v.SetDefault(KeyScreen, false)
	v.SetDefault(KeyLogLevel, "warn")
}

//Flags defines the command line flags of the quiz.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP(KeyMode, "m", "angle", "question mode: angle, drop, random or target")
	fs.Float64P(KeyTolerance, "t", 0.05, "accepted relative error of an answer")
	fs.IntP(KeyQuestions, "n", 10, "number of questions")
	fs.StringP(KeyUnits, "u", "moa", "angular units: moa or mil")
	fs.Uint64(KeySeed, 0, "random seed, 0 seeds from the clock")
	fs.Int(KeyMaxAttempts, 3, "attempts to enter a number before the answer counts as wrong")
	fs.String(KeySummary, "", "write a YAML session summary to this file")
	fs.Bool(KeyScreen, false, "show target questions full screen")
	fs.String(KeyLogLevel, "warn", "log level: debug, info, warn or error")
	fs.StringP(KeyConfig, "c", "", "config file (yaml, json or toml)")
	return fs
}

//Load parses args into fs and resolves the settings.
//
//Precedence: flags set on the command line, environment, config file, defaults.
//A --help request is returned as pflag.ErrHelp.
func Load(fs *pflag.FlagSet, args []string) (Settings, error) {
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}

	v := viper.New()
	setDefaults(v)
	if err := v.BindPFlags(fs); err != nil {
		return Settings{}, fmt.Errorf("error binding flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (Settings, error) {
	mode, err := quiz.ParseMode(v.GetString(KeyMode))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid %s: %w", KeyMode, err)
	}
	units, err := unit.ParseAngularUnits(strings.ToLower(v.GetString(KeyUnits)))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid %s: %w", KeyUnits, err)
	}
	level := v.GetString(KeyLogLevel)
	if _, err := logging.ParseLevel(level); err != nil {
		return Settings{}, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}

	s := Settings{
		Quiz: quiz.Settings{
			Mode:        mode,
			Tolerance:   v.GetFloat64(KeyTolerance),
			Questions:   v.GetInt(KeyQuestions),
			Units:       units,
			MaxAttempts: v.GetInt(KeyMaxAttempts),
		},
		Seed:     v.GetUint64(KeySeed),
		Summary:  v.GetString(KeySummary),
		Screen:   v.GetBool(KeyScreen),
		LogLevel: level,
	}
	if err := s.Quiz.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
