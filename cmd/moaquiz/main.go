//Command moaquiz asks MOA and MIL conversion questions on the terminal.
package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/gehtsoft-usa/go_moaquiz/internal/config"
	"github.com/gehtsoft-usa/go_moaquiz/internal/display"
	"github.com/gehtsoft-usa/go_moaquiz/internal/logging"
	"github.com/gehtsoft-usa/go_moaquiz/quiz"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := config.Flags("moaquiz")
	fs.SetOutput(stderr)
	settings, err := config.Load(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger, err := logging.New(settings.LogLevel, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	seed := settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("random source seeded", zap.Uint64("seed", seed))

	opts := []quiz.Option{quiz.WithLogger(logger)}
	if settings.Screen && settings.Quiz.Mode == quiz.ModeTarget {
		opts = append(opts, quiz.WithViewer(display.NewViewer()))
	}

	session, err := quiz.NewSession(settings.Quiz, rand.New(rand.NewPCG(seed, seed>>1)), stdin, stdout, opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	summary, runErr := session.Run()
	if settings.Summary != "" {
		if err := summary.WriteFile(settings.Summary); err != nil {
			logger.Error("failed to write summary", zap.String("path", settings.Summary), zap.Error(err))
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	if runErr != nil {
		fmt.Fprintln(stderr, runErr)
		return 1
	}
	return 0
}
