// Command studytext turns plain-text notes into flashcards or multiple-choice
// questions, then prints them or reviews them in the terminal.
//
// Usage:
//
//	studytext parse  -mode flashcard|mcq [-file path] [-lang id|en] [-random]
//	studytext review -mode flashcard|mcq [-file path] [-lang id|en] [-random]
//	studytext version
//
// Without -file (or with -file -) the text is read from stdin.
// Configuration comes from CONFIG_PATH / ./config.yaml, the environment and
// an optional .env file.
//
// Exit codes: 0 = success (including partial imports), 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/heartmarshall/practice-text/internal/app"
	"github.com/heartmarshall/practice-text/internal/config"
	"github.com/heartmarshall/practice-text/internal/service/studyset"
	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 1
	}

	command := args[0]
	switch command {
	case "version", "-version", "--version":
		fmt.Println(app.BuildVersion())
		return 0
	case string(app.CommandParse), string(app.CommandReview):
	default:
		usage()
		return 1
	}

	// A missing .env is normal; the environment may already be set.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	logger := app.NewLogger(cfg.Log)
	if envErr != nil {
		logger.Debug(".env not loaded", slog.String("error", envErr.Error()))
	}

	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	mode := fs.String("mode", string(app.ModeFlashcard), "text format: flashcard or mcq")
	file := fs.String("file", "-", "input file, - for stdin")
	lang := fs.String("lang", cfg.Study.Language, "keyword and message language (id or en)")
	random := fs.Bool("random", cfg.Study.RandomOrder, "study in random order")
	if err := fs.Parse(args[1:]); err != nil {
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = app.Run(ctx, cfg, logger, app.Options{
		Command:     app.Command(command),
		Mode:        app.Mode(*mode),
		File:        *file,
		Language:    *lang,
		RandomOrder: *random,
	})
	switch {
	case err == nil:
		return 0
	case errors.Is(err, studyset.ErrNothingParsed):
		// The localized reason has already been printed.
		return 1
	default:
		logger.Error("studytext failed", slog.String("error", err.Error()))
		return 1
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: studytext parse|review -mode flashcard|mcq [-file path] [-lang id|en] [-random]")
	fmt.Fprintln(os.Stderr, "       studytext version")
}
