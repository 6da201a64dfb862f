package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartmarshall/practice-text/internal/config"
	"github.com/heartmarshall/practice-text/internal/domain"
	"github.com/heartmarshall/practice-text/internal/locale"
	"github.com/heartmarshall/practice-text/internal/parser"
	"github.com/heartmarshall/practice-text/internal/service/studyset"
	"github.com/heartmarshall/practice-text/internal/tui"
)

// Command selects what Run does with the imported set.
type Command string

const (
	CommandParse  Command = "parse"
	CommandReview Command = "review"
)

// Mode selects the text format.
type Mode string

const (
	ModeFlashcard Mode = "flashcard"
	ModeMCQ       Mode = "mcq"
)

// Options describe one CLI invocation.
type Options struct {
	Command Command
	Mode    Mode
	// File is the input path; "" or "-" reads Stdin.
	File        string
	Language    string
	RandomOrder bool

	Stdin  io.Reader
	Stdout io.Writer
}

// Validate checks all fields and collects all errors.
func (o Options) Validate() error {
	var errs []domain.FieldError
	switch o.Command {
	case CommandParse, CommandReview:
	default:
		errs = append(errs, domain.FieldError{Field: "command", Message: "must be parse or review"})
	}
	switch o.Mode {
	case ModeFlashcard, ModeMCQ:
	default:
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be flashcard or mcq"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Run reads the input, imports it and either prints the result or starts
// an interactive review. A text that yields no record returns an error
// wrapping studyset.ErrNothingParsed after the message has been printed.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	text, err := readInput(opts, cfg.Study.MaxInputBytes)
	if err != nil {
		return err
	}

	lang := opts.Language
	if lang == "" {
		lang = cfg.Study.Language
	}

	svc := studyset.NewService(logger, locale.Default(),
		studyset.WithMaxInputBytes(cfg.Study.MaxInputBytes),
		studyset.WithParserOptions(parser.WithSnippetLength(cfg.Study.SnippetLength)),
	)
	input := studyset.ImportInput{Text: text, Language: lang, RandomOrder: opts.RandomOrder}

	logger.DebugContext(ctx, "running",
		slog.String("command", string(opts.Command)),
		slog.String("mode", string(opts.Mode)),
		slog.String("language", lang),
		slog.String("version", BuildVersion()),
	)

	out := newPrinter(stdout(opts))

	switch opts.Mode {
	case ModeFlashcard:
		set, err := svc.ImportFlashcards(ctx, input)
		if err != nil {
			return report(out, err)
		}
		if opts.Command == CommandReview {
			return tui.Run(ctx, tui.NewDeck(set), tuiIO(opts)...)
		}
		out.flashcards(set)

	case ModeMCQ:
		set, err := svc.ImportMCQs(ctx, input)
		if err != nil {
			return report(out, err)
		}
		if opts.Command == CommandReview {
			return tui.Run(ctx, tui.NewQuiz(set), tuiIO(opts)...)
		}
		out.mcqs(set)
	}
	return out.err
}

func report(out *printer, err error) error {
	var npe *studyset.NothingParsedError
	if errors.As(err, &npe) {
		out.failure(npe.Message)
	}
	return err
}

func readInput(opts Options, limit int64) (string, error) {
	var r io.Reader
	switch opts.File {
	case "", "-":
		r = opts.Stdin
		if r == nil {
			r = os.Stdin
		}
	default:
		f, err := os.Open(opts.File)
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if limit > 0 && int64(len(b)) > limit {
		return "", domain.NewValidationError("text", fmt.Sprintf("max %d bytes", limit))
	}
	return string(b), nil
}

func stdout(opts Options) io.Writer {
	if opts.Stdout != nil {
		return opts.Stdout
	}
	return os.Stdout
}

// tuiIO keeps the review interactive when the text itself came from stdin.
func tuiIO(opts Options) []tea.ProgramOption {
	var po []tea.ProgramOption
	if opts.File == "" || opts.File == "-" {
		po = append(po, tea.WithInputTTY())
	}
	if opts.Stdout != nil {
		po = append(po, tea.WithOutput(opts.Stdout))
	}
	return po
}
