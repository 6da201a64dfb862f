package studyset

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/practice-text/internal/domain"
	"github.com/heartmarshall/practice-text/internal/locale"
	"github.com/heartmarshall/practice-text/internal/parser/flashcard"
	"github.com/heartmarshall/practice-text/internal/parser/mcq"
)

// ImportFlashcards parses input.Text as question/answer pairs.
func (s *Service) ImportFlashcards(ctx context.Context, input ImportInput) (StudySet[domain.Flashcard], error) {
	tr, err := s.prepare(ctx, input)
	if err != nil {
		return StudySet[domain.Flashcard]{}, err
	}

	res, err := flashcard.Parse(input.Text, tr, s.parserOpts...)
	if err != nil {
		return StudySet[domain.Flashcard]{}, fmt.Errorf("parse flashcards: %w", err)
	}

	return assemble(ctx, s, input, tr, "flashcards", res, locale.ImportPartialFlashcards, locale.ImportNoCardsCreated)
}

// ImportMCQs parses input.Text as multiple-choice question blocks. Keywords
// of every supported language are recognised.
func (s *Service) ImportMCQs(ctx context.Context, input ImportInput) (StudySet[domain.MultipleChoiceQuestion], error) {
	tr, err := s.prepare(ctx, input)
	if err != nil {
		return StudySet[domain.MultipleChoiceQuestion]{}, err
	}

	res, err := mcq.Parse(input.Text, tr, s.catalog.WithActiveFirst(tr), s.parserOpts...)
	if err != nil {
		return StudySet[domain.MultipleChoiceQuestion]{}, fmt.Errorf("parse mcqs: %w", err)
	}

	return assemble(ctx, s, input, tr, "mcqs", res, locale.ImportPartialMCQs, locale.ImportNoMCQsCreated)
}

func (s *Service) prepare(ctx context.Context, input ImportInput) (*locale.TranslationSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.maxInputBytes > 0 && int64(len(input.Text)) > s.maxInputBytes {
		return nil, domain.NewValidationError("text", fmt.Sprintf("max %d bytes", s.maxInputBytes))
	}

	lang := strings.TrimSpace(input.Language)
	if lang == "" {
		return s.catalog.Default(), nil
	}
	tr, err := s.catalog.Resolve(lang)
	if err != nil {
		return nil, fmt.Errorf("resolve language: %w", err)
	}
	return tr, nil
}

func assemble[T any](
	ctx context.Context,
	s *Service,
	input ImportInput,
	tr *locale.TranslationSet,
	kind string,
	res domain.ParseResult[T],
	partialKey, emptyKey locale.Key,
) (StudySet[T], error) {
	if len(res.Records) == 0 {
		msg := res.Error
		if msg == "" {
			msg = tr.Format(emptyKey)
		}
		s.log.InfoContext(ctx, "nothing imported",
			slog.String("kind", kind),
			slog.String("language", tr.Language().String()),
			slog.String("reason", msg),
		)
		return StudySet[T]{}, &NothingParsedError{Message: msg}
	}

	set := StudySet[T]{
		Translations: tr,
		Source:       res.Records,
		Items:        arrange(s.src, res.Records, input.RandomOrder),
		RandomOrder:  input.RandomOrder,
		src:          s.src,
	}
	if res.Error != "" {
		set.Warning = res.Error + " (" + tr.Format(partialKey) + ")"
	}

	s.log.InfoContext(ctx, "study set imported",
		slog.String("kind", kind),
		slog.String("language", tr.Language().String()),
		slog.Int("count", len(set.Items)),
		slog.Bool("random_order", set.RandomOrder),
		slog.Bool("partial", set.Partial()),
	)

	return set, nil
}
