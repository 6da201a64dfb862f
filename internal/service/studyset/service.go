package studyset

import (
	"errors"
	"log/slog"

	"github.com/heartmarshall/practice-text/internal/locale"
	"github.com/heartmarshall/practice-text/internal/parser"
	"github.com/heartmarshall/practice-text/internal/shuffle"
)

// ErrNothingParsed means the text produced no usable record. The caller
// must not start a review; the wrapped *NothingParsedError carries the
// localized message to show instead.
var ErrNothingParsed = errors.New("nothing parsed")

// NothingParsedError carries the localized explanation for an empty import.
type NothingParsedError struct {
	Message string
}

func (e *NothingParsedError) Error() string { return e.Message }

func (e *NothingParsedError) Unwrap() error { return ErrNothingParsed }

// Service turns pasted text into study sets.
type Service struct {
	catalog       *locale.Catalog
	src           shuffle.Source
	parserOpts    []parser.Option
	maxInputBytes int64
	log           *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithShuffleSource sets the randomness used for random order.
func WithShuffleSource(src shuffle.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.src = src
		}
	}
}

// WithParserOptions forwards options to both parsers.
func WithParserOptions(opts ...parser.Option) Option {
	return func(s *Service) { s.parserOpts = append(s.parserOpts, opts...) }
}

// WithMaxInputBytes rejects texts larger than n bytes. Zero disables the limit.
func WithMaxInputBytes(n int64) Option {
	return func(s *Service) { s.maxInputBytes = n }
}

// NewService creates a new study-set service.
func NewService(
	log *slog.Logger,
	catalog *locale.Catalog,
	opts ...Option,
) *Service {
	s := &Service{
		catalog: catalog,
		src:     shuffle.Global(),
		log:     log.With("service", "studyset"),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}
