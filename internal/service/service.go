package service

import (
	"time"

	"github.com/danmuck/bitsctl/internal/bits"
	"github.com/danmuck/bitsctl/internal/config"
	"github.com/danmuck/bitsctl/internal/observability"
	"github.com/rs/zerolog"
)

// Result is what one message produces for a caller.
type Result struct {
	VersionSum   uint64
	Value        int64
	BitsConsumed int
	BitLength    int
	Packets      int
	Root         *bits.Packet
}

// Service decodes and evaluates BITS messages. It is safe for concurrent
// use; every call works on its own cursor and tree.
type Service struct {
	decoder *bits.Decoder
	logger  zerolog.Logger
	source  string
}

// New builds a service whose decode metrics are labelled with source.
func New(cfg config.DecoderConfig, logger zerolog.Logger, source string) *Service {
	return &Service{
		decoder: bits.NewDecoder(cfg.Options()),
		logger:  logger.With().Str("component", "decoder").Logger(),
		source:  source,
	}
}

// Process decodes hex and runs both folds over the resulting tree. The
// input must already be stripped of surrounding whitespace.
func (s *Service) Process(hex string) (Result, error) {
	start := time.Now()
	res, err := s.process(hex)
	elapsed := time.Since(start)

	if err != nil {
		kind := bits.Kind(err)
		observability.RecordDecode(s.source, kind, 0, elapsed)
		s.logger.Warn().
			Err(err).
			Str("kind", kind).
			Int("digits", len(hex)).
			Dur("duration", elapsed).
			Msg("decode failed")
		return Result{}, err
	}

	observability.RecordDecode(s.source, "ok", res.BitsConsumed, elapsed)
	s.logger.Debug().
		Int("digits", len(hex)).
		Int("bits_consumed", res.BitsConsumed).
		Int("packets", res.Packets).
		Uint64("version_sum", res.VersionSum).
		Int64("value", res.Value).
		Dur("duration", elapsed).
		Msg("decoded")
	return res, nil
}

func (s *Service) process(hex string) (Result, error) {
	root, consumed, err := s.decoder.Decode(hex)
	if err != nil {
		return Result{}, err
	}
	value, err := root.Evaluate()
	if err != nil {
		return Result{}, err
	}
	return Result{
		VersionSum:   root.VersionSum(),
		Value:        value,
		BitsConsumed: consumed,
		BitLength:    4 * len(hex),
		Packets:      root.Count(),
		Root:         root,
	}, nil
}
