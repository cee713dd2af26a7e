// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"io"
	"log/slog"
)

// Result summarizes one generated waveform.
type Result struct {
	Length         Length
	FramesPerPixel int64
	Pixels         int
}

type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// Generator writes waveform JSON for inputs using one validated Config.
type Generator struct {
	cfg    Config
	logger *slog.Logger
}

func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:    cfg.withDefaults(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

func (g *Generator) Config() Config { return g.cfg }

// Generate resolves the length of in, then streams its frames through a
// Downsampler into w. Nothing is written when resolving fails.
func (g *Generator) Generate(in Input, w io.Writer) (Result, error) {
	strategy := g.cfg.Strategy()

	length, err := Resolve(in, strategy)
	if err != nil {
		return Result{}, err
	}
	if strategy == StrategyEstimate && length.Frames == 0 {
		g.logger.Warn("input reports no duration; output will hold at most one pixel per frame, use --scan for an exact count")
	}

	res := Result{
		Length:         length,
		FramesPerPixel: FramesPerPixel(length.Frames, g.cfg.Width),
	}

	g.logger.Debug("resolved length",
		"strategy", strategy,
		"frames", length.Frames,
		"seconds", length.Seconds,
		"frames_per_pixel", res.FramesPerPixel,
	)

	st, err := in.Attach()
	if err != nil {
		return res, fmt.Errorf("%w: attaching: %w", ErrInput, err)
	}

	jw := newJSONWriter(w, g.cfg.Plain)
	if err := jw.Begin(res.FramesPerPixel, g.cfg.Width); err != nil {
		_ = st.Detach()
		return res, fmt.Errorf("%w: %w", ErrOutput, err)
	}

	ds := Downsampler{FramesPerPixel: res.FramesPerPixel, Width: g.cfg.Width}
	res.Pixels, err = ds.Run(st, jw)
	if err != nil {
		_ = st.Detach()
		return res, err
	}

	if err := st.Detach(); err != nil {
		return res, fmt.Errorf("%w: detaching: %w", ErrInput, err)
	}

	if err := jw.End(); err != nil {
		return res, err
	}

	g.logger.Debug("waveform written", "pixels", res.Pixels)

	return res, nil
}
