// Package errchar characterizes the error behavior of approximate
// arithmetic circuits: it explores a device under test exhaustively or by
// seeded random sampling, compares each output against the ideal result,
// and writes the aggregated error distances to a binary artifact.
package errchar

import (
	"fmt"

	"github.com/consensys/gnark/logger"

	"github.com/approxware/errchar/artifact"
	"github.com/approxware/errchar/dut"
	"github.com/approxware/errchar/errmodel"
	"github.com/approxware/errchar/results"
	"github.com/approxware/errchar/sampling"
)

// Re-exported so callers configure runs without importing results.
type Mode = results.Mode

const (
	Exhaustive = results.Exhaustive
	Random2D   = results.Random2D
	Random3D   = results.Random3D
)

// RunConfig is the context of one characterization run. It is constructed
// once and passed to every component; the engine keeps no package-level
// state.
type RunConfig struct {
	// Name labels the run and names the artifact directory.
	Name string
	// Mode fixes the exploration strategy and output shape for the run.
	Mode Mode
	// Signed selects two's-complement interpretation of results (and, for
	// multipliers, operands).
	Signed bool
	// Policy selects the random 2D accumulation shape; zero value is
	// KeepMeans. Ignored outside Random2D.
	Policy results.Random2DPolicy
	// OutputRoot is the directory the artifact tree is written under.
	OutputRoot string
}

// CharacterizeAdder runs the sampling loop against an adder and returns
// the aggregated result set. Carry-in is driven low for every request and
// carry-out is ignored.
func CharacterizeAdder(cfg RunConfig, unit dut.Adder) (results.Set, error) {
	w := unit.Width()
	if err := checkWidths(cfg.Mode, w, w); err != nil {
		return nil, err
	}
	seq := newSequence(cfg.Mode, w)
	set := newSet(cfg, w, w)
	comp := errmodel.Computer{Signed: cfg.Signed}
	mask := ^uint64(0)
	if w < 64 {
		mask = uint64(1)<<uint(w) - 1
	}

	log := logger.Logger()
	log.Info().Str("name", cfg.Name).Stringer("mode", cfg.Mode).Bool("signed", cfg.Signed).
		Int("width", w).Uint64("samples", seq.Count()).Msg("characterizing adder")

	for {
		a, b, ok := seq.Next()
		if !ok {
			break
		}
		sum, _, err := unit.Evaluate(a, b, false)
		if err != nil {
			return nil, &AdapterError{A: a, B: b, Err: err}
		}
		if sum&^mask != 0 {
			return nil, &AdapterError{A: a, B: b, Err: fmt.Errorf("sum %#x exceeds the declared %d-bit width", sum, w)}
		}
		ideal, diff := comp.AdderDiff(w, a, b, sum)
		if err := set.Record(a, b, ideal, diff); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// CharacterizeMultiplier runs the sampling loop against a multiplier. The
// operand widths must be equal; the ideal result width is their sum.
func CharacterizeMultiplier(cfg RunConfig, unit dut.Multiplier) (results.Set, error) {
	wa, wb := unit.WidthA(), unit.WidthB()
	if wa != wb {
		return nil, &ConfigError{Bound: fmt.Sprintf("multiplier operand widths must be equal, got %d and %d", wa, wb)}
	}
	if err := checkWidths(cfg.Mode, wa, wb); err != nil {
		return nil, err
	}
	seq := newSequence(cfg.Mode, wa)
	set := newSet(cfg, wa, wb)
	comp := errmodel.Computer{Signed: cfg.Signed}

	log := logger.Logger()
	log.Info().Str("name", cfg.Name).Stringer("mode", cfg.Mode).Bool("signed", cfg.Signed).
		Int("widthA", wa).Int("widthB", wb).Uint64("samples", seq.Count()).Msg("characterizing multiplier")

	for {
		a, b, ok := seq.Next()
		if !ok {
			break
		}
		product, err := unit.Evaluate(a, b)
		if err != nil {
			return nil, &AdapterError{A: a, B: b, Err: err}
		}
		if product.Sign() < 0 || product.BitLen() > wa+wb {
			return nil, &AdapterError{A: a, B: b, Err: fmt.Errorf("product %s exceeds the declared %d-bit width", product, wa+wb)}
		}
		ideal, diff := comp.MulDiff(wa, wb, a, b, product)
		if err := set.Record(a, b, ideal, diff); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// RunAdder characterizes an adder and writes the artifact, returning its
// path.
func RunAdder(cfg RunConfig, unit dut.Adder) (string, error) {
	set, err := CharacterizeAdder(cfg, unit)
	if err != nil {
		return "", err
	}
	return writeArtifact(cfg, set)
}

// RunMultiplier characterizes a multiplier and writes the artifact,
// returning its path.
func RunMultiplier(cfg RunConfig, unit dut.Multiplier) (string, error) {
	set, err := CharacterizeMultiplier(cfg, unit)
	if err != nil {
		return "", err
	}
	return writeArtifact(cfg, set)
}

func writeArtifact(cfg RunConfig, set results.Set) (path string, err error) {
	w, err := artifact.NewWriter(cfg.OutputRoot, cfg.Name)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err = w.Write(set.Encode()); err != nil {
		return "", err
	}
	log := logger.Logger()
	log.Info().Str("name", cfg.Name).Int("entries", set.Len()).Str("path", w.Path()).Msg("wrote artifact")
	return w.Path(), nil
}

func checkWidths(mode Mode, wa, wb int) error {
	if wa <= 0 || wb <= 0 {
		return &ConfigError{Bound: fmt.Sprintf("operand widths must be positive, got %d and %d", wa, wb)}
	}
	switch mode {
	case results.Exhaustive:
		if wa > sampling.MaxExhaustiveWidth || wb > sampling.MaxExhaustiveWidth {
			return &ConfigError{Bound: fmt.Sprintf("exhaustive characterization supports operand widths up to %d bits, got %d and %d",
				sampling.MaxExhaustiveWidth, wa, wb)}
		}
	case results.Random2D, results.Random3D:
		if wa > sampling.MaxRandomWidth || wb > sampling.MaxRandomWidth {
			return &ConfigError{Bound: fmt.Sprintf("random characterization supports operand widths up to %d bits, got %d and %d",
				sampling.MaxRandomWidth, wa, wb)}
		}
	default:
		return &ConfigError{Bound: fmt.Sprintf("unknown sampling mode %d", int(mode))}
	}
	return nil
}

func newSequence(mode Mode, width int) sampling.Sequence {
	if mode == results.Exhaustive {
		return sampling.NewExhaustive(width)
	}
	return sampling.NewRandom(width)
}

func newSet(cfg RunConfig, wa, wb int) results.Set {
	h := results.Header{WidthA: int32(wa), WidthB: int32(wb)}
	switch cfg.Mode {
	case results.Exhaustive:
		return results.NewExhaustiveSet(h)
	case results.Random2D:
		return results.NewRandom2DSet(h, cfg.Policy)
	default:
		return results.NewRandom3DSet(h)
	}
}
