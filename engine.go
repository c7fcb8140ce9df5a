package crcgo

import (
	"strings"
	"time"

	"github.com/hupe1980/crcgo/internal/hash"
	"github.com/hupe1980/crcgo/internal/platform"
)

// Strategy selects how an engine computes CRCs.
type Strategy uint8

const (
	// Auto picks Accelerated when the parameters and CPU allow it and
	// Slice4 otherwise. CRCGO_STRATEGY overrides the choice.
	Auto Strategy = iota
	// Bitwise processes one bit at a time. No tables; the reference oracle.
	Bitwise
	// Table processes one byte per step with a 256-entry table.
	Table
	// Slice4 processes four bytes per step with four chained tables.
	Slice4
	// Slice8 processes eight bytes per step with eight chained tables.
	Slice8
	// Slice16 processes sixteen bytes per step with sixteen chained tables.
	Slice16
	// Accelerated delegates to hardware CRC instructions. Only reflected
	// 32-bit IEEE, Castagnoli and Koopman polynomials are eligible.
	Accelerated
)

// String returns the string representation of a Strategy.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Bitwise:
		return "bitwise"
	case Table:
		return "table"
	case Slice4:
		return "slice4"
	case Slice8:
		return "slice8"
	case Slice16:
		return "slice16"
	case Accelerated:
		return "accelerated"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a string into a Strategy value.
func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return Auto, true
	case "bitwise":
		return Bitwise, true
	case "table":
		return Table, true
	case "slice4", "slicex4", "slice-by-4":
		return Slice4, true
	case "slice8", "slicex8", "slice-by-8":
		return Slice8, true
	case "slice16", "slicex16", "slice-by-16":
		return Slice16, true
	case "accelerated", "hardware":
		return Accelerated, true
	default:
		return Auto, false
	}
}

// Engine computes a CRC for one set of parameters.
//
// Engines are immutable after construction and safe for concurrent use. The
// running CRC is owned by the caller and threaded through Update:
//
//	crc := e.InitialValue()
//	crc = e.Update(crc, chunk1)
//	crc = e.Update(crc, chunk2)
//	sum := e.Finalize(crc)
//
// Update over A then B equals Update over A‖B, and Update over an empty
// slice returns crc unchanged.
type Engine[T Word] interface {
	// Params returns the parameters the engine was built from.
	Params() *Params[T]
	// Strategy returns the strategy the engine implements.
	Strategy() Strategy
	// InitialValue returns the register value before any input.
	InitialValue() T
	// Update advances crc over p.
	Update(crc T, p []byte) T
	// Finalize applies the output XOR.
	Finalize(crc T) T
}

// Checksum computes the finalized CRC of p in one call.
func Checksum[T Word](e Engine[T], p []byte) T {
	return e.Finalize(e.Update(e.InitialValue(), p))
}

// New builds an engine for p.
//
// The strategy defaults to Auto. Construction cost is proportional to the
// table size and independent of later input sizes.
//
// Example:
//
//	e, err := crcgo.New(crcgo.CRC32C, crcgo.WithStrategy(crcgo.Slice8))
//	if err != nil {
//	    return err
//	}
//	sum := crcgo.Checksum(e, data)
func New[T Word](p *Params[T], optFns ...Option) (Engine[T], error) {
	o := applyOptions(optFns)

	strategy := o.strategy
	if strategy == Auto {
		strategy = resolveAuto(p)
	}

	name := "<nil>"
	if p != nil {
		name = p.Name
	}
	log := o.logger.WithAlgorithm(name).WithStrategy(strategy)
	if o.strategy == Auto {
		override, _ := platform.Override()
		log.LogResolve(override, platform.Features())
	}

	start := time.Now()
	e, tables, err := build(p, strategy)
	elapsed := time.Since(start)

	log.LogBuild(tables, elapsed, err)
	o.metricsCollector.RecordBuild(strategy, tables, elapsed, err)
	if err != nil {
		return nil, err
	}

	if o.selfTest {
		err := SelfTest(e)
		log.LogSelfTest(err)
		o.metricsCollector.RecordSelfTest(strategy, err)
		if err != nil {
			return nil, err
		}
	}

	return e, nil
}

// SelfTest runs the check vector through e and compares the result with the
// published check value.
func SelfTest[T Word](e Engine[T]) error {
	msg, want := e.Params().CheckVector()
	got := Checksum(e, msg)
	if got != want {
		return &CheckMismatchError{
			Name:     e.Params().Name,
			Strategy: e.Strategy(),
			Expected: uint64(want),
			Actual:   uint64(got),
		}
	}
	return nil
}

// build returns the engine and the number of 256-entry tables it owns.
func build[T Word](p *Params[T], s Strategy) (Engine[T], int, error) {
	switch s {
	case Bitwise:
		e, err := NewBitwise(p)
		if err != nil {
			return nil, 0, err
		}
		return e, 0, nil
	case Table:
		e, err := NewTableDriven(p)
		if err != nil {
			return nil, 0, err
		}
		return e, 1, nil
	case Slice4, Slice8, Slice16:
		e, err := NewSlicing(p, s.slices())
		if err != nil {
			return nil, 0, err
		}
		return e, e.Slices(), nil
	case Accelerated:
		e, err := newAccelerated(p)
		if err != nil {
			return nil, 0, err
		}
		return e, 0, nil
	default:
		return nil, 0, unsupported(s, "unknown strategy")
	}
}

func (s Strategy) slices() int {
	switch s {
	case Slice4:
		return 4
	case Slice8:
		return 8
	case Slice16:
		return 16
	default:
		return 0
	}
}

// resolveAuto picks the concrete strategy for Auto.
func resolveAuto[T Word](p *Params[T]) Strategy {
	if name, ok := platform.Override(); ok {
		if s, ok := ParseStrategy(name); ok && s != Auto {
			if s != Accelerated || acceleratedEligible(p) {
				return s
			}
		}
	}
	if platform.HasCRC32() && acceleratedEligible(p) {
		return Accelerated
	}
	return Slice4
}

// acceleratedEligible reports whether p can be served by internal/hash.
func acceleratedEligible[T Word](p *Params[T]) bool {
	p32, ok := any(p).(*Params[uint32])
	if !ok || p32 == nil || p32.Order != Reflected {
		return false
	}
	return hash.Table(p32.Poly.Value()) != nil
}
