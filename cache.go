package crcgo

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Shared engines are built at most once per (parameters, strategy) pair and
// kept for the process lifetime.
var (
	sharedEngines sync.Map // cacheKey -> Engine[T]
	sharedGroup   singleflight.Group
)

type cacheKey struct {
	params   any // *Params[T]; identity, not contents
	strategy Strategy
}

// Shared returns a process-wide engine for p and s.
//
// Concurrent first calls for the same pair build the tables exactly once;
// every caller receives the same immutable engine. Parameters are keyed by
// pointer, so two distinct Params with equal fields get distinct engines.
func Shared[T Word](p *Params[T], s Strategy) (Engine[T], error) {
	if s == Auto {
		s = resolveAuto(p)
	}
	key := cacheKey{params: p, strategy: s}
	if e, ok := sharedEngines.Load(key); ok {
		return e.(Engine[T]), nil
	}

	v, err, _ := sharedGroup.Do(fmt.Sprintf("%p/%d", p, s), func() (any, error) {
		if e, ok := sharedEngines.Load(key); ok {
			return e, nil
		}
		e, err := New(p, WithStrategy(s))
		if err != nil {
			return nil, err
		}
		sharedEngines.Store(key, e)
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Engine[T]), nil
}

// Sum computes the finalized CRC of data with the shared Auto engine for p.
//
//	sum, err := crcgo.Sum(crcgo.CRC16XModem, data)
func Sum[T Word](p *Params[T], data []byte) (T, error) {
	e, err := Shared(p, Auto)
	if err != nil {
		return 0, err
	}
	return Checksum(e, data), nil
}
