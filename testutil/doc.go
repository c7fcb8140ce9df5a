// Package testutil provides testing utilities for crcgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible random inputs and for
// cutting inputs into random chunks when checking that streaming updates
// agree with one-shot updates.
//
// # Random Input Generation
//
//	rng := testutil.NewRNG(seed)
//	data := rng.Bytes(1024)
//
// # Random Chunking
//
//	for _, chunk := range rng.Split(data, 5) {
//	    crc = e.Update(crc, chunk)
//	}
package testutil
