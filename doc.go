// Package crcgo provides configurable CRC computation for 8, 16, 32 and
// 64-bit registers in both bit orders.
//
// An algorithm is described by Params (initial value, Normal-form polynomial,
// output XOR, check value and bit order). Ten common algorithms are built in:
// CRC8, CRC8Maxim, CRC16ARC, CRC16XModem, CRC32, CRC32C, CRC32MPEG2, CRC32Q,
// CRC64ECMA and CRC64XZ.
//
// # Quick Start
//
// One-shot checksum with a shared engine:
//
//	sum, err := crcgo.Sum(crcgo.CRC32C, data)
//
// Dedicated engine with an explicit strategy:
//
//	e, err := crcgo.New(crcgo.CRC64XZ, crcgo.WithStrategy(crcgo.Slice8))
//	crc := e.InitialValue()
//	crc = e.Update(crc, chunk1)
//	crc = e.Update(crc, chunk2)
//	sum := e.Finalize(crc)
//
// As a hash.Hash:
//
//	h := crcgo.NewHash32(e32)
//	io.Copy(h, r)
//	h.Sum32()
//
// # Strategies
//
// Every strategy computes bit-identical results; they trade table memory for
// throughput:
//
//	Strategy     Tables    Bytes per step
//	Bitwise      0         1 (8 shift steps)
//	Table        1         1
//	Slice4       4         4
//	Slice8       8         8
//	Slice16      16        16
//	Accelerated  -         hardware (CRC-32 IEEE/Castagnoli/Koopman only)
//
// Auto picks Accelerated where eligible and Slice4 otherwise. Set
// CRCGO_STRATEGY to pin the choice.
//
// # Custom Algorithms
//
//	poly, err := crcgo.NewNormal[uint16](0x1021)
//	if err != nil {
//	    return err // errors.Is(err, crcgo.ErrInvalidPolynomial)
//	}
//	kermit := &crcgo.Params[uint16]{
//	    Name:  "CRC-16/KERMIT",
//	    Poly:  poly,
//	    Check: 0x2189,
//	    Order: crcgo.Reflected,
//	}
//	e, err := crcgo.New(kermit, crcgo.WithSelfTest(true))
//
// Polynomials can also be given in Reverse or Koopman form with NewReverse
// and NewKoopman and converted with their Normal method.
//
// # Concurrency
//
// Engines and their tables are immutable after construction and safe for
// concurrent use. The running CRC is a plain value owned by the caller. Use
// Shared to build each table once process-wide.
package crcgo
