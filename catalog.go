package crcgo

import (
	"fmt"
	"strings"
)

// Builtin algorithms. Check values are the CRC of "123456789".
var (
	CRC8 = &Params[uint8]{
		Name:    "CRC-8",
		Initial: 0x00,
		Poly:    MustNormal[uint8](0x07),
		XorOut:  0x00,
		Check:   0xF4,
		Order:   NonReflected,
	}

	CRC8Maxim = &Params[uint8]{
		Name:    "CRC-8/MAXIM",
		Initial: 0x00,
		Poly:    MustNormal[uint8](0x31),
		XorOut:  0x00,
		Check:   0xA1,
		Order:   Reflected,
	}

	CRC16ARC = &Params[uint16]{
		Name:    "CRC-16/ARC",
		Initial: 0x0000,
		Poly:    MustNormal[uint16](0x8005),
		XorOut:  0x0000,
		Check:   0xBB3D,
		Order:   Reflected,
	}

	CRC16XModem = &Params[uint16]{
		Name:    "CRC-16/XMODEM",
		Initial: 0x0000,
		Poly:    MustNormal[uint16](0x1021),
		XorOut:  0x0000,
		Check:   0x31C3,
		Order:   NonReflected,
	}

	CRC32 = &Params[uint32]{
		Name:    "CRC-32",
		Initial: 0xFFFFFFFF,
		Poly:    MustNormal[uint32](0x04C11DB7),
		XorOut:  0xFFFFFFFF,
		Check:   0xCBF43926,
		Order:   Reflected,
	}

	CRC32C = &Params[uint32]{
		Name:    "CRC-32C",
		Initial: 0xFFFFFFFF,
		Poly:    MustNormal[uint32](0x1EDC6F41),
		XorOut:  0xFFFFFFFF,
		Check:   0xE3069283,
		Order:   Reflected,
	}

	CRC32MPEG2 = &Params[uint32]{
		Name:    "CRC-32/MPEG-2",
		Initial: 0xFFFFFFFF,
		Poly:    MustNormal[uint32](0x04C11DB7),
		XorOut:  0x00000000,
		Check:   0x0376E6E7,
		Order:   NonReflected,
	}

	CRC32Q = &Params[uint32]{
		Name:    "CRC-32Q",
		Initial: 0x00000000,
		Poly:    MustNormal[uint32](0x814141AB),
		XorOut:  0x00000000,
		Check:   0x3010BF7F,
		Order:   NonReflected,
	}

	CRC64ECMA = &Params[uint64]{
		Name:    "CRC-64",
		Initial: 0x0000000000000000,
		Poly:    MustNormal[uint64](0x42F0E1EBA9EA3693),
		XorOut:  0x0000000000000000,
		Check:   0x6C40DF5F0B497347,
		Order:   NonReflected,
	}

	CRC64XZ = &Params[uint64]{
		Name:    "CRC-64/XZ",
		Initial: 0xFFFFFFFFFFFFFFFF,
		Poly:    MustNormal[uint64](0x42F0E1EBA9EA3693),
		XorOut:  0xFFFFFFFFFFFFFFFF,
		Check:   0x995DC9BBDF1939FA,
		Order:   Reflected,
	}
)

// catalog lists the builtins in declaration order. Entries are *Params[T]
// of mixed widths.
var catalog = []any{
	CRC8, CRC8Maxim,
	CRC16ARC, CRC16XModem,
	CRC32, CRC32C, CRC32MPEG2, CRC32Q,
	CRC64ECMA, CRC64XZ,
}

// Names returns the names of all builtin algorithms.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, entry := range catalog {
		names = append(names, entryName(entry))
	}
	return names
}

// Lookup returns the builtin algorithm with the given name and register type.
// Names are matched case-insensitively.
func Lookup[T Word](name string) (*Params[T], error) {
	var widthMismatch bool
	for _, entry := range catalog {
		if !strings.EqualFold(entryName(entry), name) {
			continue
		}
		if p, ok := entry.(*Params[T]); ok {
			return p, nil
		}
		widthMismatch = true
	}
	if widthMismatch {
		return nil, fmt.Errorf("%w: %q has a different register width", ErrUnknownAlgorithm, name)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func entryName(entry any) string {
	switch p := entry.(type) {
	case *Params[uint8]:
		return p.Name
	case *Params[uint16]:
		return p.Name
	case *Params[uint32]:
		return p.Name
	case *Params[uint64]:
		return p.Name
	default:
		return ""
	}
}
