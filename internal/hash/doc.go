// Package hash wraps hardware-accelerated CRC-32 implementations.
//
// The accelerated backend covers the three reflected 32-bit polynomials that
// github.com/klauspost/crc32 ships optimized kernels for:
//
//   - IEEE (0x04C11DB7): Ethernet, zlib, PNG
//   - Castagnoli (0x1EDC6F41): iSCSI, Btrfs, RocksDB, LevelDB
//   - Koopman (0x741B8CD7)
//
// The library uses SSE4.2 and PCLMULQDQ on x86-64 and the CRC32 extension on
// ARM64, and falls back to slicing-by-8 in software elsewhere.
//
// # Usage
//
//	tab := hash.Table(hash.Castagnoli)
//	crc := hash.Update(0xFFFFFFFF, tab, data) ^ 0xFFFFFFFF
//
// Update works on the raw register, so any initial value and output XOR can
// be layered on top.
package hash
