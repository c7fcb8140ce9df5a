// Package width provides the register-width policy shared by every CRC engine.
//
// A Policy captures the constants that differ between 8, 16, 32 and 64-bit
// registers (bit count, top-byte shift, masks) together with the bit-reversal
// and rotation helpers. Engines and the table builder never hard-code a width;
// they ask the policy instead, so shift-direction logic lives in one place.
//
//	p := width.Of[uint16]()
//	p.Bits            // 16
//	p.TopByte(0xABCD) // 0xAB
//	p.Reverse(0x8005) // 0xA001
package width
