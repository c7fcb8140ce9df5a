// Package platform detects the CPU features and environment settings that
// influence which CRC strategy Auto resolves to.
//
// Detection runs once at package init via golang.org/x/sys/cpu. The
// CRCGO_STRATEGY environment variable may name a strategy ("bitwise",
// "table", "slice4", "slice8", "slice16", "accelerated") to pin the choice,
// which is useful when comparing strategies in CI.
package platform
