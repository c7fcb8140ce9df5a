package platform

import (
	"os"
	"runtime"
	"strings"
)

// EnvStrategy names the environment variable that overrides the strategy
// chosen for Auto.
const EnvStrategy = "CRCGO_STRATEGY"

// Package-level state, initialized once from the platform-specific init.
var (
	// override holds the normalized value of CRCGO_STRATEGY, if set.
	override string

	// CPU feature flags (set by platform-specific init)
	hasSSE42     bool // x86-64 SSE4.2 (CRC32 instruction, Castagnoli only)
	hasPCLMULQDQ bool // x86-64 carry-less multiply (folding for any polynomial)
	hasARMCRC32  bool // ARM64 CRC32 extension
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	override = strings.ToLower(strings.TrimSpace(os.Getenv(EnvStrategy)))
}

// Override returns the strategy name requested through CRCGO_STRATEGY.
func Override() (string, bool) {
	return override, override != ""
}

// HasCRC32 reports whether the CPU has instructions that accelerate
// 32-bit reflected CRCs.
func HasCRC32() bool {
	switch runtime.GOARCH {
	case "amd64":
		return hasSSE42 && hasPCLMULQDQ
	case "arm64":
		return hasARMCRC32
	default:
		return false
	}
}

// Features returns the detected CPU features relevant to CRC computation.
func Features() []string {
	var out []string
	if hasSSE42 {
		out = append(out, "sse4.2")
	}
	if hasPCLMULQDQ {
		out = append(out, "pclmulqdq")
	}
	if hasARMCRC32 {
		out = append(out, "crc32")
	}
	return out
}
