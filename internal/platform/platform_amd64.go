//go:build amd64

package platform

import "golang.org/x/sys/cpu"

func init() {
	hasSSE42 = cpu.X86.HasSSE42
	hasPCLMULQDQ = cpu.X86.HasPCLMULQDQ
	initCapabilities()
}
