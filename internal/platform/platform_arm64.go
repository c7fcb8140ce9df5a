//go:build arm64

package platform

import "golang.org/x/sys/cpu"

func init() {
	hasARMCRC32 = cpu.ARM64.HasCRC32
	initCapabilities()
}
