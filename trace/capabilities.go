package trace

import "golang.org/x/sys/cpu"

// Capabilities is a snapshot of host CPU features relevant to AES, taken
// once at process start. It is informational only: this package's block
// transform is table-based and portable, and never branches on it. Callers
// who need hardware-accelerated AES in a hostile (cache-timing-sensitive)
// environment should look elsewhere; Capabilities just lets an Observer say
// so in a log line.
type Capabilities struct {
	HasAESNI     bool // x86/amd64 AES-NI instruction set.
	HasARMCrypto bool // ARMv8 Cryptography Extensions.
}

var capabilities = Capabilities{
	HasAESNI:     cpu.X86.HasAES,
	HasARMCrypto: cpu.ARM64.HasAES,
}

// DetectCapabilities returns the process-lifetime capability snapshot.
func DetectCapabilities() Capabilities {
	return capabilities
}
