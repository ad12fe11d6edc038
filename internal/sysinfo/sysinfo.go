// Package sysinfo describes the machine a benchmark ran on, so timings in
// a report can be compared only with timings from similar hardware.
package sysinfo

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features returns the vector extensions of the current CPU as a
// comma-separated list, e.g. "sse4.1,avx2". It returns "none" when no
// listed extension is present.
func Features() string {
	var f []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasSSE41 {
			f = append(f, "sse4.1")
		}
		if cpu.X86.HasAVX2 {
			f = append(f, "avx2")
		}
		if cpu.X86.HasAVX512F {
			f = append(f, "avx512f")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			f = append(f, "asimd")
		}
		if cpu.ARM64.HasSVE {
			f = append(f, "sve")
		}
	}
	if len(f) == 0 {
		return "none"
	}
	return strings.Join(f, ",")
}

// Platform returns GOOS/GOARCH followed by the CPU features.
func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH + " (" + Features() + ")"
}
