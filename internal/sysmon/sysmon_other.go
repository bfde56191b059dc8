//go:build !unix

package sysmon

import "errors"

// ErrUnsupported is returned on platforms without getrusage.
var ErrUnsupported = errors.New("process CPU accounting is not supported on this platform")

// ProcessCPU is not available on this platform.
func ProcessCPU() (CPUUsage, error) {
	return CPUUsage{}, ErrUnsupported
}
