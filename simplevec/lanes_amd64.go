//go:build amd64

package simplevec

import "golang.org/x/sys/cpu"

func init() {
	if cpu.X86.HasAVX512F {
		laneWidth = 8
	} else if cpu.X86.HasAVX2 {
		laneWidth = 4
	} else {
		laneWidth = 2
	}
}
