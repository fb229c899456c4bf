//go:build arm64

package simplevec

import "golang.org/x/sys/cpu"

func init() {
	if cpu.ARM64.HasASIMD {
		laneWidth = 4
	} else {
		laneWidth = 2
	}
}
