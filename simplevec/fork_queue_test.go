package simplevec

import (
	"strconv"
	"strings"
	"testing"
)

func TestForkQueueReduce(t *testing.T) {
	for _, workers := range []int{1, 3, 8} {
		for _, grain := range []int{1, 5, 1000} {
			actual := newForkQueue[int](workers).Reduce(0, 777, grain, add[int], func(i int) int {
				return i * i
			})
			var expected int
			for i := 0; i < 777; i++ {
				expected += i * i
			}
			if actual != expected {
				t.Errorf("workers=%d grain=%d: expected %d but got %d", workers, grain,
					expected, actual)
			}
		}
	}
}

func TestForkQueueReduceOrder(t *testing.T) {
	// Leaves below two lanes are folded in order, so an associative but
	// non-commutative reduction must give the sequential result.
	concat := func(x, y string) string {
		return x + y
	}
	var expected strings.Builder
	for i := 0; i < 300; i++ {
		expected.WriteString(strconv.Itoa(i) + ",")
	}
	actual := newForkQueue[string](4).Reduce(0, 300, 3, concat, func(i int) string {
		return strconv.Itoa(i) + ","
	})
	if actual != expected.String() {
		t.Errorf("unexpected order: %s", actual)
	}
}
