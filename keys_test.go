package twoq_test

import (
	"math/rand"
	"strconv"

	"github.com/samber/lo"
)

func newZipfian(seed int64, s, v float64, size uint64) func() string {
	zipf := rand.NewZipf(rand.New(rand.NewSource(seed)), s, v, size)
	return func() string {
		return strconv.Itoa(int(zipf.Uint64()))
	}
}

func newKeys(next func() string, size int) []string {
	return lo.Times[string](size, func(_ int) string { return next() })
}
