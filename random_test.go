package twoq

import (
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

type modelEntry struct {
	key   string
	value int
}

// model is a slice backed 2Q used as a reference for Policy.
// Index 0 of each slice is the front of its queue.
type model struct {
	in, out, main          []modelEntry
	inCap, outCap, mainCap int
}

func indexOf(q []modelEntry, key string) int {
	for i, e := range q {
		if e.key == key {
			return i
		}
	}
	return -1
}

func removeAt(q []modelEntry, i int) []modelEntry {
	res := make([]modelEntry, 0, len(q))
	res = append(res, q[:i]...)
	return append(res, q[i+1:]...)
}

func prepend(q []modelEntry, capacity int, e modelEntry) []modelEntry {
	if capacity == 0 {
		return q
	}
	if len(q) >= capacity {
		q = q[:len(q)-1]
	}
	return append([]modelEntry{e}, q...)
}

func (m *model) get(key string) (int, bool) {
	if i := indexOf(m.main, key); i >= 0 {
		e := m.main[i]
		m.main = prepend(removeAt(m.main, i), m.mainCap, e)
		return e.value, true
	}
	if i := indexOf(m.out, key); i >= 0 {
		e := m.out[i]
		m.out = removeAt(m.out, i)
		m.main = prepend(m.main, m.mainCap, e)
		return e.value, true
	}
	if i := indexOf(m.in, key); i >= 0 {
		return m.in[i].value, true
	}
	return 0, false
}

func (m *model) set(key string, value int) {
	e := modelEntry{key: key, value: value}
	if i := indexOf(m.main, key); i >= 0 {
		m.main = prepend(removeAt(m.main, i), m.mainCap, e)
		return
	}
	if i := indexOf(m.out, key); i >= 0 {
		m.out = removeAt(m.out, i)
		m.main = prepend(m.main, m.mainCap, e)
		return
	}
	if i := indexOf(m.in, key); i >= 0 {
		m.in[i].value = value
		return
	}
	if m.inCap == 0 {
		m.out = prepend(m.out, m.outCap, e)
		return
	}
	if len(m.in) >= m.inCap {
		last := m.in[len(m.in)-1]
		m.in = m.in[:len(m.in)-1]
		m.out = prepend(m.out, m.outCap, last)
	}
	m.in = prepend(m.in, m.inCap, e)
}

func modelKeys(q []modelEntry) []string {
	return lo.Map[modelEntry, string](q, func(e modelEntry, _ int) string { return e.key })
}

func requireConsistent(t *testing.T, p *Policy[string, int]) {
	t.Helper()

	require.LessOrEqual(t, p.in.Len(), p.in.Cap())
	require.LessOrEqual(t, p.out.Len(), p.out.Cap())
	require.LessOrEqual(t, p.main.Len(), p.main.Cap())
	require.Equal(t, p.in.Len()+p.out.Len()+p.main.Len(), p.Size())

	all := append(append(append([]string{}, p.in.Keys()...), p.out.Keys()...), p.main.Keys()...)
	require.Len(t, lo.Uniq[string](all), len(all), "a key is in more than one queue")
}

func TestPolicy_RandomOps(t *testing.T) {
	capacities := [][3]int{
		{2, 4, 2},
		{1, 1, 1},
		{0, 2, 2},
		{3, 0, 3},
		{3, 3, 0},
		{4, 8, 16},
	}

	for _, c := range capacities {
		c := c
		t.Run(fmt.Sprintf("%d/%d/%d", c[0], c[1], c[2]), func(t *testing.T) {
			t.Parallel()

			p, err := New[string, int](c[0], c[1], c[2])
			require.NoError(t, err)
			m := &model{inCap: c[0], outCap: c[1], mainCap: c[2]}

			r := rand.New(rand.NewSource(int64(c[0]*100 + c[1]*10 + c[2])))
			for i := 0; i < 20000; i++ {
				key := strconv.Itoa(r.Intn(20))
				if r.Intn(2) == 0 {
					p.Set(key, i)
					m.set(key, i)
				} else {
					v, ok := p.Get(key)
					mv, mok := m.get(key)
					require.Equal(t, mok, ok, "op %d: get %s", i, key)
					require.Equal(t, mv, v, "op %d: get %s", i, key)
				}

				requireConsistent(t, p)
				require.Equal(t, modelKeys(m.in), p.in.Keys(), "op %d: in queue", i)
				require.Equal(t, modelKeys(m.out), p.out.Keys(), "op %d: out queue", i)
				require.Equal(t, modelKeys(m.main), p.main.Keys(), "op %d: main queue", i)
			}
		})
	}
}

func TestPolicy_GetAfterSet(t *testing.T) {
	p, err := New[string, int](4, 8, 4)
	require.NoError(t, err)

	last := make(map[string]int)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		key := strconv.Itoa(r.Intn(64))
		if r.Intn(3) == 0 {
			p.Set(key, i)
			last[key] = i

			v, ok := p.Get(key)
			require.True(t, ok, "key %s must survive its own set", key)
			require.Equal(t, i, v)
			continue
		}

		if v, ok := p.Get(key); ok {
			require.Equal(t, last[key], v, "stale value for key %s", key)
		}
		requireConsistent(t, p)
	}
}
