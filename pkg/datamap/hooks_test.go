package datamap_test

import (
	"fmt"
	"github.com/skybi/datamap/pkg/datamap"
)

// recorder records every hook invocation as "<op>:<key>"
type recorder struct {
	datamap.NopHooks[string, int]
	calls []string
}

func (rec *recorder) OnGet(key string, _ datamap.Storage[string, int]) {
	rec.calls = append(rec.calls, "get:"+key)
}

func (rec *recorder) OnSet(key string, value, previous int, existed bool, _ datamap.Storage[string, int]) {
	rec.calls = append(rec.calls, fmt.Sprintf("set:%s=%d(prev=%d,%t)", key, value, previous, existed))
}

func (rec *recorder) OnDelete(key string, _ datamap.Storage[string, int]) {
	rec.calls = append(rec.calls, "delete:"+key)
}

func (rec *recorder) OnClear(data datamap.Storage[string, int]) {
	rec.calls = append(rec.calls, fmt.Sprintf("clear:%d", data.Value().Len()))
}

func (rec *recorder) count(prefix string) int {
	n := 0
	for _, call := range rec.calls {
		if len(call) >= len(prefix) && call[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}
