package iocache

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/errcode"
)

func OpenError(backend string, err error) error {
	msg := `Cannot open <em>%s</em> occurrence cache

<em>How to fix:</em>
  1. Check cache settings in config.yaml
  2. Use the 'memory' backend`
	vars := []any{backend}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CacheOpenError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open %s cache: %w",
			fn.Name(), backend, err),
	}
}

func ReadError(key string, err error) error {
	msg := "Cannot read cached occurrences for <em>%s</em>"
	vars := []any{key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CacheReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read cache: %w", fn.Name(), err),
	}
}

func WriteError(key string, err error) error {
	msg := "Cannot cache occurrences for <em>%s</em>"
	vars := []any{key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CacheWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write cache: %w", fn.Name(), err),
	}
}
