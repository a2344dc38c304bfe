package ioreference

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/errcode"
)

// FileNotFoundError is returned when a reference file does not exist.
func FileNotFoundError(path string, err error) error {
	msg := `Reference file <em>%s</em> not found

<em>How to fix:</em>
  1. Download and unpack the e-Flora Darwin Core archive
  2. Set reference.dir in config.yaml or use --reference-dir flag`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReferenceFileNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: reference file not found: %w",
			fn.Name(), err),
	}
}

// ReadError is returned when a reference file cannot be read.
func ReadError(path string, err error) error {
	msg := "Cannot read reference file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReferenceReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

// FormatError is returned when a reference file has a missing column or a
// malformed row. No partial index is built in this case.
func FormatError(path string, err error) error {
	msg := "Malformed reference file <em>%s</em>: %s"
	vars := []any{path, err.Error()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReferenceFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: malformed %s: %w", fn.Name(), path, err),
	}
}
