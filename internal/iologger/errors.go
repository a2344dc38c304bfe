package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/errcode"
)

// CreateLogFileError is returned when the log directory or the log file
// cannot be created.
func CreateLogFileError(path string, err error) error {
	msg := `Cannot create log file <em>%s</em>

<em>How to fix:</em>
  Set log.destination to 'stderr' in config.yaml or GNFLORA_LOG_DESTINATION`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create log file %s: %w",
			fn.Name(), path, err),
	}
}
