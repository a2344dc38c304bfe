package iogemini

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/errcode"
)

// ClientError is returned when the Gemini client cannot be created.
func ClientError(err error) error {
	msg := `Cannot create report generator

<em>How to fix:</em>
  1. Set GEMINI_API_KEY environment variable or report.api_key in config.yaml
  2. Use --no-report flag to skip the report`
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportClientError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot create gemini client: %w", fn.Name(), err),
	}
}
