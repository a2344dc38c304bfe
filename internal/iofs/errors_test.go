package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		path string
		text string
	}{
		{
			msg:  "create dir",
			err:  CreateDirError("/home/botanist/.cache/gnflora", cause),
			code: errcode.CreateDirError,
			path: "/home/botanist/.cache/gnflora",
			text: "cannot create directory",
		},
		{
			msg:  "copy config",
			err:  CopyFileError("/home/botanist/.config/gnflora/config.yaml", cause),
			code: errcode.CopyFileError,
			path: "/home/botanist/.config/gnflora/config.yaml",
			text: "cannot write config",
		},
		{
			msg:  "read file",
			err:  ReadFileError("specimen.txt", cause),
			code: errcode.ReadFileError,
			path: "specimen.txt",
			text: "cannot read specimen.txt",
		},
	}

	for _, v := range tests {
		var gnErr *gn.Error
		require.True(t, errors.As(v.err, &gnErr), v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Contains(t, gnErr.Msg, "<em>%s</em>", v.msg)
		assert.Equal(t, []any{v.path}, gnErr.Vars, v.msg)
		assert.ErrorIs(t, gnErr.Err, cause, v.msg)
		assert.Contains(t, gnErr.Err.Error(), v.text, v.msg)
		// caller of the constructor is recorded
		assert.Contains(t, gnErr.Err.Error(), "TestErrors", v.msg)
	}
}
