package ioreference

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnfmt/gncsv"
	csvcfg "github.com/gnames/gnfmt/gncsv/config"
	"github.com/gnames/gnlib"
	"github.com/gnames/gnsys"
)

// table is a tab-separated Darwin Core file read into memory.
type table struct {
	path string
	tsv  gncsv.Reader
	rows [][]string
}

// readTable reads a tab-separated file with a header row. Fields are not
// quoted in Darwin Core text files, so quotes are kept as data. A row with
// a wrong number of fields is a format error.
func readTable(path string) (*table, error) {
	exists, err := gnsys.FileExists(path)
	if err != nil {
		return nil, ReadError(path, err)
	}
	if !exists {
		return nil, FileNotFoundError(path, errors.New("no such file"))
	}

	cfg, err := csvcfg.New(
		csvcfg.OptPath(path),
		csvcfg.OptColSep('\t'),
		csvcfg.OptWithQuotes(false),
		csvcfg.OptBadRowMode(gnfmt.ErrorBadRow),
	)
	if errors.Is(err, csvcfg.ErrEmptyFirstLine) {
		return nil, FormatError(path, errors.New("file is empty"))
	}
	if err != nil {
		return nil, FormatError(path, err)
	}
	headers := make([]string, len(cfg.Headers))
	for i, v := range cfg.Headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(v, "\ufeff"))
	}
	cfg.Headers = headers

	res := &table{path: path, tsv: gncsv.NewTSV(cfg)}
	res.rows, err = res.tsv.ReadSlice(0, 0)
	if err != nil {
		return nil, FormatError(path, err)
	}
	return res, nil
}

// requireColumns checks that the header has the given fields.
func (t *table) requireColumns(fields ...string) error {
	for _, f := range fields {
		var found bool
		for _, v := range t.tsv.Headers() {
			if strings.EqualFold(v, f) {
				found = true
				break
			}
		}
		if !found {
			return FormatError(t.path, fmt.Errorf("missing column '%s'", f))
		}
	}
	return nil
}

// field returns a trimmed value of a named field with text repaired to
// valid UTF-8.
func (t *table) field(row []string, name string) string {
	return clean(t.tsv.F(row, name))
}

func clean(s string) string {
	return strings.TrimSpace(gnlib.FixUtf8(s))
}
