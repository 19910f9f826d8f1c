// Package loc parses the line-level change log (one row per line per commit)
package loc

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	perr "folio/internal/platform/errors"
)

// Columns is the canonical column order written by the generator
var Columns = []string{
	"commit", "file", "line", "depth", "length",
	"date", "time", "timezone", "author", "datetime", "type",
}

// required columns; type is optional and falls back to the file extension
var required = []string{
	"commit", "file", "line", "depth", "length",
	"date", "time", "timezone", "author", "datetime",
}

// LineRecord is one line of code as of one commit. Immutable once parsed
type LineRecord struct {
	Commit   string    `json:"commit"`
	File     string    `json:"file"`
	Line     int       `json:"line"`
	Depth    int       `json:"depth"`
	Length   int       `json:"length"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time"`
	Timezone string    `json:"timezone"`
	Author   string    `json:"author"`
	Datetime time.Time `json:"datetime"`
	Type     string    `json:"type"`
}

// Kind returns the record's file-type category, derived from the extension when the log has none
func (r LineRecord) Kind() string {
	if r.Type != "" {
		return r.Type
	}
	return KindOf(r.File)
}

// KindOf maps a path to its extension-derived category
func KindOf(file string) string {
	ext := strings.TrimPrefix(path.Ext(file), ".")
	if ext == "" {
		return "other"
	}
	return strings.ToLower(ext)
}

// Parse reads a header row followed by records. Any malformed row fails the whole parse
func Parse(r io.Reader) ([]LineRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, perr.InvalidArgf("loc: empty input, header row required")
		}
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "loc: read header")
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, perr.WithField(perr.InvalidArgf("loc: missing column %q", col), col)
		}
	}

	var out []LineRecord
	row := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "loc: row %d", row)
		}
		lr, err := parseRow(rec, idx)
		if err != nil {
			wrapped := perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "loc: row %d", row)
			if pe, ok := perr.As(err); ok {
				wrapped = perr.WithField(wrapped, pe.Field())
			}
			return nil, perr.WithOp(wrapped, "loc.row."+strconv.Itoa(row))
		}
		out = append(out, lr)
	}
	return out, nil
}

func parseRow(rec []string, idx map[string]int) (LineRecord, error) {
	get := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	num := func(col string) (int, error) {
		v := get(col)
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, perr.WithField(perr.InvalidArgf("loc: column %s: %q is not a number", col, v), col)
		}
		return n, nil
	}

	var (
		lr  LineRecord
		err error
	)
	lr.Commit = get("commit")
	if lr.Commit == "" {
		return lr, perr.WithField(perr.InvalidArgf("loc: empty commit id"), "commit")
	}
	lr.File = get("file")
	lr.Author = get("author")
	lr.Time = get("time")
	lr.Timezone = get("timezone")
	lr.Type = get("type")

	if lr.Line, err = num("line"); err != nil {
		return lr, err
	}
	if lr.Depth, err = num("depth"); err != nil {
		return lr, err
	}
	if lr.Length, err = num("length"); err != nil {
		return lr, err
	}
	if lr.Date, err = ParseDate(get("date"), lr.Timezone); err != nil {
		return lr, err
	}
	if lr.Datetime, err = ParseDatetime(get("datetime")); err != nil {
		return lr, err
	}
	return lr, nil
}

// ParseDate builds author-local midnight from a YYYY-MM-DD date and a ±HH:MM offset
func ParseDate(date, tz string) (time.Time, error) {
	t, err := time.Parse("2006-01-02T15:04Z07:00", date+"T00:00"+tz)
	if err != nil {
		return time.Time{}, perr.WithField(perr.InvalidArgf("loc: invalid date %q with timezone %q", date, tz), "date")
	}
	return t, nil
}

var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05Z07:00",
}

// ParseDatetime accepts ISO 8601 timestamps with an explicit offset
func ParseDatetime(s string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, perr.WithField(perr.InvalidArgf("loc: invalid datetime %q", s), "datetime")
}

// Write emits records in the canonical column order
func Write(w io.Writer, records []LineRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Commit,
			r.File,
			strconv.Itoa(r.Line),
			strconv.Itoa(r.Depth),
			strconv.Itoa(r.Length),
			r.Date.Format("2006-01-02"),
			r.Time,
			r.Timezone,
			r.Author,
			r.Datetime.Format("2006-01-02T15:04:05.000Z07:00"),
			r.Type,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Opener opens a named source for reading
type Opener interface {
	Open(ctx context.Context, src string) (io.ReadCloser, error)
}

// Load opens src through o and parses it
func Load(ctx context.Context, o Opener, src string) ([]LineRecord, error) {
	rc, err := o.Open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Parse(rc)
}
