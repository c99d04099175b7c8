// SPDX-License-Identifier: EPL-2.0

package csvlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/rfwave/cwgen/morse"
)

// Writer logs keying elements as CSV rows.
type Writer struct {
	w *csv.Writer
}

// NewWriter returns a Writer logging to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w)}
}

// WriteHeader writes the column header row.
func (w *Writer) WriteHeader() error {
	if err := w.w.Write([]string{"On", "Duration"}); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteElement writes one element row. The duration is rounded to whole
// milliseconds for this sink only.
func (w *Writer) WriteElement(elem morse.Element) error {
	row := []string{
		strconv.FormatBool(elem.Tone),
		strconv.Itoa(int(math.Round(elem.Millis))),
	}
	if err := w.w.Write(row); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Flush writes buffered rows to the underlying writer and reports any
// write error.
func (w *Writer) Flush() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteAll drains an element stream into w, header included. Any stream
// error aborts the log; a truncated log is preferable to one with
// substituted timings.
func WriteAll(w io.Writer, elems morse.ElementReader) error {
	cw := NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}

	buf := make([]morse.Element, 256)
	for {
		n, err := elems.ReadElements(buf)
		for _, elem := range buf[:n] {
			if werr := cw.WriteElement(elem); werr != nil {
				return werr
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	return cw.Flush()
}
