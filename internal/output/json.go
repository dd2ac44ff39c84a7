package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// JSONWriter writes JSON output: a single object for one report, an array
// otherwise.
type JSONWriter struct {
	w       *bufio.Writer
	pretty  bool
	indent  string
	reports []*Report
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, pretty bool, indent string) *JSONWriter {
	return &JSONWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
		indent: indent,
	}
}

// Write buffers a report.
func (w *JSONWriter) Write(report *Report) error {
	w.reports = append(w.reports, report)
	return nil
}

// Flush writes the buffered reports and clears the buffer.
func (w *JSONWriter) Flush() error {
	if len(w.reports) == 0 {
		return w.w.Flush()
	}

	var data any = w.reports
	if len(w.reports) == 1 {
		data = w.reports[0]
	}

	var out []byte
	var err error
	if w.pretty {
		out, err = json.MarshalIndent(data, "", w.indent)
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		return err
	}

	w.reports = nil
	if _, err := w.w.Write(append(out, '\n')); err != nil {
		return err
	}
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONWriter) Close() error {
	return w.Flush()
}

// JSONLWriter writes newline-delimited JSON (JSONL).
type JSONLWriter struct {
	enc *json.Encoder
	w   *bufio.Writer
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	bw := bufio.NewWriter(w)
	return &JSONLWriter{
		enc: json.NewEncoder(bw),
		w:   bw,
	}
}

// Write writes a report as a single JSON line.
func (w *JSONLWriter) Write(report *Report) error {
	if err := w.enc.Encode(report); err != nil {
		return err
	}
	return w.w.Flush()
}

// Flush flushes the buffer.
func (w *JSONLWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONLWriter) Close() error {
	return w.Flush()
}
