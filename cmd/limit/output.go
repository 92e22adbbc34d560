package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bellande/limit"
	"github.com/tidwall/pretty"
)

// writeResult prints a successful result. API responses are indented unless
// raw is set; executable output is printed as produced. A trailing newline is
// added when missing.
func writeResult(w io.Writer, res limit.Result, raw bool) error {
	data := res.Data
	if res.Format == limit.FormatJSON && !raw {
		data = pretty.Pretty(data)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if len(data) == 0 || !bytes.HasSuffix(data, []byte("\n")) {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}
