package app

import (
	"io"
)

// streamWriter lets cobra print help and usage through the session stream.
type streamWriter struct {
	target io.StringWriter
}

func (it streamWriter) Write(blob []byte) (int, error) {
	return it.target.WriteString(string(blob))
}
