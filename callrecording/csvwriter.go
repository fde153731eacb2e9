package callrecording

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVWriter is a writer that stores call records in a CSV file.
type CSVWriter struct {
	path string
	file *os.File

	recordsToWrite []Record
	bufferSize     int
}

// NewCSVWriter creates a new CSVWriter. Call Init before the first Write.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the CSV file and writes the header row.
func (w *CSVWriter) Init() {
	if w.path == "" {
		w.path = "trigger_calls_" + xid.New().String()
	}

	filename := w.path + ".csv"
	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	w.file = file

	fmt.Fprintf(file, "ID, Target, Placement, Args, Kwargs, Result, Error\n")

	atexit.Register(func() {
		w.Flush()
	})
}

// Write buffers a record. The buffer is flushed once it reaches the buffer
// size.
func (w *CSVWriter) Write(r Record) {
	w.recordsToWrite = append(w.recordsToWrite, r)
	if len(w.recordsToWrite) >= w.bufferSize {
		w.Flush()
	}
}

// Flush writes all the buffered records to the file.
func (w *CSVWriter) Flush() {
	for _, r := range w.recordsToWrite {
		fmt.Fprintf(w.file, "%s, %s, %s, %q, %q, %q, %q\n",
			r.ID,
			r.Target,
			r.Placement,
			r.Args,
			r.Kwargs,
			r.Result,
			r.Error,
		)
	}

	w.recordsToWrite = nil
}
