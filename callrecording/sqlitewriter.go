package callrecording

import (
	"database/sql"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// SQLiteWriter is a writer that stores call records in a SQLite database.
type SQLiteWriter struct {
	*sql.DB
	statement *sql.Stmt

	dbName         string
	recordsToWrite []Record
	batchSize      int
}

// NewSQLiteWriter creates a new SQLiteWriter. Call Init before the first
// Write.
func NewSQLiteWriter(path string) *SQLiteWriter {
	w := &SQLiteWriter{
		dbName:    path,
		batchSize: 1000,
	}

	atexit.Register(func() { w.Flush() })

	return w
}

// Init establishes a connection to the database and creates the calls table.
func (w *SQLiteWriter) Init() {
	w.createDatabase()
	w.createTable()
	w.prepareStatement()
}

func (w *SQLiteWriter) createDatabase() {
	if w.dbName == "" {
		w.dbName = "trigger_calls_" + xid.New().String()
	}

	filename := w.dbName + ".sqlite3"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	w.DB = db
}

func (w *SQLiteWriter) createTable() {
	createTableSQL := `CREATE TABLE calls (
	id TEXT,
	target TEXT,
	placement TEXT,
	args TEXT,
	kwargs TEXT,
	result TEXT,
	error TEXT
);`
	w.mustExecute(createTableSQL)
}

func (w *SQLiteWriter) prepareStatement() {
	insertSQL := `INSERT INTO calls (
	id, target, placement, args, kwargs, result, error
) VALUES (?, ?, ?, ?, ?, ?, ?)`

	statement, err := w.Prepare(insertSQL)
	if err != nil {
		panic(err)
	}

	w.statement = statement
}

// Write buffers a record. The buffer is flushed once it reaches the batch
// size.
func (w *SQLiteWriter) Write(r Record) {
	w.recordsToWrite = append(w.recordsToWrite, r)
	if len(w.recordsToWrite) >= w.batchSize {
		w.Flush()
	}
}

// Flush writes all the buffered records to the database.
func (w *SQLiteWriter) Flush() {
	if len(w.recordsToWrite) == 0 {
		return
	}

	w.mustExecute("BEGIN TRANSACTION")
	defer w.mustExecute("COMMIT TRANSACTION")

	for _, r := range w.recordsToWrite {
		_, err := w.statement.Exec(
			r.ID,
			r.Target,
			r.Placement,
			r.Args,
			r.Kwargs,
			r.Result,
			r.Error,
		)
		if err != nil {
			panic(err)
		}
	}

	w.recordsToWrite = nil
}

func (w *SQLiteWriter) mustExecute(query string) sql.Result {
	res, err := w.Exec(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error executing %s\n", query)
		panic(err)
	}

	return res
}
