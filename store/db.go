package store

// DB is the database storage interface.
type DB interface {
	// GetState returns the saved countdown state, or nil if there is none
	GetState() ([]byte, error)
	// UpdateState saves the countdown state, overwriting any previous value
	UpdateState(value []byte) error
	// Close ends the database connection
	Close() error
}

// Backend identifies a DB implementation.
type Backend string

const (
	BackendBolt   Backend = "bolt"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// New opens the DB for the given backend at path. The path is ignored by the
// memory backend.
func New(backend Backend, path string) (DB, error) {
	var (
		db  DB
		err error
	)

	switch backend {
	case BackendBolt, "":
		db, err = NewClient(path)
	case BackendSQLite:
		db, err = NewSQLite(path)
	case BackendMemory:
		db = NewMemory()
	default:
		err = errUnknownBackend.Fmt(backend)
	}

	if err != nil {
		return nil, err
	}

	return db, nil
}
