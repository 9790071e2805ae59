package memory

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"

	"github.com/hupe1980/panelmesh/core"
	"github.com/hupe1980/panelmesh/logging"
)

// record is the durable line format: one independently parseable JSON object
// per line with an ISO-8601 UTC timestamp.
type record struct {
	Timestamp string `json:"timestamp"`
	Q         string `json:"q"`
	A         string `json:"a"`
}

// JSONLStoreOptions configure a JSONLStore.
type JSONLStoreOptions struct {
	Logger logging.Logger
}

// JSONLStore is an append-only MemoryStore backed by a JSON-lines file. The
// file is opened lazily on every operation, so a store can be constructed
// before the file exists. Appends are serialized with an advisory file lock
// (one append = one newline-terminated line), allowing multiple sessions or
// processes to share one memory file.
type JSONLStore struct {
	path   string
	lock   *flock.Flock
	logger logging.Logger
}

var _ core.MemoryStore = (*JSONLStore)(nil)

// NewJSONLStore creates a store persisting to the given file path.
func NewJSONLStore(path string, optFns ...func(o *JSONLStoreOptions)) *JSONLStore {
	opts := JSONLStoreOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &JSONLStore{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logging.OrNoOp(opts.Logger),
	}
}

// Append serializes a timestamped record and writes it to the end of the
// file. The caller decides whether a write failure matters; the panel
// orchestrator logs it and carries on since the user already has an answer.
func (s *JSONLStore) Append(question, answer string) error {
	rec := record{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Q:         question,
		A:         answer,
	}
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal memory record: %w", err)
	}

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock memory file: %w", err)
	}
	defer func() {
		if uerr := s.lock.Unlock(); uerr != nil {
			s.logger.Warn("memory file unlock failed", "path", s.path, "error", uerr)
		}
	}()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open memory file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append memory record: %w", err)
	}
	return nil
}

// Recall reads every persisted record and ranks it against the query by word
// overlap. Unparseable lines are skipped. A missing file is an empty result,
// not an error.
func (s *JSONLStore) Recall(query string, limit int) ([]core.QA, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open memory file: %w", err)
	}
	defer f.Close()

	var records []core.QA
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			s.logger.Debug("skipping unparseable memory line", "path", s.path)
			continue
		}
		records = append(records, core.QA{Question: rec.Q, Answer: rec.A})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read memory file: %w", err)
	}

	return rank(records, query, limit), nil
}
