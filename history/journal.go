package history

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/boltdb/bolt"
	"github.com/scjalliance/procwatch/monitor"
)

const (
	// RootBucket is the name of the root bolt bucket in which the journal
	// stores data.
	RootBucket = "procwatch"
	// TransitionBucket is the name of the transition bucket.
	TransitionBucket = "transitions"
)

// Journal is a bolt-backed transition journal. It implements
// monitor.Recorder.
type Journal struct {
	db   *bolt.DB
	root []byte
	host string

	mutex   sync.Mutex
	episode string
}

// Open opens the journal at path, creating it if necessary.
func Open(path string) (*Journal, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("unable to open history database \"%s\": %w", path, err)
	}
	return New(db), nil
}

// New returns a journal backed by db.
func New(db *bolt.DB) *Journal {
	host, _ := os.Hostname()
	return &Journal{
		db:   db,
		root: []byte(RootBucket),
		host: host,
	}
}

// Close releases any resources consumed by the journal.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record journals a transition and the reactions it caused.
func (j *Journal) Record(r monitor.Record) error {
	t := r.Transition

	j.mutex.Lock()
	if j.episode == "" && r.States.Any() {
		j.episode = NewEpisodeID(j.host, t.Time, t.Process.Name)
	}
	episode := j.episode
	if !r.States.Any() {
		j.episode = ""
	}
	j.mutex.Unlock()

	entry := Entry{
		Time:    t.Time,
		Process: t.Process.Name,
		Running: t.Running,
		Episode: episode,
	}
	for _, fired := range r.Outcome.Fired {
		entry.Reactions = append(entry.Reactions, fired.String())
	}
	for _, err := range r.Outcome.Errors {
		entry.Errors = append(entry.Errors, err.Error())
	}

	return j.Append(entry)
}

// Append adds an entry to the journal.
func (j *Journal) Append(entry Entry) error {
	value, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return j.db.Update(func(btx *bolt.Tx) error {
		root, err := btx.CreateBucketIfNotExists(j.root)
		if err != nil {
			return err
		}

		container, err := root.CreateBucketIfNotExists([]byte(TransitionBucket))
		if err != nil {
			return err
		}

		seq, err := container.NextSequence()
		if err != nil {
			return err
		}

		return container.Put(itob(seq), value)
	})
}

// Recent returns up to n of the most recent entries, oldest first.
func (j *Journal) Recent(n int) (entries []Entry, err error) {
	if n <= 0 {
		return nil, nil
	}

	err = j.db.View(func(btx *bolt.Tx) error {
		container := j.container(btx)
		if container == nil {
			return nil
		}

		c := container.Cursor()
		for k, v := c.Last(); k != nil && len(entries) < n; k, v = c.Prev() {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("corrupt history entry %d: %w", btoi(k), err)
			}
			entry.Seq = btoi(k)
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reverse into chronological order
	for i, k := 0, len(entries)-1; i < k; i, k = i+1, k-1 {
		entries[i], entries[k] = entries[k], entries[i]
	}
	return entries, nil
}

// Prune removes entries recorded before the given time. It returns the
// number of entries removed.
func (j *Journal) Prune(before time.Time) (removed int, err error) {
	err = j.db.Update(func(btx *bolt.Tx) error {
		container := j.container(btx)
		if container == nil {
			return nil
		}

		var stale [][]byte
		c := container.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil || entry.Time.Before(before) {
				stale = append(stale, append([]byte(nil), k...))
			}
		}

		for _, k := range stale {
			if err := container.Delete(k); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	})
	return
}

func (j *Journal) container(btx *bolt.Tx) *bolt.Bucket {
	root := btx.Bucket(j.root)
	if root == nil {
		return nil
	}
	return root.Bucket([]byte(TransitionBucket))
}

var _ monitor.Recorder = (*Journal)(nil)

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func btoi(b []byte) uint64 {
	if len(b) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}
