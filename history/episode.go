package history

import (
	"bufio"
	"encoding/base64"
	"time"

	"golang.org/x/crypto/sha3"
)

// NewEpisodeID generates an episode identifier for an episode that began on
// host at the given time, triggered by the named process.
func NewEpisodeID(host string, start time.Time, process string) string {
	var (
		hash = sha3.New224()
		w    = hashWriter{bufio.NewWriterSize(hash, hash.BlockSize())}
	)

	w.WriteString(host)
	w.WriteInt(start.UnixNano())
	w.WriteString(process)

	if err := w.Flush(); err != nil {
		panic(err)
	}

	var h [28]byte
	hash.Sum(h[:0])

	return base64.RawURLEncoding.EncodeToString(h[:])
}
