package history

import (
	"bufio"
	"encoding/binary"
)

type hashWriter struct {
	*bufio.Writer
}

func (w hashWriter) WriteInt(v int64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	w.Write(buf[:])
}

func (w hashWriter) WriteString(s string) {
	w.WriteInt(int64(len(s)))
	w.Writer.WriteString(s)
}
