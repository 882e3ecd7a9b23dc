package tuitest

import (
	"bytes"
	"io"
	"regexp"
)

var (
	csiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	oscPattern = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)
)

func stripANSI(s string) string {
	s = oscPattern.ReplaceAllString(s, "")
	return csiPattern.ReplaceAllString(s, "")
}

// queries maps terminal queries a TUI may send on startup to canned
// answers, so programs that wait for a reply do not hang in the PTY.
var queries = []struct {
	ask    []byte
	answer []byte
}{
	{ask: []byte("\x1b[6n"), answer: []byte("\x1b[1;1R")},
	{ask: []byte("\x1b]11;?\x07"), answer: []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{ask: []byte("\x1b]11;?\x1b\\"), answer: []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
	{ask: []byte("\x1b]10;?\x07"), answer: []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
}

type responder struct {
	w    io.Writer
	tail []byte
}

func newResponder(w io.Writer) *responder {
	return &responder{w: w}
}

// scan answers every query found in chunk. A short tail of the previous
// chunk is kept so queries split across reads are still seen.
func (r *responder) scan(chunk []byte) {
	buf := append(r.tail, chunk...)
	for _, q := range queries {
		for {
			idx := bytes.Index(buf, q.ask)
			if idx < 0 {
				break
			}
			_, _ = r.w.Write(q.answer)
			buf = append(buf[:idx:idx], buf[idx+len(q.ask):]...)
		}
	}
	if len(buf) > 16 {
		buf = buf[len(buf)-16:]
	}
	r.tail = append([]byte(nil), buf...)
}
