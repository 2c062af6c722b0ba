// In file: internal/chat/reader.go
package chat

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

type lineResult struct {
	text string
	err  error
}

// lineReader reads lines on its own goroutine so a blocked read can be
// abandoned when the context is cancelled.
type lineReader struct {
	lines chan lineResult
	done  chan struct{}
	once  sync.Once
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		lines: make(chan lineResult),
		done:  make(chan struct{}),
	}
	go lr.scan(r)
	return lr
}

// scan reads whole lines of any length; a final line without a newline is
// still delivered before io.EOF.
func (lr *lineReader) scan(r io.Reader) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" || err == nil {
			select {
			case lr.lines <- lineResult{text: strings.TrimRight(line, "\r\n")}:
			case <-lr.done:
				return
			}
		}
		if err != nil {
			select {
			case lr.lines <- lineResult{err: err}:
			case <-lr.done:
			}
			return
		}
	}
}

// Next blocks for the next line. It returns io.EOF at end of input and the
// context's error on cancellation.
func (lr *lineReader) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-lr.lines:
		return res.text, res.err
	}
}

// Close releases the scanning goroutine once its current read returns.
func (lr *lineReader) Close() {
	lr.once.Do(func() { close(lr.done) })
}
