package cmd

import (
	"fmt"
	"io"
	"sync"
)

// noticeBoard holds messages from background work until the goroutine
// that owns the output prints them
type noticeBoard struct {
	mu   sync.Mutex
	msgs []string
}

var notices = &noticeBoard{}

func (n *noticeBoard) post(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func (n *noticeBoard) drain() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	msgs := n.msgs
	n.msgs = nil
	return msgs
}

// printNotices writes and clears every waiting message
func printNotices(out io.Writer) {
	for _, msg := range notices.drain() {
		fmt.Fprintln(out, msg)
	}
}
