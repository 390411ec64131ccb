// Package textio reads byte streams one line at a time.
//
// All three end-of-line conventions are recognized: LF (Unix), CRLF (DOS)
// and lone CR (classic Mac). Files are opened in binary mode; compressed
// files are transparently decompressed based on their extension.
//
// The reader keeps one byte of lookahead, so one byte beyond every returned
// line has always been consumed from the underlying stream. That makes it
// unsuitable for interactive or pipe-like sources where that extra read
// would block or steal input.
package textio

import (
	"bufio"
	"compress/bzip2"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	log "github.com/sirupsen/logrus"
	"github.com/ulikunitz/xz"

	"github.com/strayfield/textbase"
	"github.com/strayfield/textbase/textenc"
)

// Lookahead sentinel for end of stream, distinct from every byte value.
const endOfStream = -1

// Most text lines fit this without the accumulation buffer ever growing.
const initialLineCapacity = 10_000

// Reader turns a byte stream into normalized lines.
//
// A Reader holds per-instance state only and no internal locking; confine
// each instance to one goroutine at a time.
type Reader struct {
	name      string
	in        *bufio.Reader
	lookahead int
	buf       []byte // accumulation buffer, grows but its capacity is reused

	closeStream func() // set by Open, nil for NewReader
}

// Open opens path for line-by-line reading, in binary mode. Paths ending in
// .gz, .zst, .xz or .bz2 are decompressed on the fly. Failure to open or to
// recognize the compressed header is a *textbase.ResourceError.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &textbase.ResourceError{Path: path, Err: err}
	}

	stream, closeStream, err := maybeDecompress(path, file)
	if err != nil {
		closeQuietly(path, file)
		return nil, &textbase.ResourceError{Path: path, Err: err}
	}

	reader := newReader(path, stream)
	reader.closeStream = closeStream
	return reader, nil
}

// NewReader reads lines from an in-memory or otherwise already-open stream.
// The caller keeps ownership of the stream; Close on the returned Reader is
// a no-op.
func NewReader(stream io.Reader) *Reader {
	return newReader("<stream>", stream)
}

func newReader(name string, stream io.Reader) *Reader {
	reader := &Reader{
		name: name,
		in:   bufio.NewReader(stream),
		buf:  make([]byte, 0, initialLineCapacity),
	}
	reader.lookahead = reader.read()
	return reader
}

// HasMore reports whether another line can be read.
func (r *Reader) HasMore() bool {
	return r.lookahead != endOfStream
}

// NextLine returns the next line, end-of-line sequence excluded. LF, CR and
// CRLF each end a line; CRLF counts as a single break. Calling NextLine when
// HasMore is false is a *textbase.LogicError.
//
// A line is a maximal run of bytes between line breaks, so the last line of
// a stream without a trailing newline is still returned.
func (r *Reader) NextLine() (string, error) {
	if r.lookahead == endOfStream {
		return "", &textbase.LogicError{Op: "NextLine", Detail: "attempted to read past end of " + r.name}
	}

	for r.lookahead != endOfStream && r.lookahead != '\n' && r.lookahead != '\r' {
		r.buf = append(r.buf, byte(r.getch()))
	}
	if r.lookahead != endOfStream && r.getch() == '\r' && r.lookahead == '\n' {
		r.getch() // CRLF collapses into one line break
	}

	line := string(r.buf)
	r.buf = r.buf[:0]
	return line, nil
}

// NextLineWide is NextLine with the bytes interpreted as UTF-8 and widened
// to UTF-16 code units.
func (r *Reader) NextLineWide() (textenc.WideString, error) {
	line, err := r.NextLine()
	if err != nil {
		return nil, err
	}
	return textenc.ToWide(line)
}

// Close releases the underlying stream if this Reader owns one. Close
// failures are logged and otherwise ignored; nothing can be done about them
// at teardown.
func (r *Reader) Close() {
	if r.closeStream != nil {
		r.closeStream()
		r.closeStream = nil
	}
}

// getch consumes the lookahead and refills it, returning what was consumed.
func (r *Reader) getch() int {
	previous := r.lookahead
	r.lookahead = r.read()
	return previous
}

// read returns the next byte, or endOfStream when the stream is done. The
// line-at-a-time API has no good place to surface mid-stream read errors,
// so those end the stream too, with a warning.
func (r *Reader) read() int {
	b, err := r.in.ReadByte()
	if err != nil {
		if err != io.EOF {
			log.Warnf("Reading %s failed, treating as end of stream: %v", r.name, err)
		}
		return endOfStream
	}
	return int(b)
}

// maybeDecompress wraps file according to path's extension. The returned
// func closes the decompressor (if any) and the file, quietly.
func maybeDecompress(path string, file *os.File) (io.Reader, func(), error) {
	closeFile := func() { closeQuietly(path, file) }

	switch {
	case strings.HasSuffix(path, ".gz"):
		z, err := gzip.NewReader(file)
		if err != nil {
			return nil, nil, err
		}
		return z, func() { closeQuietly(path, z); closeFile() }, nil

	case strings.HasSuffix(path, ".zst"):
		z, err := zstd.NewReader(file)
		if err != nil {
			return nil, nil, err
		}
		return z, func() { z.Close(); closeFile() }, nil

	case strings.HasSuffix(path, ".xz"):
		z, err := xz.NewReader(file)
		if err != nil {
			return nil, nil, err
		}
		return z, closeFile, nil

	case strings.HasSuffix(path, ".bz2"):
		return bzip2.NewReader(file), closeFile, nil
	}

	return file, closeFile, nil
}

func closeQuietly(path string, closer io.Closer) {
	if err := closer.Close(); err != nil {
		log.Warnf("Closing %s failed: %v", path, err)
	}
}
