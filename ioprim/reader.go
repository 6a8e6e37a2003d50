// Package ioprim provides the random-access read primitives shared by the
// bmff and ebml tree decoders: fixed-width big-endian fields, owned byte
// slices, single-byte peeks, and position/size queries over a file handle.
//
// There is no buffering layer by design (spec.md §4.1) — every call goes
// straight to the underlying io.ReadSeeker through a single shared
// bitio.Reader. BitReader exposes that same instance so ebml's VINT decoder
// can pull several bytes with bitio's deferred-error "Try" idiom and check
// for failure once, instead of after every byte.
package ioprim

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/icza/bitio"
)

// ErrIO is returned, wrapped with a reason, for any OS-level read/seek
// failure encountered by a primitive.
var ErrIO = errors.New("boxml: io error")

// ErrEOF is returned when a read runs off the end of the stream before
// satisfying its requested length, except where spec.md §4.1 allows a
// short terminal read (ReadSlice only).
var ErrEOF = errors.New("boxml: read past end of file")

// ErrFileNotFound is returned by OpenPath when the underlying path does not
// exist.
var ErrFileNotFound = errors.New("boxml: file not found")

// ErrFileEmpty is returned by OpenPath when the underlying file has zero
// length.
var ErrFileEmpty = errors.New("boxml: file is empty")

// Reader is a synchronous, single-threaded random-access reader over a file
// handle. It owns no cache beyond the file size queried once at Open.
type Reader struct {
	rs     io.ReadSeeker
	br     *bitio.Reader
	size   int64
	closer io.Closer
	closed bool
}

// Open wraps an already-open io.ReadSeeker, caching its size by seeking to
// the end and back. It mirrors the "open(handle) adopts an already-opened
// descriptor" form in spec.md §6.
func Open(rs io.ReadSeeker) (*Reader, error) {
	cur, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, errIO(err)
	}
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, errIO(err)
	}
	if _, err := rs.Seek(cur, io.SeekStart); err != nil {
		return nil, errIO(err)
	}
	return &Reader{rs: rs, br: bitio.NewReader(rs), size: size}, nil
}

// OpenPath opens path and wraps it, per spec.md §6's `open(path)` form. It
// fails with ErrFileNotFound if the path does not exist and ErrFileEmpty if
// the file has zero length.
func OpenPath(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, errIO(err)
	}
	r, err := Open(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	if r.size == 0 {
		f.Close()
		return nil, ErrFileEmpty
	}
	r.closer = f
	return r, nil
}

// Close is idempotent on an already-closed or handle-adopted Reader (the
// latter never owned its descriptor and has nothing to close).
func (r *Reader) Close() error {
	if r.closed || r.closer == nil {
		r.closed = true
		return nil
	}
	r.closed = true
	if err := r.closer.Close(); err != nil {
		return errIO(err)
	}
	return nil
}

func errIO(err error) error {
	return fmt.Errorf("%w: %v", ErrIO, err)
}

// Position returns the current read cursor.
func (r *Reader) Position() (int64, error) {
	pos, err := r.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, errIO(err)
	}
	return pos, nil
}

// SetPosition moves the read cursor to an absolute offset.
func (r *Reader) SetPosition(pos int64) error {
	if _, err := r.rs.Seek(pos, io.SeekStart); err != nil {
		return errIO(err)
	}
	return nil
}

// FileSize returns the cached total size of the underlying stream.
func (r *Reader) FileSize() int64 {
	return r.size
}

// ReadSlice reads n bytes. When the stream ends first (spec.md §4.1's
// "slight end-of-file allowance"), it returns the bytes that were available,
// possibly none, with no error; it never returns ErrEOF. The fixed-width
// readers below turn such a short result into ErrEOF.
func (r *Reader) ReadSlice(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	got, err := io.ReadFull(r.br, buf)
	if err == io.ErrUnexpectedEOF {
		return buf[:got], nil
	}
	if err == io.EOF {
		return buf[:0], nil
	}
	if err != nil {
		return nil, errIO(err)
	}
	return buf, nil
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (byte, error) {
	b, err := r.br.ReadByte()
	if err == io.EOF {
		return 0, ErrEOF
	}
	if err != nil {
		return 0, errIO(err)
	}
	return b, nil
}

// BitReader exposes the underlying bitio.Reader for callers that need its
// deferred-error Try idiom to pull several bytes before checking for
// failure once (ebml's VINT decoder, spec.md §4.2, is the one built for
// this). It shares this Reader's cursor: every read through it advances
// the same position SetPosition/Position observe, as long as the caller
// only performs whole-byte reads between calls to SetPosition.
func (r *Reader) BitReader() *bitio.Reader {
	return r.br
}

// PeekU8 reads a single byte and restores the cursor on success.
func (r *Reader) PeekU8() (byte, error) {
	pos, err := r.Position()
	if err != nil {
		return 0, err
	}
	b, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	if err := r.SetPosition(pos); err != nil {
		return 0, err
	}
	return b, nil
}

// ReadU16BE reads a big-endian uint16.
func (r *Reader) ReadU16BE() (uint16, error) {
	b, err := r.ReadSlice(2)
	if err != nil {
		return 0, err
	}
	if len(b) < 2 {
		return 0, ErrEOF
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadU24BE reads a big-endian 24-bit unsigned integer (the common BMFF
// FullBox flags width).
func (r *Reader) ReadU24BE() (uint32, error) {
	b, err := r.ReadSlice(3)
	if err != nil {
		return 0, err
	}
	if len(b) < 3 {
		return 0, ErrEOF
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

// ReadU32BE reads a big-endian uint32.
func (r *Reader) ReadU32BE() (uint32, error) {
	b, err := r.ReadSlice(4)
	if err != nil {
		return 0, err
	}
	if len(b) < 4 {
		return 0, ErrEOF
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadU64BE reads a big-endian uint64.
func (r *Reader) ReadU64BE() (uint64, error) {
	b, err := r.ReadSlice(8)
	if err != nil {
		return 0, err
	}
	if len(b) < 8 {
		return 0, ErrEOF
	}
	return binary.BigEndian.Uint64(b), nil
}

// PeekFixed32 reads a big-endian uint32 and restores the cursor on success.
func (r *Reader) PeekFixed32() (uint32, error) {
	pos, err := r.Position()
	if err != nil {
		return 0, err
	}
	v, err := r.ReadU32BE()
	if err != nil {
		return 0, err
	}
	if err := r.SetPosition(pos); err != nil {
		return 0, err
	}
	return v, nil
}

// ReadFloat32BE reads a big-endian IEEE-754 single.
func (r *Reader) ReadFloat32BE() (float32, error) {
	v, err := r.ReadU32BE()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64BE reads a big-endian IEEE-754 double.
func (r *Reader) ReadFloat64BE() (float64, error) {
	v, err := r.ReadU64BE()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// Skip advances the cursor by n bytes without reading, used for the "skip"
// operation spec.md §4.3 describes for payloads that are deliberately not
// interned.
func (r *Reader) Skip(n int64) error {
	if n == 0 {
		return nil
	}
	if _, err := r.rs.Seek(n, io.SeekCurrent); err != nil {
		return errIO(err)
	}
	return nil
}
