package tokenizer

import "io"

// ByteSource is the byte-level collaborator the input stream pulls
// from. It has the same shape as io.ByteReader on purpose: any
// bufio.Reader, bytes.Reader, or strings.Reader already satisfies it.
type ByteSource interface {
	ReadByte() (byte, error)
}

// InputItem is one code point pulled off the input stream, or the EOF
// sentinel.
type InputItem struct {
	CodePoint rune
	EOF       bool
	Offset    uint64
}

// InputStream turns a raw byte source into a lazy, pushback-capable
// sequence of Unicode code points with CR/CRLF/LF newline
// normalization and UTF-8 decoding.
//
// Items pushed back with Reconsume/ReconsumeAll sit on an explicit
// pushback stack, and Next drains that stack before reading from the
// byte source. The tokenizer uses it to replay a run of characters it
// has already consumed: the lookahead in markupDeclarationOpen and
// afterDoctypeName, and the named-character-reference resolver
// (charref.go), which returns an unmatched trailing run to the stream
// in one shot. A plain "reconsume in state X" does not use the stack:
// Tokenizer.Step dispatches the same item again under the new state.
type InputStream struct {
	src              ByteSource
	sink             ErrorSink
	bytesRead        uint64
	pendingCRSwallow bool
	pendingByte      *byte
	items            []InputItem
	eofEmitted       bool
	err              error
}

// NewInputStream wraps src. A nil sink discards parse errors (there is
// exactly one recoverable error this component can raise: InvalidUTF8).
func NewInputStream(src ByteSource, sink ErrorSink) *InputStream {
	if sink == nil {
		sink = discardErrorSink{}
	}
	return &InputStream{src: src, sink: sink}
}

// Err returns the fatal ByteSourceFailure encountered while reading,
// if any. Checked by the tokenizer after driving the stream to EOF.
func (s *InputStream) Err() error {
	return s.err
}

// Reconsume pushes an item back so the next call to Next returns it
// again. Items pushed back are returned in LIFO order.
func (s *InputStream) Reconsume(item InputItem) {
	s.items = append(s.items, item)
}

// ReconsumeAll pushes back a run of items so they are replayed in
// their original order by subsequent Next calls — used by the
// "replay" scenarios in markupDeclarationOpen and afterDoctypeName
// (incorrectly-opened comment, invalid after-doctype-name sequence)
// and by the named-character reference resolver's overshoot handling.
func (s *InputStream) ReconsumeAll(items []InputItem) {
	for i := len(items) - 1; i >= 0; i-- {
		s.Reconsume(items[i])
	}
}

// Next returns the next code point, or the EOF sentinel once the byte
// source is drained. After EOF, subsequent calls keep returning EOF.
func (s *InputStream) Next() InputItem {
	if n := len(s.items); n > 0 {
		it := s.items[n-1]
		s.items = s.items[:n-1]
		return it
	}
	if s.eofEmitted || s.err != nil {
		return InputItem{EOF: true, Offset: s.bytesRead}
	}

	cp, eof, err := s.readCodePoint()
	if err != nil {
		s.err = errByteSource(err)
		s.eofEmitted = true
		return InputItem{EOF: true, Offset: s.bytesRead}
	}
	if eof {
		s.eofEmitted = true
		return InputItem{EOF: true, Offset: s.bytesRead}
	}
	return InputItem{CodePoint: cp, Offset: s.bytesRead}
}

func (s *InputStream) readRawByte() (b byte, eof bool, err error) {
	if s.pendingByte != nil {
		b = *s.pendingByte
		s.pendingByte = nil
		return b, false, nil
	}
	b, err = s.src.ReadByte()
	if err == io.EOF {
		return 0, true, nil
	}
	if err != nil {
		return 0, false, err
	}
	s.bytesRead++
	return b, false, nil
}

func (s *InputStream) unreadRawByte(b byte) {
	s.pendingByte = &b
}

// readCodePoint applies CR/CRLF -> LF normalization, then UTF-8
// decodes whatever remains.
func (s *InputStream) readCodePoint() (rune, bool, error) {
	for {
		b, eof, err := s.readRawByte()
		if eof {
			return 0, true, nil
		}
		if err != nil {
			return 0, false, err
		}

		switch {
		case b == '\r':
			s.pendingCRSwallow = true
			return '\n', false, nil
		case b == '\n':
			if s.pendingCRSwallow {
				s.pendingCRSwallow = false
				continue
			}
			return '\n', false, nil
		case b < 0x80:
			s.pendingCRSwallow = false
			return rune(b), false, nil
		default:
			s.pendingCRSwallow = false
			return s.decodeUTF8(b)
		}
	}
}

// decodeUTF8 decodes a multi-byte UTF-8 sequence starting with the
// already-consumed lead byte b. Malformed sequences are reported as
// InvalidUTF8 and replaced by U+FFFD.
func (s *InputStream) decodeUTF8(b byte) (rune, bool, error) {
	var size int
	var r rune
	var min rune

	switch {
	case b >= 0xC2 && b <= 0xDF:
		size, r, min = 1, rune(b&0x1F), 0x80
	case b >= 0xE0 && b <= 0xEF:
		size, r, min = 2, rune(b&0x0F), 0x800
	case b >= 0xF0 && b <= 0xF4:
		size, r, min = 3, rune(b&0x07), 0x10000
	default:
		s.reportInvalidUTF8()
		return 0xFFFD, false, nil
	}

	consumed := make([]byte, 0, size)
	for i := 0; i < size; i++ {
		cb, eof, err := s.readRawByte()
		if err != nil {
			return 0, false, err
		}
		if eof || cb < 0x80 || cb > 0xBF {
			if !eof {
				s.unreadRawByte(cb)
			}
			s.reportInvalidUTF8()
			return 0xFFFD, false, nil
		}
		consumed = append(consumed, cb)
		r = r<<6 | rune(cb&0x3F)
	}

	if r < min || r > 0x10FFFF || isSurrogate(int(r)) {
		s.reportInvalidUTF8()
		return 0xFFFD, false, nil
	}
	return r, false, nil
}

func (s *InputStream) reportInvalidUTF8() {
	s.sink.AcceptError(InvalidUTF8, s.bytesRead)
}
