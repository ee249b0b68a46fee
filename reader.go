package mui

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// A FieldReader walks an in memory buffer reading little endian
// fields. Each read advances the cursor by the width of the field. A
// read which would run past the end of the buffer fails and leaves the
// cursor where it was.
type FieldReader struct {
	buffer []byte
	offset int64
}

func NewFieldReader(buffer []byte, offset int64) *FieldReader {
	return &FieldReader{
		buffer: buffer,
		offset: offset,
	}
}

func (self *FieldReader) Tell() int64 {
	return self.offset
}

func (self *FieldReader) Seek(offset int64) {
	self.offset = offset
}

// Skip moves the cursor forward without checking the buffer. Bounds
// are enforced by the next read.
func (self *FieldReader) Skip(length int64) {
	self.offset += length
}

func (self *FieldReader) Len() int64 {
	return int64(len(self.buffer))
}

func (self *FieldReader) field(width int64) ([]byte, error) {
	if self.offset < 0 || self.offset+width > int64(len(self.buffer)) {
		return nil, errors.Wrapf(ErrFieldRead,
			"reading %d bytes at %#x (buffer length %#x)",
			width, self.offset, len(self.buffer))
	}
	data := self.buffer[self.offset : self.offset+width]
	self.offset += width
	return data, nil
}

func (self *FieldReader) Uint16() (uint16, error) {
	data, err := self.field(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data), nil
}

func (self *FieldReader) Uint32() (uint32, error) {
	data, err := self.field(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// Slice returns buffer[start:end] without moving the cursor.
func (self *FieldReader) Slice(start, end int64) ([]byte, error) {
	if start < 0 || end < start || end > int64(len(self.buffer)) {
		return nil, errors.Wrapf(ErrDataRange,
			"range %#x-%#x (buffer length %#x)",
			start, end, len(self.buffer))
	}
	return self.buffer[start:end], nil
}
