package mui

import (
	"io"

	"github.com/pkg/errors"
)

// ReadAll copies the first size bytes of the reader into memory. The
// parser always works on the full file buffer.
func ReadAll(reader io.ReaderAt, size int64) ([]byte, error) {
	if size < 0 {
		return nil, errors.Errorf("Invalid file size %d", size)
	}

	buffer := make([]byte, size)
	_, err := io.ReadFull(io.NewSectionReader(reader, 0, size), buffer)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	return buffer, nil
}

func CapUint32(v uint32, max uint32) uint32 {
	if v > max {
		return max
	}
	return v
}

func CapInt64(v int64, max int64) int64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
