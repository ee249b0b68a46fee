package mui

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrFieldRead           = errors.New("Field read out of bounds")
	ErrNoOptionalHeader    = errors.New("No Optional Header in PE")
	ErrNoResourceDirectory = errors.New("No Resource Data Directory in PE")
	ErrOffset              = errors.New("Error finding offset")
	ErrDataRange           = errors.New("Data entry outside of file")
	ErrInvalidPE           = errors.New("Invalid PE file")
)

// OffsetError reports an RVA that is not contained in any section.
type OffsetError struct {
	RVA uint64
}

func (self *OffsetError) Error() string {
	return fmt.Sprintf("Error finding offset at: %#x", self.RVA)
}

func (self *OffsetError) Is(target error) bool {
	return target == ErrOffset
}
