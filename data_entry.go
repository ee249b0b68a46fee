package mui

import (
	"github.com/pkg/errors"
)

// 0x5D8      0x0   OffsetToData:                  0x22A0
// 0x5DC      0x4   Size:                          0xB0
// 0x5E0      0x8   CodePage:                      0x4E4
// 0x5E4      0xC   Reserved:                      0x0
type ResourceDataEntry struct {
	OffsetToData uint32
	Size         uint32
	CodePage     uint32
	Reserved     uint32

	FileOffset int64
}

func ReadResourceDataEntry(reader *FieldReader) (*ResourceDataEntry, error) {
	result := &ResourceDataEntry{FileOffset: reader.Tell()}

	fields := []*uint32{
		&result.OffsetToData, &result.Size,
		&result.CodePage, &result.Reserved,
	}
	for _, field := range fields {
		value, err := reader.Uint32()
		if err != nil {
			return nil, errors.Wrap(err, "IMAGE_RESOURCE_DATA_ENTRY")
		}
		*field = value
	}

	return result, nil
}

// ReadDataEntries passes over the first Skip data entries without
// decoding them and parses the next Read entries.
func ReadDataEntries(
	reader *FieldReader, leaf_range LeafRange) ([]*ResourceDataEntry, error) {
	result := make([]*ResourceDataEntry, 0, leaf_range.Read)

	for i := 0; i < leaf_range.Total(); i++ {
		if i < leaf_range.Skip {
			reader.Skip(RESOURCE_DATA_ENTRY_SIZE)
			continue
		}

		data_entry, err := ReadResourceDataEntry(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "data entry %d", i)
		}
		result = append(result, data_entry)
	}

	return result, nil
}

// Data resolves the start and the end of the payload separately and
// returns the bytes between them.
func (self *ResourceDataEntry) Data(
	buffer []byte, rva_resolver *RVAResolver) ([]byte, error) {
	start_rva := uint64(self.OffsetToData)
	start, err := rva_resolver.GetFileAddress(start_rva)
	if err != nil {
		return nil, err
	}

	end_rva := start_rva + uint64(self.Size)
	end, err := rva_resolver.GetFileAddress(end_rva)
	if err != nil {
		return nil, err
	}

	data, err := NewFieldReader(buffer, 0).Slice(start, end)
	if err != nil {
		return nil, errors.Wrapf(err, "data entry at %#x", self.FileOffset)
	}
	return data, nil
}
