// Parse the resource directory records. Directories are read one after
// the other from a FieldReader, see walker.go for how they are chained.

package mui

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	RESOURCE_DIRECTORY_SIZE       = 16
	RESOURCE_DIRECTORY_ENTRY_SIZE = 8
	RESOURCE_DATA_ENTRY_SIZE      = 16

	RT_STRING       = 0x6
	RT_MESSAGETABLE = 0xb
)

var resource_type_names = map[uint32]string{
	1:  "RT_CURSOR",
	2:  "RT_BITMAP",
	3:  "RT_ICON",
	4:  "RT_MENU",
	5:  "RT_DIALOG",
	6:  "RT_STRING",
	7:  "RT_FONTDIR",
	8:  "RT_FONT",
	9:  "RT_ACCELERATOR",
	10: "RT_RCDATA",
	11: "RT_MESSAGETABLE",
	12: "RT_GROUP_CURSOR",
	14: "RT_GROUP_ICON",
	16: "RT_VERSION",
	17: "RT_DLGINCLUDE",
	19: "RT_PLUGPLAY",
	20: "RT_VXD",
	21: "RT_ANICURSOR",
	22: "RT_ANIICON",
	23: "RT_HTML",
	24: "RT_MANIFEST",
}

// 0x400      0x0   Characteristics:               0x0
// 0x404      0x4   TimeDateStamp:                 0x0
// 0x408      0x8   MajorVersion:                  0x4
// 0x40A      0xA   MinorVersion:                  0x0
// 0x40C      0xC   NumberOfNamedEntries:          0x1
// 0x40E      0xE   NumberOfIdEntries:             0x2
type ResourceDirectory struct {
	Characteristics      uint32
	TimeDateStamp        uint32
	MajorVersion         uint16
	MinorVersion         uint16
	NumberOfNamedEntries uint16
	NumberOfIdEntries    uint16

	FileOffset int64
	Entries    []*ResourceDirectoryEntry
}

func (self *ResourceDirectory) NumberOfEntries() int {
	return int(self.NumberOfNamedEntries) + int(self.NumberOfIdEntries)
}

// 0x410      0x0   Name:                          0x80000298
// 0x414      0x4   OffsetToData:                  0x80000028
type ResourceDirectoryEntry struct {
	Name         uint32
	OffsetToData uint32

	FileOffset int64
}

func (self *ResourceDirectoryEntry) NameIsString() bool {
	return self.Name&0x80000000 > 0
}

func (self *ResourceDirectoryEntry) DataIsDirectory() bool {
	return self.OffsetToData&0x80000000 > 0
}

func (self *ResourceDirectoryEntry) OffsetToDirectory() uint32 {
	return self.OffsetToData & 0x7fffffff
}

// Only meaningful for entries of the root (Type) directory.
func (self *ResourceDirectoryEntry) TypeName() string {
	if self.NameIsString() {
		return fmt.Sprintf("Name@%#x", self.Name&0x7fffffff)
	}

	name, pres := resource_type_names[self.Name]
	if pres {
		return name
	}
	return fmt.Sprintf("%d", self.Name)
}

func IsTargetType(id uint32) bool {
	return id == RT_STRING || id == RT_MESSAGETABLE
}

// ReadResourceDirectory reads a directory header and the entries
// immediately following it. The reader is left just past the last
// entry.
func ReadResourceDirectory(reader *FieldReader) (*ResourceDirectory, error) {
	result := &ResourceDirectory{FileOffset: reader.Tell()}

	var err error
	result.Characteristics, err = reader.Uint32()
	if err != nil {
		return nil, errors.Wrap(err, "IMAGE_RESOURCE_DIRECTORY")
	}

	result.TimeDateStamp, err = reader.Uint32()
	if err != nil {
		return nil, errors.Wrap(err, "IMAGE_RESOURCE_DIRECTORY")
	}

	result.MajorVersion, err = reader.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "IMAGE_RESOURCE_DIRECTORY")
	}

	result.MinorVersion, err = reader.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "IMAGE_RESOURCE_DIRECTORY")
	}

	result.NumberOfNamedEntries, err = reader.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "IMAGE_RESOURCE_DIRECTORY")
	}

	result.NumberOfIdEntries, err = reader.Uint16()
	if err != nil {
		return nil, errors.Wrap(err, "IMAGE_RESOURCE_DIRECTORY")
	}

	number_of_entries := result.NumberOfEntries()
	result.Entries = make([]*ResourceDirectoryEntry, 0, number_of_entries)
	for i := 0; i < number_of_entries; i++ {
		entry, err := ReadResourceDirectoryEntry(reader)
		if err != nil {
			return nil, errors.Wrapf(err,
				"entry %d of directory at %#x", i, result.FileOffset)
		}
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

func ReadResourceDirectoryEntry(reader *FieldReader) (*ResourceDirectoryEntry, error) {
	result := &ResourceDirectoryEntry{FileOffset: reader.Tell()}

	var err error
	result.Name, err = reader.Uint32()
	if err != nil {
		return nil, errors.Wrap(err, "IMAGE_RESOURCE_DIRECTORY_ENTRY")
	}

	result.OffsetToData, err = reader.Uint32()
	if err != nil {
		return nil, errors.Wrap(err, "IMAGE_RESOURCE_DIRECTORY_ENTRY")
	}

	return result, nil
}
