package mui

import (
	"bytes"
	"debug/pe"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Exported API

type MUIFile struct {
	buffer []byte

	// Used to resolve RVA to file offsets.
	rva_resolver *RVAResolver

	// The file offset to the resource directory.
	resource_base int64

	walker TreeWalker

	Is64Bit       bool       `json:"is_64_bit"`
	FileAlignment uint32     `json:"file_alignment"`
	Sections      []*Section `json:"sections"`
}

// NewMUIFile checks the PE container and locates the resource
// directory. The resource tree itself is only read by the accessors.
func NewMUIFile(buffer []byte) (*MUIFile, error) {
	pe_file, err := pe.NewFile(bytes.NewReader(buffer))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPE, err.Error())
	}

	optional_header := GetOptionalHeaderInfo(pe_file)
	if optional_header == nil {
		return nil, ErrNoOptionalHeader
	}

	if optional_header.ResourceDirectory == nil {
		return nil, ErrNoResourceDirectory
	}

	rva_resolver := NewRVAResolver(
		pe_file.Sections, optional_header.FileAlignment)

	resource_base, err := rva_resolver.GetFileAddress(
		uint64(optional_header.ResourceDirectory.VirtualAddress))
	if err != nil {
		return nil, errors.Wrap(err, "resource directory")
	}

	result := &MUIFile{
		buffer:        buffer,
		rva_resolver:  rva_resolver,
		resource_base: resource_base,
		walker:        DefaultWalker,
		Is64Bit:       optional_header.Is64Bit,
		FileAlignment: optional_header.FileAlignment,
	}

	for _, section := range pe_file.Sections {
		result.Sections = append(result.Sections, NewSection(section))
	}

	DebugPrint("Resource directory at %#x\n", resource_base)

	return result, nil
}

func NewMUIFileFromReader(reader io.ReaderAt, size int64) (*MUIFile, error) {
	buffer, err := ReadAll(reader, size)
	if err != nil {
		return nil, err
	}
	return NewMUIFile(buffer)
}

func (self *MUIFile) SetWalker(walker TreeWalker) {
	self.walker = walker
}

func (self *MUIFile) ResourceBase() int64 {
	return self.resource_base
}

func (self *MUIFile) ResourceTree() (*ResourceTree, error) {
	return self.walker(NewFieldReader(self.buffer, self.resource_base))
}

// Strings returns the text of all string and message table data
// entries, concatenated in data entry order.
func (self *MUIFile) Strings() (string, error) {
	tree, err := self.ResourceTree()
	if err != nil {
		return "", err
	}

	// This will not work as intended if there is both a string
	// table and a message table in the file and they are not right
	// next to each other.
	reader := NewFieldReader(self.buffer, tree.DataEntryOffset)
	data_entries, err := ReadDataEntries(reader, tree.LeafRange())
	if err != nil {
		return "", err
	}

	result := strings.Builder{}
	for _, data_entry := range data_entries {
		data, err := data_entry.Data(self.buffer, self.rva_resolver)
		if err != nil {
			return "", err
		}
		result.WriteString(ParseStrings(data))
	}

	return result.String(), nil
}

// Messages parses every message table in the file into individual
// messages. Unlike Strings() each table's data entries are located
// separately.
func (self *MUIFile) Messages() ([]*Message, error) {
	tree, err := self.ResourceTree()
	if err != nil {
		return nil, err
	}

	result := []*Message{}
	for _, idx := range tree.TargetIndexes {
		if tree.Root.Entries[idx].Name != RT_MESSAGETABLE {
			continue
		}

		reader := NewFieldReader(self.buffer, tree.DataEntryOffset)
		data_entries, err := ReadDataEntries(
			reader, LocateType(tree.NameDirectories, idx))
		if err != nil {
			return nil, err
		}

		for _, data_entry := range data_entries {
			data, err := data_entry.Data(self.buffer, self.rva_resolver)
			if err != nil {
				return nil, err
			}

			messages, err := ParseMessages(data)
			if err != nil {
				return nil, errors.Wrapf(err,
					"message table at %#x", data_entry.FileOffset)
			}
			result = append(result, messages...)
		}
	}

	return result, nil
}

// GetStrings extracts the string and message table text from a MUI
// file held in memory.
func GetStrings(buffer []byte) (string, error) {
	mui_file, err := NewMUIFile(buffer)
	if err != nil {
		return "", err
	}
	return mui_file.Strings()
}
