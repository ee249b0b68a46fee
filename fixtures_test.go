package mui

import (
	"bytes"
	"debug/pe"
	"encoding/binary"
	"unicode/utf16"
)

const (
	testSectionRVA    = 0x1000
	testSectionOffset = 0x200
	testFileAlignment = 0x200
	testLanguage      = 1033
)

type testResourceType struct {
	Id uint32

	// One Name entry (with one Language entry) per payload.
	Payloads [][]byte
}

type testImage struct {
	Types         []testResourceType
	TimeDateStamp uint32

	Is64Bit             bool
	NoOptionalHeader    bool
	NoResourceDirectory bool

	// Overrides the resource data directory RVA when set.
	ResourceRVA uint32
}

type testResourceDirectory struct {
	Characteristics      uint32
	TimeDateStamp        uint32
	MajorVersion         uint16
	MinorVersion         uint16
	NumberOfNamedEntries uint16
	NumberOfIdEntries    uint16
}

type testResourceDirectoryEntry struct {
	Name         uint32
	OffsetToData uint32
}

type testResourceDataEntry struct {
	OffsetToData uint32
	Size         uint32
	CodePage     uint32
	Reserved     uint32
}

type testMessage struct {
	Text    string
	Unicode bool
}

func alignUp(value, alignment int) int {
	return (value + alignment - 1) / alignment * alignment
}

func write(buf *bytes.Buffer, data interface{}) {
	err := binary.Write(buf, binary.LittleEndian, data)
	if err != nil {
		panic(err)
	}
}

func padTo(buf *bytes.Buffer, offset int) {
	if buf.Len() < offset {
		buf.Write(make([]byte, offset-buf.Len()))
	}
}

// encodeStrings builds a string block: each string is a u16 length
// followed by its UTF-16 code units.
func encodeStrings(strs ...string) []byte {
	units := []uint16{}
	for _, s := range strs {
		encoded := utf16.Encode([]rune(s))
		units = append(units, uint16(len(encoded)))
		units = append(units, encoded...)
	}
	return encodeUnits(units...)
}

func encodeUnits(units ...uint16) []byte {
	buf := &bytes.Buffer{}
	write(buf, units)
	return buf.Bytes()
}

// encodeMessageTable builds a MESSAGE_RESOURCE_DATA with a single
// block of consecutive ids starting at low_id.
func encodeMessageTable(low_id uint32, messages ...testMessage) []byte {
	entries := &bytes.Buffer{}
	for _, message := range messages {
		var text []byte
		flags := uint16(MESSAGE_ANSI)
		if message.Unicode {
			flags = MESSAGE_UNICODE
			text = encodeUnits(utf16.Encode([]rune(message.Text + "\x00"))...)
		} else {
			text = append([]byte(message.Text), 0)
		}
		padded := alignUp(len(text), 4)
		text = append(text, make([]byte, padded-len(text))...)

		write(entries, uint16(MESSAGE_RESOURCE_ENTRY_SIZE+len(text)))
		write(entries, flags)
		entries.Write(text)
	}

	buf := &bytes.Buffer{}
	write(buf, uint32(1))
	write(buf, []uint32{
		low_id, low_id + uint32(len(messages)) - 1,
		4 + MESSAGE_RESOURCE_BLOCK_SIZE,
	})
	buf.Write(entries.Bytes())

	return buf.Bytes()
}

// buildResourceSection lays the tree out the way the resource
// compiler does for MUI files: the Type directory, all Name
// directories, all Language directories, the data entries and finally
// the payloads.
func buildResourceSection(
	section_rva uint32, timestamp uint32, types []testResourceType) []byte {
	number_of_payloads := 0
	for _, resource_type := range types {
		number_of_payloads += len(resource_type.Payloads)
	}

	name_offsets := []int{}
	offset := RESOURCE_DIRECTORY_SIZE + RESOURCE_DIRECTORY_ENTRY_SIZE*len(types)
	for _, resource_type := range types {
		name_offsets = append(name_offsets, offset)
		offset += RESOURCE_DIRECTORY_SIZE +
			RESOURCE_DIRECTORY_ENTRY_SIZE*len(resource_type.Payloads)
	}

	lang_start := offset
	lang_size := RESOURCE_DIRECTORY_SIZE + RESOURCE_DIRECTORY_ENTRY_SIZE
	data_entry_start := lang_start + lang_size*number_of_payloads

	payload_offsets := []int{}
	offset = data_entry_start + RESOURCE_DATA_ENTRY_SIZE*number_of_payloads
	for _, resource_type := range types {
		for _, payload := range resource_type.Payloads {
			payload_offsets = append(payload_offsets, offset)
			offset = alignUp(offset+len(payload), 4)
		}
	}

	buf := &bytes.Buffer{}

	// Type directory
	write(buf, testResourceDirectory{
		TimeDateStamp:     timestamp,
		MajorVersion:      4,
		NumberOfIdEntries: uint16(len(types)),
	})
	for i, resource_type := range types {
		write(buf, testResourceDirectoryEntry{
			Name:         resource_type.Id,
			OffsetToData: 0x80000000 | uint32(name_offsets[i]),
		})
	}

	// Name directories
	leaf := 0
	for _, resource_type := range types {
		write(buf, testResourceDirectory{
			TimeDateStamp:     timestamp,
			MajorVersion:      4,
			NumberOfIdEntries: uint16(len(resource_type.Payloads)),
		})
		for j := range resource_type.Payloads {
			write(buf, testResourceDirectoryEntry{
				Name:         uint32(j + 1),
				OffsetToData: 0x80000000 | uint32(lang_start+lang_size*leaf),
			})
			leaf++
		}
	}

	// Language directories
	for i := 0; i < number_of_payloads; i++ {
		write(buf, testResourceDirectory{
			TimeDateStamp:     timestamp,
			MajorVersion:      4,
			NumberOfIdEntries: 1,
		})
		write(buf, testResourceDirectoryEntry{
			Name:         testLanguage,
			OffsetToData: uint32(data_entry_start + RESOURCE_DATA_ENTRY_SIZE*i),
		})
	}

	// Data entries
	leaf = 0
	for _, resource_type := range types {
		for _, payload := range resource_type.Payloads {
			write(buf, testResourceDataEntry{
				OffsetToData: section_rva + uint32(payload_offsets[leaf]),
				Size:         uint32(len(payload)),
				CodePage:     1252,
			})
			leaf++
		}
	}

	leaf = 0
	for _, resource_type := range types {
		for _, payload := range resource_type.Payloads {
			padTo(buf, payload_offsets[leaf])
			buf.Write(payload)
			leaf++
		}
	}

	return buf.Bytes()
}

// Build writes a PE image with a single .rsrc section at file offset
// 0x200 mapped at RVA 0x1000.
func (self testImage) Build() []byte {
	rsrc := buildResourceSection(testSectionRVA, self.TimeDateStamp, self.Types)

	// Leave slack after the last payload so its end RVA is still
	// inside the section.
	raw_size := alignUp(len(rsrc), testFileAlignment) + testFileAlignment

	resource_dir := pe.DataDirectory{
		VirtualAddress: testSectionRVA,
		Size:           uint32(len(rsrc)),
	}
	if self.ResourceRVA != 0 {
		resource_dir.VirtualAddress = self.ResourceRVA
	}
	if self.NoResourceDirectory {
		resource_dir = pe.DataDirectory{}
	}

	var optional_header interface{}
	machine := uint16(pe.IMAGE_FILE_MACHINE_I386)

	switch {
	case self.NoOptionalHeader:

	case self.Is64Bit:
		header := &pe.OptionalHeader64{
			Magic:               0x20b,
			ImageBase:           0x180000000,
			SectionAlignment:    0x1000,
			FileAlignment:       testFileAlignment,
			SizeOfImage:         uint32(testSectionRVA + alignUp(raw_size, 0x1000)),
			SizeOfHeaders:       testSectionOffset,
			Subsystem:           2,
			NumberOfRvaAndSizes: 16,
		}
		header.DataDirectory[IMAGE_DIRECTORY_ENTRY_RESOURCE] = resource_dir
		optional_header = header
		machine = pe.IMAGE_FILE_MACHINE_AMD64

	default:
		header := &pe.OptionalHeader32{
			Magic:               0x10b,
			ImageBase:           0x10000000,
			SectionAlignment:    0x1000,
			FileAlignment:       testFileAlignment,
			SizeOfImage:         uint32(testSectionRVA + alignUp(raw_size, 0x1000)),
			SizeOfHeaders:       testSectionOffset,
			Subsystem:           2,
			NumberOfRvaAndSizes: 16,
		}
		header.DataDirectory[IMAGE_DIRECTORY_ENTRY_RESOURCE] = resource_dir
		optional_header = header
	}

	size_of_optional_header := 0
	if optional_header != nil {
		size_of_optional_header = binary.Size(optional_header)
	}

	buf := &bytes.Buffer{}

	dos_header := make([]byte, 0x40)
	copy(dos_header, "MZ")
	binary.LittleEndian.PutUint32(dos_header[0x3c:], 0x40)
	buf.Write(dos_header)
	buf.Write([]byte{'P', 'E', 0, 0})

	write(buf, pe.FileHeader{
		Machine:              machine,
		NumberOfSections:     1,
		SizeOfOptionalHeader: uint16(size_of_optional_header),
		Characteristics:      0x2102,
	})

	if optional_header != nil {
		write(buf, optional_header)
	}

	section := pe.SectionHeader32{
		VirtualSize:      uint32(raw_size),
		VirtualAddress:   testSectionRVA,
		SizeOfRawData:    uint32(raw_size),
		PointerToRawData: testSectionOffset,
		Characteristics:  0x40000040,
	}
	copy(section.Name[:], ".rsrc")
	write(buf, section)

	padTo(buf, testSectionOffset)
	buf.Write(rsrc)
	padTo(buf, testSectionOffset+raw_size)

	return buf.Bytes()
}
