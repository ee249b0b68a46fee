package mui

import (
	"debug/pe"
)

const (
	IMAGE_DIRECTORY_ENTRY_RESOURCE = 2
)

type Section struct {
	Perm       string `json:"perm"`
	Name       string `json:"name"`
	FileOffset int64  `json:"file_offset"`
	VMA        int64  `json:"vma"`
	Size       int64  `json:"size"`
}

func NewSection(section *pe.Section) *Section {
	return &Section{
		Perm:       Permissions(section.Characteristics),
		Name:       section.Name,
		FileOffset: int64(section.Offset),
		VMA:        int64(section.VirtualAddress),
		Size:       int64(section.Size),
	}
}

func Permissions(characteristics uint32) string {
	result := ""
	if characteristics&0x20000000 > 0 {
		result += "x"
	} else {
		result += "-"
	}

	if characteristics&0x40000000 > 0 {
		result += "r"
	} else {
		result += "-"
	}

	if characteristics&0x80000000 > 0 {
		result += "w"
	} else {
		result += "-"
	}

	return result
}

// The optional header differs between PE32 and PE32+ but both carry
// the file alignment and the data directories.
type OptionalHeaderInfo struct {
	Is64Bit       bool
	FileAlignment uint32

	// Nil when the file has no resource directory.
	ResourceDirectory *pe.DataDirectory
}

func GetOptionalHeaderInfo(pe_file *pe.File) *OptionalHeaderInfo {
	var data_dirs []pe.DataDirectory
	var number_of_dirs uint32

	result := &OptionalHeaderInfo{}

	switch optional_header := pe_file.OptionalHeader.(type) {
	case *pe.OptionalHeader32:
		result.FileAlignment = optional_header.FileAlignment
		data_dirs = optional_header.DataDirectory[:]
		number_of_dirs = optional_header.NumberOfRvaAndSizes

	case *pe.OptionalHeader64:
		result.Is64Bit = true
		result.FileAlignment = optional_header.FileAlignment
		data_dirs = optional_header.DataDirectory[:]
		number_of_dirs = optional_header.NumberOfRvaAndSizes

	default:
		return nil
	}

	if number_of_dirs > IMAGE_DIRECTORY_ENTRY_RESOURCE {
		dir := data_dirs[IMAGE_DIRECTORY_ENTRY_RESOURCE]
		if dir.VirtualAddress != 0 {
			result.ResourceDirectory = &dir
		}
	}

	return result
}
