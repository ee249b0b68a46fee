package mui

import (
	"debug/pe"
)

const (
	PHYSICAL_ALIGN = 0x1ff
	PAGE_MASK      = 0xfff
)

// An RVA resolver maps a VirtualAddress to a file physical
// address. When the physical file is mapped into memory, sections in
// the file are mapped at different memory addresses. Internally the
// PE file contains pointers to those virtual addresses. This means we
// need to convert these pointers to mapped memory back into the file
// so we can read their data. The RVAResolver is responsible for this
// - it is populated from the header's sections.
type Run struct {
	VirtualAddress  uint64
	VirtualEnd      uint64
	PhysicalAddress uint64
}

type RVAResolver struct {
	// For now very simple O(n) search.
	Runs []*Run
}

// GetFileAddress returns the file offset of the rva or an
// OffsetError when no section contains it.
func (self *RVAResolver) GetFileAddress(rva uint64) (int64, error) {
	for _, run := range self.Runs {
		if rva >= run.VirtualAddress &&
			rva < run.VirtualEnd {
			return int64(rva - run.VirtualAddress + run.PhysicalAddress), nil
		}
	}

	return 0, &OffsetError{RVA: rva}
}

func roundToPage(size uint64) uint64 {
	return (size + PAGE_MASK) &^ PAGE_MASK
}

// The loader reads a section starting from the raw pointer rounded
// down to 0x200, for the raw size rounded up to the file alignment
// but never more than the page rounded raw or virtual size.
func NewRun(header *pe.SectionHeader, file_alignment uint32) *Run {
	alignment := uint64(file_alignment)
	if alignment == 0 {
		alignment = 1
	}

	pointer := uint64(header.Offset)
	aligned_pointer := pointer &^ PHYSICAL_ALIGN
	raw_size := uint64(header.Size)

	read_size := ((pointer+raw_size+alignment-1)&^(alignment-1) -
		aligned_pointer)
	if page_size := roundToPage(raw_size); read_size > page_size {
		read_size = page_size
	}

	if header.VirtualSize != 0 {
		if page_size := roundToPage(uint64(header.VirtualSize)); read_size > page_size {
			read_size = page_size
		}
	}

	return &Run{
		VirtualAddress:  uint64(header.VirtualAddress),
		VirtualEnd:      uint64(header.VirtualAddress) + read_size,
		PhysicalAddress: aligned_pointer,
	}
}

func NewRVAResolver(sections []*pe.Section, file_alignment uint32) *RVAResolver {
	result := &RVAResolver{}

	for _, section := range sections {
		if section.Size == 0 {
			continue
		}

		result.Runs = append(result.Runs,
			NewRun(&section.SectionHeader, file_alignment))
	}

	return result
}
