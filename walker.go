package mui

import (
	"github.com/pkg/errors"
)

// The resource tree as laid out in MUI files: a Type directory, one
// Name directory per Type entry and one Language directory per Name
// entry, followed by the array of data entries.
type ResourceTree struct {
	Root                *ResourceDirectory
	NameDirectories     []*ResourceDirectory
	LanguageDirectories []*ResourceDirectory

	// Indexes into Root.Entries of string and message tables.
	TargetIndexes []int

	// File offset just past the last Language directory.
	DataEntryOffset int64
}

// A TreeWalker reads a resource tree starting at the reader's
// cursor. It must set DataEntryOffset to the start of the data entry
// array.
type TreeWalker func(reader *FieldReader) (*ResourceTree, error)

var DefaultWalker TreeWalker = WalkSequential

// WalkSequential reads the three levels back to back instead of
// following each entry's OffsetToData. The MUI files this was built
// against lay their directories out in exactly this order; the
// general format does not guarantee it.
func WalkSequential(reader *FieldReader) (*ResourceTree, error) {
	result := &ResourceTree{}

	// Type Dir
	root, err := ReadResourceDirectory(reader)
	if err != nil {
		return nil, errors.Wrap(err, "Type directory")
	}
	result.Root = root

	DebugPrint("Type directory at %#x with %d entries\n",
		root.FileOffset, root.NumberOfEntries())

	// Name Dir
	for idx, entry := range root.Entries {
		if IsTargetType(entry.Name) {
			result.TargetIndexes = append(result.TargetIndexes, idx)
		}

		name_dir, err := ReadResourceDirectory(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "Name directory %d", idx)
		}
		result.NameDirectories = append(result.NameDirectories, name_dir)

		DebugPrint("Name directory %d (%v) at %#x with %d entries\n",
			idx, entry.TypeName(), name_dir.FileOffset,
			name_dir.NumberOfEntries())
	}

	// Lang Dir
	for idx, name_dir := range result.NameDirectories {
		for range name_dir.Entries {
			lang_dir, err := ReadResourceDirectory(reader)
			if err != nil {
				return nil, errors.Wrapf(err,
					"Language directory under Name directory %d", idx)
			}
			result.LanguageDirectories = append(
				result.LanguageDirectories, lang_dir)
		}
	}

	result.DataEntryOffset = reader.Tell()
	DebugPrint("Data entries start at %#x\n", result.DataEntryOffset)

	return result, nil
}

func (self *ResourceTree) LeafRange() LeafRange {
	return LocateLeaves(self.NameDirectories, self.TargetIndexes)
}
