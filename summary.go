package mui

import (
	"github.com/Velocidex/ordereddict"
)

// Summary describes the resource tree as the walker sees it.
func (self *MUIFile) Summary() (*ordereddict.Dict, error) {
	tree, err := self.ResourceTree()
	if err != nil {
		return nil, err
	}

	types := []*ordereddict.Dict{}
	lang_idx := 0
	for idx, entry := range tree.Root.Entries {
		name_dir := tree.NameDirectories[idx]

		languages := []uint32{}
		for range name_dir.Entries {
			if lang_idx >= len(tree.LanguageDirectories) {
				break
			}
			for _, lang := range tree.LanguageDirectories[lang_idx].Entries {
				languages = append(languages, lang.Name)
			}
			lang_idx++
		}

		types = append(types, ordereddict.NewDict().
			Set("Type", entry.TypeName()).
			Set("Id", entry.Name).
			Set("Target", IsTargetType(entry.Name)).
			Set("Entries", name_dir.NumberOfEntries()).
			Set("Languages", languages))
	}

	leaf_range := tree.LeafRange()

	return ordereddict.NewDict().
		Set("Is64Bit", self.Is64Bit).
		Set("FileAlignment", self.FileAlignment).
		Set("Sections", self.Sections).
		Set("ResourceBase", self.resource_base).
		Set("TimeDateStamp",
			NewUnixTimeStamp(tree.Root.TimeDateStamp).String()).
		Set("Types", types).
		Set("DataEntryOffset", tree.DataEntryOffset).
		Set("LeafRange", ordereddict.NewDict().
			Set("Skip", leaf_range.Skip).
			Set("Read", leaf_range.Read)), nil
}
