package mui

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// References: https://github.com/nsacyber/Windows-Event-Log-Messages/blob/master/welm/WelmLibrary/EventMessageFile.cs

const (
	MESSAGE_RESOURCE_BLOCK_SIZE = 12
	MESSAGE_RESOURCE_ENTRY_SIZE = 4

	MESSAGE_ANSI    = 0
	MESSAGE_UNICODE = 1
)

type Message struct {
	Id      int64  `json:"Id"`
	EventId int    `json:"EventId"`
	Message string `json:"Message"`
}

type MessageResourceBlock struct {
	LowId           uint32
	HighId          uint32
	OffsetToEntries uint32
}

// ParseMessages decodes a MESSAGE_RESOURCE_DATA payload: a block
// count, the blocks, then the entries each block points to.
func ParseMessages(data []byte) ([]*Message, error) {
	reader := NewFieldReader(data, 0)
	number_of_blocks, err := reader.Uint32()
	if err != nil {
		return nil, errors.Wrap(err, "MESSAGE_RESOURCE_DATA")
	}

	blocks := []*MessageResourceBlock{}
	for i := uint32(0); i < CapUint32(number_of_blocks, MAX_RESOURCE_BLOCKS); i++ {
		block := &MessageResourceBlock{}
		for _, field := range []*uint32{
			&block.LowId, &block.HighId, &block.OffsetToEntries} {
			*field, err = reader.Uint32()
			if err != nil {
				return nil, errors.Wrapf(err, "MESSAGE_RESOURCE_BLOCK %d", i)
			}
		}
		blocks = append(blocks, block)
	}

	result := []*Message{}
	for _, block := range blocks {
		result = append(result, block.Messages(data)...)
		if int64(len(result)) > GetMessageLimit() {
			break
		}
	}

	return result, nil
}

// Each block contains a list of entries.
func (self *MessageResourceBlock) Messages(data []byte) []*Message {
	result := []*Message{}
	reader := NewFieldReader(data, int64(self.OffsetToEntries))
	limit := GetMessageLimit()

	for i := uint64(self.LowId); i <= uint64(self.HighId); i++ {
		// Reserved bit 28
		is_reserved := ((i >> 28) & 1) > 0

		// Customer event is bit 29
		is_customer := ((i >> 29) & 1) > 0

		// Not a Microsoft event from observation, these look
		// like random string resources so it seems safe to
		// discard these as not being events.
		if !is_customer && is_reserved {
			continue
		}

		offset := reader.Tell()
		length, err := reader.Uint16()
		if err != nil {
			break
		}

		flags, err := reader.Uint16()
		if err != nil {
			break
		}

		// Length covers the entry header too.
		if length < MESSAGE_RESOURCE_ENTRY_SIZE {
			break
		}

		text_start := offset + MESSAGE_RESOURCE_ENTRY_SIZE
		text_end := text_start + CapInt64(
			int64(length)-MESSAGE_RESOURCE_ENTRY_SIZE, MAX_MESSAGE_LENGTH)
		if text_end > reader.Len() {
			text_end = reader.Len()
		}
		text, err := reader.Slice(text_start, text_end)
		if err != nil {
			break
		}

		// Bottom 16 bits are the event ID. We dont care about
		// the rest.
		result = append(result, &Message{
			Id:      int64(i),
			EventId: int(i & 0xFFFF),
			Message: DecodeMessageText(text, flags),
		})

		if int64(len(result)) > limit {
			break
		}

		reader.Seek(offset + int64(length))
	}

	return result
}

func DecodeMessageText(text []byte, flags uint16) string {
	result := ""

	switch flags {
	case MESSAGE_ANSI:
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(text)
		if err != nil {
			decoded = text
		}
		result = string(decoded)

	case MESSAGE_UNICODE:
		result = UTF16ToStringLE(text)
	}

	return strings.Split(result, "\x00")[0]
}

func UTF16ToStringLE(in []byte) string {
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	utf8, err := decoder.Bytes(in)
	if err != nil {
		return string(in)
	}
	return string(utf8)
}
