package wavy

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Tags holds the text entries of a LIST/INFO chunk. Entries missing from the
// file are empty strings.
type Tags struct {
	Name         string
	Subject      string
	Artist       string
	Comment      string
	Keywords     string
	Software     string
	Engineer     string
	Technician   string
	CreationDate string
	Genre        string
	Copyright    string
}

// TagField is one named entry of Tags.
type TagField struct {
	Name  string
	Value string
}

// See http://bwfmetaedit.sourceforge.net/listinfo.html
var infoFields = []struct {
	id    string
	name  string
	field func(*Tags) *string
}{
	{"INAM", "name", func(t *Tags) *string { return &t.Name }},
	{"ISBJ", "subject", func(t *Tags) *string { return &t.Subject }},
	{"IART", "artist", func(t *Tags) *string { return &t.Artist }},
	{"ICMT", "comment", func(t *Tags) *string { return &t.Comment }},
	{"IKEY", "keywords", func(t *Tags) *string { return &t.Keywords }},
	{"ISFT", "software", func(t *Tags) *string { return &t.Software }},
	{"IENG", "engineer", func(t *Tags) *string { return &t.Engineer }},
	{"ITCH", "technician", func(t *Tags) *string { return &t.Technician }},
	{"ICRD", "creation_date", func(t *Tags) *string { return &t.CreationDate }},
	{"GENR", "genre", func(t *Tags) *string { return &t.Genre }},
	{"ICOP", "copyright", func(t *Tags) *string { return &t.Copyright }},
}

// IGNR is the genre ID most writers use.
const infoGenreAlias = "IGNR"

// Fields returns all entries in a fixed order, empty ones included.
func (t *Tags) Fields() []TagField {
	if t == nil {
		return nil
	}

	out := make([]TagField, 0, len(infoFields))
	for _, f := range infoFields {
		out = append(out, TagField{Name: f.name, Value: *f.field(t)})
	}

	return out
}

// tagSet accumulates INFO entries across the LIST chunks preceding data.
type tagSet struct {
	tags  Tags
	found bool
}

func (s *tagSet) set(id, value string) {
	if id == infoGenreAlias {
		id = "GENR"
	}

	for _, f := range infoFields {
		if f.id == id {
			*f.field(&s.tags) = value
			s.found = true

			return
		}
	}
}

// result returns nil unless at least one recognised entry was read.
func (s *tagSet) result() *Tags {
	if !s.found {
		return nil
	}

	t := s.tags

	return &t
}

// readMetadata walks the chunks after fmt up to the data chunk, collecting
// INFO tags on the way. The returned data chunk is positioned at the start
// of its body.
func readMetadata(r io.Reader) (*chunk, *Tags, error) {
	var tags tagSet

	for {
		ch, err := openChunk(r)
		if err != nil {
			return nil, nil, err
		}

		switch ch.kind() {
		case chunkData:
			return ch, tags.result(), nil
		case chunkList:
			err = readListChunk(ch, &tags)
		case chunkFmt, chunkOther:
			err = ch.skip()
		}

		if err != nil {
			return nil, nil, err
		}
	}
}

// readListChunk reads the entries of an INFO list into tags. Other list
// types are skipped.
func readListChunk(ch *chunk, tags *tagSet) error {
	if ch.size() < len(CIDInfo) {
		return ch.skip()
	}

	listType, err := ch.read(len(CIDInfo))
	if err != nil {
		return err
	}

	if [4]byte(listType) != CIDInfo {
		return ch.skip()
	}

	for remaining := ch.size() - len(CIDInfo); remaining >= 8; {
		header, err := ch.read(8)
		if err != nil {
			return err
		}

		size := int(binary.LittleEndian.Uint32(header[4:]))
		if size > remaining-8 {
			return corruptedf("INFO entry %q of %d bytes overruns LIST chunk", header[:4], size)
		}

		value, err := ch.read(size)
		if err != nil {
			return err
		}

		remaining -= size + 8

		// entries are word aligned
		if size%2 == 1 && remaining > 0 {
			if _, err := ch.read(1); err != nil {
				return err
			}

			remaining--
		}

		tags.set(trimNulls(header[:4]), trimNulls(value))
	}

	if err := ch.skip(); err != nil {
		return fmt.Errorf("failed to skip LIST chunk: %w", err)
	}

	return nil
}
