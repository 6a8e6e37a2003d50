package bmff

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepch/boxml/ioprim"
	"github.com/deepch/boxml/tree"
	"github.com/deepch/boxml/value"
)

func box(typ string, payload []byte) []byte {
	b := make([]byte, 8+len(payload))
	binary.BigEndian.PutUint32(b[0:], uint32(8+len(payload)))
	copy(b[4:8], typ)
	copy(b[8:], payload)
	return b
}

func open(t *testing.T, data []byte) *ioprim.Reader {
	t.Helper()
	r, err := ioprim.Open(bytes.NewReader(data))
	require.NoError(t, err)
	return r
}

func fullBoxPrefix(version uint8, flags uint32) []byte {
	b := make([]byte, 4)
	b[0] = version
	b[1] = byte(flags >> 16)
	b[2] = byte(flags >> 8)
	b[3] = byte(flags)
	return b
}

func TestParseSynthesizesFTYPWhenMissing(t *testing.T) {
	moov := box("moov", nil)
	data := moov
	r := open(t, data)

	root, summary, err := Parse(r, Options{})
	require.NoError(t, err)
	require.NotNil(t, summary.FTYP)
	require.True(t, summary.FTYP.Synthetic)
	require.Equal(t, int64(0), summary.FTYP.Size)
	require.Equal(t, root.FirstChild, summary.FTYP)
	require.Equal(t, "moov", summary.FTYP.NextSibling.Name)
}

func TestParseFTYPPresent(t *testing.T) {
	ftypPayload := append(append([]byte{}, []byte("isom")...), []byte{0, 0, 0, 1}...)
	ftypPayload = append(ftypPayload, []byte("isom")...)
	data := box("ftyp", ftypPayload)

	r := open(t, data)
	root, summary, err := Parse(r, Options{})
	require.NoError(t, err)
	require.False(t, summary.FTYP.Synthetic)
	require.Equal(t, root.FirstChild, summary.FTYP)
}

func TestParseDuplicatedFTYP(t *testing.T) {
	one := box("ftyp", make([]byte, 8))
	data := append(append([]byte{}, one...), one...)

	r := open(t, data)
	_, _, err := Parse(r, Options{})
	require.ErrorIs(t, err, ErrFTYPDuplicated)
}

func TestParseMVHDTimeScale(t *testing.T) {
	mvhdPayload := fullBoxPrefix(0, 0)
	mvhdPayload = append(mvhdPayload, make([]byte, 8)...) // create/modify time
	tsBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(tsBuf, 600)
	mvhdPayload = append(mvhdPayload, tsBuf...)
	mvhdPayload = append(mvhdPayload, make([]byte, 4)...) // duration
	mvhdPayload = append(mvhdPayload, make([]byte, 66)...)

	moov := box("mvhd", mvhdPayload)
	data := append(box("ftyp", make([]byte, 8)), box("moov", moov)...)

	r := open(t, data)
	_, summary, err := Parse(r, Options{})
	require.NoError(t, err)
	require.Equal(t, uint32(600), summary.TimeScale)
}

func TestParseMVHDRateChildNode(t *testing.T) {
	mvhdPayload := fullBoxPrefix(0, 0)
	mvhdPayload = append(mvhdPayload, make([]byte, 8)...) // create/modify time
	mvhdPayload = append(mvhdPayload, make([]byte, 4)...) // timescale
	mvhdPayload = append(mvhdPayload, make([]byte, 4)...) // duration
	rateBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(rateBuf, 1<<16) // rate = 1.0 in 16.16 fixed point
	mvhdPayload = append(mvhdPayload, rateBuf...)
	mvhdPayload = append(mvhdPayload, make([]byte, 62)...)

	moov := box("mvhd", mvhdPayload)
	data := append(box("ftyp", make([]byte, 8)), box("moov", moov)...)

	r := open(t, data)
	root, _, err := Parse(r, Options{})
	require.NoError(t, err)

	mvhdNode := root.FirstChild.NextSibling.FirstChild
	require.Equal(t, "mvhd", mvhdNode.Name)
	rateNode := mvhdNode.FirstChild
	require.Equal(t, "Rate", rateNode.Name)
	require.Equal(t, float64(1), rateNode.Payload.Fixed)
}

func TestParseMDHDLanguageChildNode(t *testing.T) {
	mdhdPayload := fullBoxPrefix(0, 0)
	mdhdPayload = append(mdhdPayload, make([]byte, 8)...) // create/modify time
	mdhdPayload = append(mdhdPayload, make([]byte, 4)...) // timescale
	mdhdPayload = append(mdhdPayload, make([]byte, 4)...) // duration
	langBuf := make([]byte, 2)
	// "eng" packed per ISO 14496-12: each letter is (code-0x60), 5 bits each.
	code := uint16('e'-0x60)<<10 | uint16('n'-0x60)<<5 | uint16('g'-0x60)
	binary.BigEndian.PutUint16(langBuf, code)
	mdhdPayload = append(mdhdPayload, langBuf...)
	mdhdPayload = append(mdhdPayload, make([]byte, 2)...) // pre_defined

	mdhdBox := box("mdhd", mdhdPayload)
	moov := box("moov", box("trak", box("mdia", mdhdBox)))
	data := append(box("ftyp", make([]byte, 8)), moov...)

	r := open(t, data)
	root, _, err := Parse(r, Options{})
	require.NoError(t, err)

	mdhdNode := root.FirstChild.NextSibling.FirstChild.FirstChild.FirstChild
	require.Equal(t, "mdhd", mdhdNode.Name)
	langNode := mdhdNode.FirstChild
	require.Equal(t, "Language", langNode.Name)
	require.Equal(t, "eng", langNode.Payload.Language.String())
}

func TestParseMVHDUnknownVersionIsFatal(t *testing.T) {
	mvhdPayload := fullBoxPrefix(9, 0)
	mvhdPayload = append(mvhdPayload, make([]byte, 100)...)

	data := append(box("ftyp", make([]byte, 8)), box("moov", box("mvhd", mvhdPayload))...)

	r := open(t, data)
	_, _, err := Parse(r, Options{})
	require.ErrorIs(t, err, ErrMVHDUnknownVersion)
}

func TestParseUDTAWrongParentFails(t *testing.T) {
	data := append(box("ftyp", make([]byte, 8)), box("udta", nil)...)

	r := open(t, data)
	_, _, err := Parse(r, Options{})
	require.ErrorIs(t, err, ErrWrongFileFormat)
}

func itunesTextTag(tag string, text string) []byte {
	data := append([]byte{0, 0, 0, 1}, []byte{0, 0, 0, 0}...) // type=Text, locale=0
	data = append(data, []byte(text)...)
	return box(tag, box("data", data))
}

func TestParseITunesMetadataTextTag(t *testing.T) {
	ilstPayload := itunesTextTag("\xa9nam", "hello")
	meta := append(fullBoxPrefix(0, 0), box("ilst", ilstPayload)...)
	udta := box("meta", meta)
	moov := box("udta", udta)
	data := append(box("ftyp", make([]byte, 8)), box("moov", moov)...)

	r := open(t, data)
	_, summary, err := Parse(r, Options{ParseMetadata: true})
	require.NoError(t, err)
	require.NotNil(t, summary.ITunesMetadata)

	ilstNode := summary.ITunesMetadata
	tagNode := ilstNode.FirstChild
	require.NotNil(t, tagNode)
	require.Equal(t, "hello", tagNode.Payload.Str)
}

func TestParseITunesMetadataExtendedTag(t *testing.T) {
	meanBox := box("mean", []byte("com.apple.iTunes"))
	nameBox := box("name", []byte("iTunSMPB"))
	dataPayload := append([]byte{0, 0, 0, 0, 0, 0, 0, 0}, []byte("0 0")...)
	dataBox := box("data", dataPayload)

	extPayload := append(append(append([]byte{}, meanBox...), nameBox...), dataBox...)
	ilstPayload := box("----", extPayload)

	data := box("ilst", ilstPayload)

	r := open(t, data)
	ilstNode := &tree.Node{Offset: 0, Size: int64(len(data)), PayloadOffset: 8, PayloadSize: int64(len(data) - 8)}
	require.NoError(t, r.SetPosition(8))
	require.NoError(t, ParseITunesMetadata(r, ilstNode))

	extTag := ilstNode.FirstChild
	require.NotNil(t, extTag)
	require.Equal(t, "----", extTag.Name)

	mean := extTag.FirstChild
	require.Equal(t, "com.apple.iTunes", mean.Payload.Str)
	name := mean.NextSibling
	require.Equal(t, "iTunSMPB", name.Payload.Str)
	dataNode := name.NextSibling
	require.Equal(t, "0 0", dataNode.Payload.Str)
}

func TestTrackNumberHelper(t *testing.T) {
	raw := []byte{0, 0, 0, 3, 0, 12, 0, 0}
	cur, total, err := TrackNumber(value.Value{Kind: value.KindBinary, Binary: raw})
	require.NoError(t, err)
	require.Equal(t, uint16(3), cur)
	require.Equal(t, uint16(12), total)
}
