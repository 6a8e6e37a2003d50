package ebml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMatroskaSegmentBasics(t *testing.T) {
	info := elem(idTimecodeScale, u(1000000))
	info = append(info, elem(idMuxingApp, []byte("libwebm"))...)
	infoElem := elem(idInfo, info)

	trackEntry := elem(idTrackNumber, []byte{1})
	trackEntry = append(trackEntry, elem(idTrackType, []byte{byte(TrackTypeSubtitle)})...)
	trackEntry = append(trackEntry, elem(idCodecID, []byte("S_TEXT/UTF8"))...)
	trackEntry = append(trackEntry, elem(idLanguage, []byte("eng"))...)
	tracksElem := elem(idTracks, elem(idTrackEntry, trackEntry))

	segmentPayload := append(append([]byte{}, infoElem...), tracksElem...)
	data := append(ebmlHeader("matroska"), elem(idSegment, segmentPayload)...)

	r := openReader(t, data)
	file, err := Parse(r, Options{})
	require.NoError(t, err)
	require.Len(t, file.Documents, 1)

	doc := file.Documents[0]
	require.Equal(t, "matroska", doc.DocType)
	require.Equal(t, "Segment", doc.Body.Name)

	infoNode := doc.Body.FirstChild
	require.Equal(t, "Info", infoNode.Name)
	require.Equal(t, uint64(1000000), infoNode.FirstChild.Payload.Unsigned)

	tracksNode := infoNode.NextSibling
	require.Equal(t, "Tracks", tracksNode.Name)
	trackEntryNode := tracksNode.FirstChild
	require.Equal(t, "TrackEntry", trackEntryNode.Name)

	for c := trackEntryNode.FirstChild; c != nil; c = c.NextSibling {
		switch c.Name {
		case "TrackType":
			require.Equal(t, uint64(TrackTypeSubtitle), c.Payload.Enum)
		case "CodecID":
			require.Equal(t, "S_TEXT/UTF8", c.Payload.Str)
		case "Language":
			require.Equal(t, "eng", c.Payload.Str)
		}
	}
}

func TestParseMatroskaBodyRootWrongID(t *testing.T) {
	data := append(ebmlHeader("matroska"), elem(idInfo, nil)...)
	r := openReader(t, data)
	_, err := Parse(r, Options{})
	require.ErrorIs(t, err, ErrMatroskaBodyRootWrongID)
}

func TestParseMatroskaSeekPositionRebased(t *testing.T) {
	seek := elem(idSeekID, []byte{0, 0, 0, 1})
	seek = append(seek, elem(idSeekPos, u(42))...)
	seekHeadPayload := elem(idSeek, seek)
	segmentPayload := elem(idSeekHead, seekHeadPayload)
	data := append(ebmlHeader("matroska"), elem(idSegment, segmentPayload)...)

	r := openReader(t, data)
	file, err := Parse(r, Options{})
	require.NoError(t, err)

	segment := file.Documents[0].Body
	seekHead := segment.FirstChild
	require.Equal(t, "SeekHead", seekHead.Name)
	seekNode := seekHead.FirstChild
	seekPosNode := seekNode.FirstChild.NextSibling
	require.Equal(t, "SeekPosition", seekPosNode.Name)
	require.Equal(t, uint64(42)+uint64(seekHead.Offset), seekPosNode.Payload.Unsigned)
}

func TestParseMatroskaSegmentUIDInvalidLength(t *testing.T) {
	segmentPayload := elem(idInfo, elem(idSegmentUID, []byte{1, 2, 3}))
	data := append(ebmlHeader("matroska"), elem(idSegment, segmentPayload)...)

	r := openReader(t, data)
	_, err := Parse(r, Options{})
	require.ErrorIs(t, err, ErrMatroskaSegmentUIDInvalidLength)
}

func TestParseMatroskaTrackTypeInvalidLength(t *testing.T) {
	trackEntry := elem(idTrackType, []byte{1, 2})
	segmentPayload := elem(idTracks, elem(idTrackEntry, trackEntry))
	data := append(ebmlHeader("matroska"), elem(idSegment, segmentPayload)...)

	r := openReader(t, data)
	_, err := Parse(r, Options{})
	require.ErrorIs(t, err, ErrMatroskaTrackTypeInvalidLength)
}

func TestParseMatroskaSkipClusters(t *testing.T) {
	cluster := elem(idTimecode, []byte{0})
	cluster = append(cluster, elem(idSimpleBlock, []byte{1, 2, 3, 4})...)
	segmentPayload := elem(idCluster, cluster)
	data := append(ebmlHeader("matroska"), elem(idSegment, segmentPayload)...)

	r := openReader(t, data)
	file, err := Parse(r, Options{SkipClusters: true})
	require.NoError(t, err)

	clusterNode := file.Documents[0].Body.FirstChild
	require.Equal(t, "Cluster", clusterNode.Name)
	require.Nil(t, clusterNode.FirstChild)
}

func TestParseMatroskaReturnAfterCluster(t *testing.T) {
	cluster1 := elem(idTimecode, []byte{0})
	cluster2 := elem(idTimecode, []byte{1})
	segmentPayload := append(elem(idCluster, cluster1), elem(idCluster, cluster2)...)
	data := append(ebmlHeader("matroska"), elem(idSegment, segmentPayload)...)

	r := openReader(t, data)
	file, err := Parse(r, Options{ReturnAfterCluster: true})
	require.NoError(t, err)

	segment := file.Documents[0].Body
	first := segment.FirstChild
	require.Equal(t, "Cluster", first.Name)
	require.Nil(t, first.NextSibling)
}

func TestParseMatroskaUnknownIDSkipped(t *testing.T) {
	segmentPayload := elem(0x4FFF, []byte{9, 9})
	segmentPayload = append(segmentPayload, elem(idInfo, nil)...)
	data := append(ebmlHeader("matroska"), elem(idSegment, segmentPayload)...)

	r := openReader(t, data)
	file, err := Parse(r, Options{})
	require.NoError(t, err)

	segment := file.Documents[0].Body
	require.Contains(t, segment.FirstChild.Name, "Unknown")
	require.Equal(t, "Info", segment.FirstChild.NextSibling.Name)
}

func TestParseMultiDocumentStream(t *testing.T) {
	doc1 := append(ebmlHeader("matroska"), elem(idSegment, elem(idInfo, nil))...)
	doc2 := append(ebmlHeader("webm"), elem(idSegment, elem(idInfo, nil))...)
	data := append(doc1, doc2...)

	r := openReader(t, data)
	file, err := Parse(r, Options{})
	require.NoError(t, err)
	require.Len(t, file.Documents, 2)
	require.Equal(t, "matroska", file.Documents[0].DocType)
	require.Equal(t, "webm", file.Documents[1].DocType)
}

func TestParseEmptyBodyFollowedByNewDocument(t *testing.T) {
	doc1 := ebmlHeader("matroska")
	doc2 := append(ebmlHeader("webm"), elem(idSegment, elem(idInfo, nil))...)
	data := append(doc1, doc2...)

	r := openReader(t, data)
	file, err := Parse(r, Options{})
	require.NoError(t, err)
	require.Len(t, file.Documents, 2)
	require.Equal(t, "matroska", file.Documents[0].DocType)
	require.Nil(t, file.Documents[0].Body)
	require.Equal(t, "webm", file.Documents[1].DocType)
	require.Equal(t, "Segment", file.Documents[1].Body.Name)
}

func TestParseGenericDocType(t *testing.T) {
	data := append(ebmlHeader("unknown-format"), elem(0x4A00, []byte("opaque"))...)

	r := openReader(t, data)
	file, err := Parse(r, Options{})
	require.NoError(t, err)
	require.Len(t, file.Documents, 1)
	require.Nil(t, file.Documents[0].Body.FirstChild)
}
