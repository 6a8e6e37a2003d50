package ebml

// Matroska element IDs, RFC-adjacent to RFC 8794 but defined by the
// Matroska/WebM specification rather than the EBML RFC itself. spec.md
// §4.10 requires an exhaustive-as-practical table mapping each known ID to
// an internal type and a disposition (intern / special / skip); this table
// is grounded on the teacher's own table
// (deepch-vdk/format/mkv/mkvio/elements.go's ElementRegister set) unioned
// with the wider ID surface in other_examples/wnielson-go-mediainfo__matroska.go
// and other_examples/pixelbender-go-matroska__matroska.go. Unknown IDs are
// specified to skip, so gaps here are non-fatal.
const (
	idSegment  uint64 = 0x18538067
	idSeekHead uint64 = 0x114D9B74
	idSeek     uint64 = 0x4DBB
	idSeekID   uint64 = 0x53AB
	idSeekPos  uint64 = 0x53AC

	idInfo            uint64 = 0x1549A966
	idSegmentUID       uint64 = 0x73A4
	idSegmentFilename  uint64 = 0x7384
	idPrevUID          uint64 = 0x3CB923
	idPrevFilename     uint64 = 0x3C83AB
	idNextUID          uint64 = 0x3EB923
	idNextFilename     uint64 = 0x3E83BB
	idSegmentFamily    uint64 = 0x4444
	idTimecodeScale    uint64 = 0x2AD7B1
	idDuration         uint64 = 0x4489
	idDateUTC          uint64 = 0x4461
	idTitle            uint64 = 0x7BA9
	idMuxingApp        uint64 = 0x4D80
	idWritingApp       uint64 = 0x5741

	idChapterTranslate           uint64 = 0x6924
	idChapterTranslateEditionUID uint64 = 0x69FC
	idChapterTranslateCodec      uint64 = 0x69BF
	idChapterTranslateID         uint64 = 0x69A5

	idCluster           uint64 = 0x1F43B675
	idTimecode          uint64 = 0xE7
	idSilentTracks       uint64 = 0x5854
	idSilentTrackNumber  uint64 = 0x58D7
	idPosition          uint64 = 0xA7
	idPrevSize          uint64 = 0xAB
	idSimpleBlock       uint64 = 0xA3
	idBlockGroup        uint64 = 0xA0
	idBlock             uint64 = 0xA1
	idBlockAdditions    uint64 = 0x75A1
	idBlockMore         uint64 = 0xA6
	idBlockAddID        uint64 = 0xEE
	idBlockAdditional   uint64 = 0xA5
	idBlockDuration     uint64 = 0x9B
	idReferencePriority uint64 = 0xFA
	idReferenceBlock    uint64 = 0xFB
	idCodecState        uint64 = 0xA4
	idDiscardPadding    uint64 = 0x75A2
	idSlices            uint64 = 0x8E
	idTimeSlice         uint64 = 0xE8
	idLaceNumber        uint64 = 0xCC

	idTracks                      uint64 = 0x1654AE6B
	idTrackEntry                  uint64 = 0xAE
	idTrackNumber                 uint64 = 0xD7
	idTrackUID                    uint64 = 0x73C5
	idTrackType                   uint64 = 0x83
	idTrackOffset                 uint64 = 0x537F
	idFlagEnabled                 uint64 = 0xB9
	idFlagDefault                 uint64 = 0x88
	idFlagForced                  uint64 = 0x55AA
	idFlagLacing                  uint64 = 0x9C
	idMinCache                    uint64 = 0x6DE7
	idMaxCache                    uint64 = 0x6DF8
	idDefaultDuration              uint64 = 0x23E383
	idDefaultDecodedFieldDuration uint64 = 0x234E7A
	idMaxBlockAdditionID          uint64 = 0x55EE
	idName                        uint64 = 0x536E
	idLanguage                    uint64 = 0x22B59C
	idCodecID                     uint64 = 0x86
	idCodecPrivate                uint64 = 0x63A2
	idCodecName                   uint64 = 0x258688
	idAttachmentLink              uint64 = 0x7446
	idCodecDecodeAll              uint64 = 0xAA
	idTrackOverlay                uint64 = 0x6FAB
	idCodecDelay                  uint64 = 0x56AA
	idSeekPreRoll                 uint64 = 0x56BB

	idTrackTranslate           uint64 = 0x6624
	idTrackTranslateEditionUID uint64 = 0x66FC
	idTrackTranslateCodec      uint64 = 0x66BF
	idTrackTranslateTrackID    uint64 = 0x66A5

	idVideo             uint64 = 0xE0
	idFlagInterlaced    uint64 = 0x9A
	idStereoMode        uint64 = 0x53B8
	idAlphaMode         uint64 = 0x53C0
	idPixelWidth        uint64 = 0xB0
	idPixelHeight       uint64 = 0xBA
	idPixelCropBottom   uint64 = 0x54AA
	idPixelCropTop      uint64 = 0x54BB
	idPixelCropLeft     uint64 = 0x54CC
	idPixelCropRight    uint64 = 0x54DD
	idDisplayWidth      uint64 = 0x54B0
	idDisplayHeight     uint64 = 0x54BA
	idDisplayUnit       uint64 = 0x54B2
	idAspectRatioType   uint64 = 0x54B3
	idColourSpace       uint64 = 0x2EB524
	idColour            uint64 = 0x55B0
	idColourRange       uint64 = 0x55B9
	idProjection        uint64 = 0x7670
	idProjectionType    uint64 = 0x7671
	idProjectionPrivate uint64 = 0x7672

	idAudio                   uint64 = 0xE1
	idSamplingFrequency       uint64 = 0xB5
	idOutputSamplingFrequency uint64 = 0x78B5
	idChannels                uint64 = 0x9F
	idBitDepth                uint64 = 0x6264

	idTrackOperation     uint64 = 0xE2
	idTrackCombinePlanes uint64 = 0xE3
	idTrackPlane         uint64 = 0xE4
	idTrackPlaneUID      uint64 = 0xE5
	idTrackPlaneType     uint64 = 0xE6
	idTrackJoinBlocks    uint64 = 0xE9
	idTrackJoinUID       uint64 = 0xED

	idContentEncodings     uint64 = 0x6D80
	idContentEncoding      uint64 = 0x6240
	idContentEncodingOrder uint64 = 0x5031
	idContentEncodingScope uint64 = 0x5032
	idContentEncodingType  uint64 = 0x5033
	idContentCompression   uint64 = 0x5034
	idContentCompAlgo      uint64 = 0x4254
	idContentCompSettings  uint64 = 0x4255
	idContentEncryption    uint64 = 0x5035
	idContentEncAlgo       uint64 = 0x47E1
	idContentEncKeyID      uint64 = 0x47E2
	idContentSignature     uint64 = 0x47E3
	idContentSigKeyID      uint64 = 0x47E4
	idContentSigAlgo       uint64 = 0x47E5
	idContentSigHashAlgo   uint64 = 0x47E6

	idCues                uint64 = 0x1C53BB6B
	idCuePoint            uint64 = 0xBB
	idCueTime             uint64 = 0xB3
	idCueTrackPositions   uint64 = 0xB7
	idCueTrack            uint64 = 0xF7
	idCueClusterPosition  uint64 = 0xF1
	idCueRelativePosition uint64 = 0xF0
	idCueDuration         uint64 = 0xB2
	idCueBlockNumber      uint64 = 0x5378
	idCueCodecState       uint64 = 0xEA
	idCueReference        uint64 = 0xDB
	idCueRefTime          uint64 = 0x96

	idAttachments         uint64 = 0x1941A469
	idAttachedFile        uint64 = 0x61A7
	idFileDescription     uint64 = 0x467E
	idFileName            uint64 = 0x466E
	idFileMimeType        uint64 = 0x6460
	idFileData            uint64 = 0x465C
	idFileUID             uint64 = 0x46AE

	idChapters                 uint64 = 0x1043A770
	idEditionEntry             uint64 = 0x45B9
	idEditionUID               uint64 = 0x45BC
	idEditionFlagHidden        uint64 = 0x45BD
	idEditionFlagDefault       uint64 = 0x45DB
	idEditionFlagOrdered       uint64 = 0x45DD
	idChapterAtom              uint64 = 0xB6
	idChapterUID               uint64 = 0x73C4
	idChapterStringUID         uint64 = 0x5654
	idChapterTimeStart         uint64 = 0x91
	idChapterTimeEnd           uint64 = 0x92
	idChapterFlagHidden        uint64 = 0x98
	idChapterFlagEnabled       uint64 = 0x4598
	idChapterSegmentUID        uint64 = 0x6E67
	idChapterSegmentEditionUID uint64 = 0x6EBC
	idChapterPhysicalEquiv     uint64 = 0x63C3
	idChapterTrack             uint64 = 0x8F
	idChapterTrackNumber       uint64 = 0x89
	idChapterDisplay           uint64 = 0x80
	idChapString               uint64 = 0x85
	idChapLanguage             uint64 = 0x437C
	idChapCountry              uint64 = 0x437E
	idChapProcess              uint64 = 0x6944
	idChapProcessCodecID       uint64 = 0x6955
	idChapProcessPrivate       uint64 = 0x450D
	idChapProcessCommand       uint64 = 0x6911
	idChapProcessTime          uint64 = 0x6922
	idChapProcessData          uint64 = 0x6933

	idTags       uint64 = 0x1254C367
	idTag        uint64 = 0x7373
	idTargets    uint64 = 0x63C0
	idTargetTypeValue uint64 = 0x68CA
	idTargetType uint64 = 0x63CA
	idTagTrackUID uint64 = 0x63C5
	idSimpleTag  uint64 = 0x67C8
	idTagName    uint64 = 0x45A3
	idTagLanguage uint64 = 0x447A
	idTagDefault uint64 = 0x4484
	idTagString  uint64 = 0x4487
	idTagBinary  uint64 = 0x4485
)

// matroskaKind is the internal type a schema entry's payload decodes into
// (spec.md §4.10).
type matroskaKind uint8

const (
	mkMaster matroskaKind = iota
	mkUnsigned
	mkSigned
	mkFloat
	mkString
	mkUTF8
	mkBinary
	mkDate
	mkUUID
	mkTrackType
)

// disposition is how the body engine handles a known ID (spec.md §4.10):
// decode with the table's type decoder, hand off to parser-specific
// handling, or record offsets only.
type disposition uint8

const (
	dispIntern disposition = iota
	dispSpecial
	dispSkip
)

type schemaEntry struct {
	name string
	kind matroskaKind
	disp disposition
}

// matroskaSchema is the constant, closed-as-practical table of spec.md
// §4.10. Master elements are always dispositioned dispIntern (their
// "decode" is simply recursing into children, handled uniformly by the
// body engine) except where listed dispSpecial for extra structural rules.
var matroskaSchema = map[uint64]schemaEntry{
	idCRC32: {"CRC-32", mkBinary, dispIntern},

	idSegment:  {"Segment", mkMaster, dispIntern},
	idSeekHead: {"SeekHead", mkMaster, dispIntern},
	idSeek:     {"Seek", mkMaster, dispIntern},
	idSeekID:   {"SeekID", mkBinary, dispIntern},
	idSeekPos:  {"SeekPosition", mkUnsigned, dispSpecial},

	idInfo:           {"Info", mkMaster, dispIntern},
	idSegmentUID:      {"SegmentUID", mkUUID, dispSpecial},
	idSegmentFilename: {"SegmentFilename", mkUTF8, dispIntern},
	idPrevUID:         {"PrevUID", mkUUID, dispSpecial},
	idPrevFilename:    {"PrevFilename", mkUTF8, dispIntern},
	idNextUID:         {"NextUID", mkUUID, dispSpecial},
	idNextFilename:    {"NextFilename", mkUTF8, dispIntern},
	idSegmentFamily:   {"SegmentFamily", mkUUID, dispSpecial},
	idTimecodeScale:   {"TimecodeScale", mkUnsigned, dispIntern},
	idDuration:        {"Duration", mkFloat, dispIntern},
	idDateUTC:         {"DateUTC", mkDate, dispSpecial},
	idTitle:           {"Title", mkUTF8, dispIntern},
	idMuxingApp:       {"MuxingApp", mkUTF8, dispIntern},
	idWritingApp:      {"WritingApp", mkUTF8, dispIntern},

	idChapterTranslate:           {"ChapterTranslate", mkMaster, dispIntern},
	idChapterTranslateEditionUID: {"ChapterTranslateEditionUID", mkUnsigned, dispIntern},
	idChapterTranslateCodec:      {"ChapterTranslateCodec", mkUnsigned, dispIntern},
	idChapterTranslateID:         {"ChapterTranslateID", mkBinary, dispIntern},

	idCluster:           {"Cluster", mkMaster, dispSpecial},
	idTimecode:          {"Timecode", mkUnsigned, dispIntern},
	idSilentTracks:      {"SilentTracks", mkMaster, dispIntern},
	idSilentTrackNumber: {"SilentTrackNumber", mkUnsigned, dispIntern},
	idPosition:          {"Position", mkUnsigned, dispIntern},
	idPrevSize:          {"PrevSize", mkUnsigned, dispIntern},
	idSimpleBlock:       {"SimpleBlock", mkBinary, dispSkip},
	idBlockGroup:        {"BlockGroup", mkMaster, dispIntern},
	idBlock:             {"Block", mkBinary, dispSkip},
	idBlockAdditions:    {"BlockAdditions", mkMaster, dispIntern},
	idBlockMore:         {"BlockMore", mkMaster, dispIntern},
	idBlockAddID:        {"BlockAddID", mkUnsigned, dispIntern},
	idBlockAdditional:   {"BlockAdditional", mkBinary, dispSkip},
	idBlockDuration:     {"BlockDuration", mkUnsigned, dispIntern},
	idReferencePriority: {"ReferencePriority", mkUnsigned, dispIntern},
	idReferenceBlock:    {"ReferenceBlock", mkSigned, dispIntern},
	idCodecState:        {"CodecState", mkBinary, dispSkip},
	idDiscardPadding:    {"DiscardPadding", mkSigned, dispIntern},
	idSlices:            {"Slices", mkMaster, dispIntern},
	idTimeSlice:         {"TimeSlice", mkMaster, dispIntern},
	idLaceNumber:        {"LaceNumber", mkUnsigned, dispIntern},

	idTracks:                      {"Tracks", mkMaster, dispIntern},
	idTrackEntry:                  {"TrackEntry", mkMaster, dispIntern},
	idTrackNumber:                 {"TrackNumber", mkUnsigned, dispIntern},
	idTrackUID:                    {"TrackUID", mkUnsigned, dispIntern},
	idTrackType:                   {"TrackType", mkTrackType, dispSpecial},
	idTrackOffset:                 {"TrackOffset", mkSigned, dispIntern},
	idFlagEnabled:                 {"FlagEnabled", mkUnsigned, dispIntern},
	idFlagDefault:                 {"FlagDefault", mkUnsigned, dispIntern},
	idFlagForced:                  {"FlagForced", mkUnsigned, dispIntern},
	idFlagLacing:                  {"FlagLacing", mkUnsigned, dispIntern},
	idMinCache:                    {"MinCache", mkUnsigned, dispIntern},
	idMaxCache:                    {"MaxCache", mkUnsigned, dispIntern},
	idDefaultDuration:             {"DefaultDuration", mkUnsigned, dispIntern},
	idDefaultDecodedFieldDuration: {"DefaultDecodedFieldDuration", mkUnsigned, dispIntern},
	idMaxBlockAdditionID:          {"MaxBlockAdditionID", mkUnsigned, dispIntern},
	idName:                        {"Name", mkUTF8, dispIntern},
	idLanguage:                    {"Language", mkString, dispIntern},
	idCodecID:                     {"CodecID", mkString, dispIntern},
	idCodecPrivate:                {"CodecPrivate", mkBinary, dispSkip},
	idCodecName:                   {"CodecName", mkUTF8, dispIntern},
	idAttachmentLink:              {"AttachmentLink", mkUnsigned, dispIntern},
	idCodecDecodeAll:              {"CodecDecodeAll", mkUnsigned, dispIntern},
	idTrackOverlay:                {"TrackOverlay", mkUnsigned, dispIntern},
	idCodecDelay:                  {"CodecDelay", mkUnsigned, dispIntern},
	idSeekPreRoll:                 {"SeekPreRoll", mkUnsigned, dispIntern},

	idTrackTranslate:           {"TrackTranslate", mkMaster, dispIntern},
	idTrackTranslateEditionUID: {"TrackTranslateEditionUID", mkUnsigned, dispIntern},
	idTrackTranslateCodec:      {"TrackTranslateCodec", mkUnsigned, dispIntern},
	idTrackTranslateTrackID:    {"TrackTranslateTrackID", mkBinary, dispIntern},

	idVideo:             {"Video", mkMaster, dispIntern},
	idFlagInterlaced:    {"FlagInterlaced", mkUnsigned, dispIntern},
	idStereoMode:        {"StereoMode", mkUnsigned, dispIntern},
	idAlphaMode:         {"AlphaMode", mkUnsigned, dispIntern},
	idPixelWidth:        {"PixelWidth", mkUnsigned, dispIntern},
	idPixelHeight:       {"PixelHeight", mkUnsigned, dispIntern},
	idPixelCropBottom:   {"PixelCropBottom", mkUnsigned, dispIntern},
	idPixelCropTop:      {"PixelCropTop", mkUnsigned, dispIntern},
	idPixelCropLeft:     {"PixelCropLeft", mkUnsigned, dispIntern},
	idPixelCropRight:    {"PixelCropRight", mkUnsigned, dispIntern},
	idDisplayWidth:      {"DisplayWidth", mkUnsigned, dispIntern},
	idDisplayHeight:     {"DisplayHeight", mkUnsigned, dispIntern},
	idDisplayUnit:       {"DisplayUnit", mkUnsigned, dispIntern},
	idAspectRatioType:   {"AspectRatioType", mkUnsigned, dispIntern},
	idColourSpace:       {"ColourSpace", mkBinary, dispIntern},
	idColour:            {"Colour", mkMaster, dispIntern},
	idColourRange:       {"Range", mkUnsigned, dispIntern},
	idProjection:        {"Projection", mkMaster, dispIntern},
	idProjectionType:    {"ProjectionType", mkUnsigned, dispIntern},
	idProjectionPrivate: {"ProjectionPrivate", mkBinary, dispSkip},

	idAudio:                   {"Audio", mkMaster, dispIntern},
	idSamplingFrequency:       {"SamplingFrequency", mkFloat, dispIntern},
	idOutputSamplingFrequency: {"OutputSamplingFrequency", mkFloat, dispIntern},
	idChannels:                {"Channels", mkUnsigned, dispIntern},
	idBitDepth:                {"BitDepth", mkUnsigned, dispIntern},

	idTrackOperation:     {"TrackOperation", mkMaster, dispIntern},
	idTrackCombinePlanes: {"TrackCombinePlanes", mkMaster, dispIntern},
	idTrackPlane:         {"TrackPlane", mkMaster, dispIntern},
	idTrackPlaneUID:      {"TrackPlaneUID", mkUnsigned, dispIntern},
	idTrackPlaneType:     {"TrackPlaneType", mkUnsigned, dispIntern},
	idTrackJoinBlocks:    {"TrackJoinBlocks", mkMaster, dispIntern},
	idTrackJoinUID:       {"TrackJoinUID", mkUnsigned, dispIntern},

	idContentEncodings:     {"ContentEncodings", mkMaster, dispIntern},
	idContentEncoding:      {"ContentEncoding", mkMaster, dispIntern},
	idContentEncodingOrder: {"ContentEncodingOrder", mkUnsigned, dispIntern},
	idContentEncodingScope: {"ContentEncodingScope", mkUnsigned, dispIntern},
	idContentEncodingType:  {"ContentEncodingType", mkUnsigned, dispIntern},
	idContentCompression:   {"ContentCompression", mkMaster, dispIntern},
	idContentCompAlgo:      {"ContentCompAlgo", mkUnsigned, dispIntern},
	idContentCompSettings:  {"ContentCompSettings", mkBinary, dispSkip},
	idContentEncryption:    {"ContentEncryption", mkMaster, dispIntern},
	idContentEncAlgo:       {"ContentEncAlgo", mkUnsigned, dispIntern},
	idContentEncKeyID:      {"ContentEncKeyID", mkBinary, dispSkip},
	idContentSignature:     {"ContentSignature", mkBinary, dispIntern},
	idContentSigKeyID:      {"ContentSigKeyID", mkBinary, dispIntern},
	idContentSigAlgo:       {"ContentSigAlgo", mkUnsigned, dispIntern},
	idContentSigHashAlgo:   {"ContentSigHashAlgo", mkUnsigned, dispIntern},

	idCues:                {"Cues", mkMaster, dispIntern},
	idCuePoint:            {"CuePoint", mkMaster, dispIntern},
	idCueTime:             {"CueTime", mkUnsigned, dispIntern},
	idCueTrackPositions:   {"CueTrackPositions", mkMaster, dispIntern},
	idCueTrack:            {"CueTrack", mkUnsigned, dispIntern},
	idCueClusterPosition:  {"CueClusterPosition", mkUnsigned, dispIntern},
	idCueRelativePosition: {"CueRelativePosition", mkUnsigned, dispIntern},
	idCueDuration:         {"CueDuration", mkUnsigned, dispIntern},
	idCueBlockNumber:      {"CueBlockNumber", mkUnsigned, dispIntern},
	idCueCodecState:       {"CueCodecState", mkUnsigned, dispIntern},
	idCueReference:        {"CueReference", mkMaster, dispIntern},
	idCueRefTime:          {"CueRefTime", mkUnsigned, dispIntern},

	idAttachments:     {"Attachments", mkMaster, dispIntern},
	idAttachedFile:    {"AttachedFile", mkMaster, dispIntern},
	idFileDescription: {"FileDescription", mkUTF8, dispIntern},
	idFileName:        {"FileName", mkUTF8, dispIntern},
	idFileMimeType:    {"FileMimeType", mkString, dispIntern},
	idFileData:        {"FileData", mkBinary, dispSkip},
	idFileUID:         {"FileUID", mkUnsigned, dispIntern},

	idChapters:                 {"Chapters", mkMaster, dispIntern},
	idEditionEntry:             {"EditionEntry", mkMaster, dispIntern},
	idEditionUID:               {"EditionUID", mkUnsigned, dispIntern},
	idEditionFlagHidden:        {"EditionFlagHidden", mkUnsigned, dispIntern},
	idEditionFlagDefault:       {"EditionFlagDefault", mkUnsigned, dispIntern},
	idEditionFlagOrdered:       {"EditionFlagOrdered", mkUnsigned, dispIntern},
	idChapterAtom:              {"ChapterAtom", mkMaster, dispIntern},
	idChapterUID:               {"ChapterUID", mkUnsigned, dispIntern},
	idChapterStringUID:         {"ChapterStringUID", mkUTF8, dispIntern},
	idChapterTimeStart:         {"ChapterTimeStart", mkUnsigned, dispIntern},
	idChapterTimeEnd:           {"ChapterTimeEnd", mkUnsigned, dispIntern},
	idChapterFlagHidden:        {"ChapterFlagHidden", mkUnsigned, dispIntern},
	idChapterFlagEnabled:       {"ChapterFlagEnabled", mkUnsigned, dispIntern},
	idChapterSegmentUID:        {"ChapterSegmentUID", mkUUID, dispSpecial},
	idChapterSegmentEditionUID: {"ChapterSegmentEditionUID", mkUnsigned, dispIntern},
	idChapterPhysicalEquiv:     {"ChapterPhysicalEquiv", mkUnsigned, dispIntern},
	idChapterTrack:             {"ChapterTrack", mkMaster, dispIntern},
	idChapterTrackNumber:       {"ChapterTrackNumber", mkUnsigned, dispIntern},
	idChapterDisplay:           {"ChapterDisplay", mkMaster, dispIntern},
	idChapString:               {"ChapString", mkUTF8, dispIntern},
	idChapLanguage:             {"ChapLanguage", mkString, dispIntern},
	idChapCountry:              {"ChapCountry", mkString, dispIntern},
	idChapProcess:              {"ChapProcess", mkMaster, dispIntern},
	idChapProcessCodecID:       {"ChapProcessCodecID", mkUnsigned, dispIntern},
	idChapProcessPrivate:       {"ChapProcessPrivate", mkBinary, dispIntern},
	idChapProcessCommand:       {"ChapProcessCommand", mkMaster, dispIntern},
	idChapProcessTime:          {"ChapProcessTime", mkUnsigned, dispIntern},
	idChapProcessData:          {"ChapProcessData", mkBinary, dispIntern},

	idTags:            {"Tags", mkMaster, dispIntern},
	idTag:             {"Tag", mkMaster, dispIntern},
	idTargets:         {"Targets", mkMaster, dispIntern},
	idTargetTypeValue: {"TargetTypeValue", mkUnsigned, dispIntern},
	idTargetType:      {"TargetType", mkString, dispIntern},
	idTagTrackUID:     {"TagTrackUID", mkUnsigned, dispIntern},
	idSimpleTag:       {"SimpleTag", mkMaster, dispIntern},
	idTagName:         {"TagName", mkUTF8, dispIntern},
	idTagLanguage:     {"TagLanguage", mkString, dispIntern},
	idTagDefault:      {"TagDefault", mkUnsigned, dispIntern},
	idTagString:       {"TagString", mkUTF8, dispIntern},
	idTagBinary:       {"TagBinary", mkBinary, dispIntern},
}

// TrackType is the enum TrackType decodes into, spec.md §4.10.
type TrackType uint8

const (
	TrackTypeVideo    TrackType = 1
	TrackTypeAudio    TrackType = 2
	TrackTypeComplex  TrackType = 3
	TrackTypeLogo     TrackType = 16
	TrackTypeSubtitle TrackType = 17
	TrackTypeButtons  TrackType = 18
	TrackTypeControl  TrackType = 32
	TrackTypeMetadata TrackType = 33
)
