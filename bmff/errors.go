package bmff

import "errors"

// Structural errors, named after spec.md §7's BMFF error taxonomy.
var (
	ErrWrongFileFormat      = errors.New("boxml/bmff: wrong file format")
	ErrFTYPDuplicated       = errors.New("boxml/bmff: duplicated ftyp")
	ErrFTYPInvalidSize      = errors.New("boxml/bmff: ftyp invalid size")
	ErrHDLRUnexpectedParent = errors.New("boxml/bmff: hdlr unexpected parent")
	ErrHDLRInvalidSize      = errors.New("boxml/bmff: hdlr invalid size")
	ErrCHPLInvalidSize      = errors.New("boxml/bmff: chpl invalid size")
	ErrELSTInvalidSize      = errors.New("boxml/bmff: elst invalid size")
	ErrMDHDUnknownVersion   = errors.New("boxml/bmff: mdhd unknown version")
	ErrMDHDInvalidSize      = errors.New("boxml/bmff: mdhd invalid size")
	ErrMVHDUnknownVersion   = errors.New("boxml/bmff: mvhd unknown version")
	ErrMVHDInvalidSize      = errors.New("boxml/bmff: mvhd invalid size")
	ErrTKHDUnknownVersion   = errors.New("boxml/bmff: tkhd unknown version")
	ErrTKHDInvalidSize      = errors.New("boxml/bmff: tkhd invalid size")
	ErrFileEndedEarly       = errors.New("boxml/bmff: file ended early")
)
