package ebml

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/deepch/boxml/ioprim"
	"github.com/deepch/boxml/tree"
)

// crc32BlockSize is the chunk size spec.md §4.4 names for streaming the
// covered range through the CRC-32 accumulator.
const crc32BlockSize = 4096

// VerifyCRC32 implements spec.md §4.4: when parent's first child is a
// CRC-32 element, recompute the IEEE-802.3 CRC-32 over the bytes from
// immediately after that child through parent's own end, and compare
// against the declared checksum. It is a no-op (nil error) when parent has
// no CRC-32 first child — the check is optional per RFC 8794.
//
// The four-byte CRC-32 payload is stored little-endian on the wire, the
// convention every Matroska/WebM muxer in practice uses even though
// RFC 8794 itself does not mandate a byte order for opaque binary payloads.
func VerifyCRC32(r *ioprim.Reader, parent *tree.Node) error {
	first := parent.FirstChild
	if first == nil || first.TypeID != idCRC32 {
		return nil
	}
	if len(first.Payload.Binary) != 4 {
		return ErrInvalidCRCSize
	}
	declared := binary.LittleEndian.Uint32(first.Payload.Binary)

	savedPos, err := r.Position()
	if err != nil {
		return err
	}

	start := first.End() + 1
	end := parent.End()
	if err := r.SetPosition(start); err != nil {
		return err
	}

	acc := crc32.NewIEEE()
	remaining := end - start + 1
	for remaining > 0 {
		chunkLen := int64(crc32BlockSize)
		if remaining < chunkLen {
			chunkLen = remaining
		}
		chunk, err := r.ReadSlice(int(chunkLen))
		if err != nil {
			return err
		}
		acc.Write(chunk)
		remaining -= int64(len(chunk))
		if int64(len(chunk)) < chunkLen {
			break
		}
	}

	if err := r.SetPosition(savedPos); err != nil {
		return err
	}

	if acc.Sum32() != declared {
		return ErrInvalidCRC
	}
	return nil
}
