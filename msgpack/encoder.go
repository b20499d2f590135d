package msgpack

import (
	"encoding/binary"
	"math"
)

// Wire tag bytes. Lengths and numeric payloads are big-endian.
const (
	tagNil     = 0xc0
	tagFalse   = 0xc2
	tagTrue    = 0xc3
	tagBin8    = 0xc4
	tagBin16   = 0xc5
	tagBin32   = 0xc6
	tagFloat32 = 0xca
	tagFloat64 = 0xcb
	tagUint8   = 0xcc
	tagUint16  = 0xcd
	tagUint32  = 0xce
	tagUint64  = 0xcf
	tagInt8    = 0xd0
	tagInt16   = 0xd1
	tagInt32   = 0xd2
	tagInt64   = 0xd3
	tagStr8    = 0xd9
	tagStr16   = 0xda
	tagStr32   = 0xdb
	tagArray16 = 0xdc
	tagArray32 = 0xdd
	tagMap16   = 0xde
	tagMap32   = 0xdf

	fixmapTag   = 0x80 // 0x80-0x8f
	fixarrayTag = 0x90 // 0x90-0x9f
	fixstrTag   = 0xa0 // 0xa0-0xbf
	negFixintlo = 0xe0 // 0xe0-0xff

	fixstrMax   = 31
	fixLenMax   = 15
	negFixedMin = -32
)

// Encoder appends encoded Values to an in-memory buffer. The zero
// Encoder is ready to use.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty Encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the accumulated output
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Reset discards accumulated output, retaining the buffer
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Encode appends the canonical shortest-width encoding of v. It never
// fails for a well-formed Value.
func (e *Encoder) Encode(v Value) {
	switch v.kind {
	case KindNil:
		e.buf = append(e.buf, tagNil)
	case KindBool:
		if v.num != 0 {
			e.buf = append(e.buf, tagTrue)
		} else {
			e.buf = append(e.buf, tagFalse)
		}
	case KindInt:
		e.encodeInt(int64(v.num))
	case KindUint:
		e.encodeUint(v.num)
	case KindFloat32:
		e.buf = append(e.buf, tagFloat32)
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(v.num))
	case KindFloat64:
		e.buf = append(e.buf, tagFloat64)
		e.buf = binary.BigEndian.AppendUint64(e.buf, v.num)
	case KindString:
		e.encodeStrHeader(len(v.str))
		e.buf = append(e.buf, v.str...)
	case KindBinary:
		e.encodeBinHeader(len(v.bin))
		e.buf = append(e.buf, v.bin...)
	case KindArray:
		e.encodeArrayHeader(len(v.arr))
		for _, elem := range v.arr {
			e.Encode(elem)
		}
	case KindMap:
		e.encodeMapHeader(len(v.entries))
		for _, entry := range v.entries {
			e.encodeStrHeader(len(entry.Key))
			e.buf = append(e.buf, entry.Key...)
			e.Encode(entry.Val)
		}
	}
}

// encodeUint picks the shortest unsigned form
func (e *Encoder) encodeUint(u uint64) {
	switch {
	case u <= 0x7f:
		e.buf = append(e.buf, byte(u))
	case u <= math.MaxUint8:
		e.buf = append(e.buf, tagUint8, byte(u))
	case u <= math.MaxUint16:
		e.buf = append(e.buf, tagUint16)
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(u))
	case u <= math.MaxUint32:
		e.buf = append(e.buf, tagUint32)
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(u))
	default:
		e.buf = append(e.buf, tagUint64)
		e.buf = binary.BigEndian.AppendUint64(e.buf, u)
	}
}

// encodeInt picks the shortest form. Non-negative values collapse to
// the unsigned forms, matching the canonical compact encoding.
func (e *Encoder) encodeInt(i int64) {
	if i >= 0 {
		e.encodeUint(uint64(i))
		return
	}
	switch {
	case i >= negFixedMin:
		e.buf = append(e.buf, byte(i))
	case i >= math.MinInt8:
		e.buf = append(e.buf, tagInt8, byte(i))
	case i >= math.MinInt16:
		e.buf = append(e.buf, tagInt16)
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(i))
	case i >= math.MinInt32:
		e.buf = append(e.buf, tagInt32)
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(i))
	default:
		e.buf = append(e.buf, tagInt64)
		e.buf = binary.BigEndian.AppendUint64(e.buf, uint64(i))
	}
}

func (e *Encoder) encodeStrHeader(n int) {
	switch {
	case n <= fixstrMax:
		e.buf = append(e.buf, fixstrTag|byte(n))
	case n <= math.MaxUint8:
		e.buf = append(e.buf, tagStr8, byte(n))
	case n <= math.MaxUint16:
		e.buf = append(e.buf, tagStr16)
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(n))
	default:
		e.buf = append(e.buf, tagStr32)
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(n))
	}
}

func (e *Encoder) encodeBinHeader(n int) {
	switch {
	case n <= math.MaxUint8:
		e.buf = append(e.buf, tagBin8, byte(n))
	case n <= math.MaxUint16:
		e.buf = append(e.buf, tagBin16)
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(n))
	default:
		e.buf = append(e.buf, tagBin32)
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(n))
	}
}

func (e *Encoder) encodeArrayHeader(n int) {
	switch {
	case n <= fixLenMax:
		e.buf = append(e.buf, fixarrayTag|byte(n))
	case n <= math.MaxUint16:
		e.buf = append(e.buf, tagArray16)
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(n))
	default:
		e.buf = append(e.buf, tagArray32)
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(n))
	}
}

func (e *Encoder) encodeMapHeader(n int) {
	switch {
	case n <= fixLenMax:
		e.buf = append(e.buf, fixmapTag|byte(n))
	case n <= math.MaxUint16:
		e.buf = append(e.buf, tagMap16)
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(n))
	default:
		e.buf = append(e.buf, tagMap32)
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(n))
	}
}

// Marshal encodes a single Value to a fresh byte slice
func Marshal(v Value) []byte {
	var e Encoder
	e.Encode(v)
	return e.Bytes()
}
