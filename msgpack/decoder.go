package msgpack

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/wippyai/actor-codec/errors"
)

// Decoder reads Values from a byte buffer, tracking its position so
// callers can decode several Values in sequence or report the offset of
// a fault.
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder returns a Decoder positioned at the start of data. The
// Decoder aliases data; callers must not mutate it mid-decode.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Offset returns the number of bytes consumed so far
func (d *Decoder) Offset() int {
	return d.pos
}

// Remaining returns the number of unconsumed bytes
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

// Decode reads the next Value. On failure the Decoder position is
// unspecified and the Decoder must not be reused.
func (d *Decoder) Decode() (Value, error) {
	tag, err := d.readByte()
	if err != nil {
		return Value{}, err
	}

	switch {
	case tag <= 0x7f: // positive fixint
		return Uint(uint64(tag)), nil
	case tag >= negFixintlo: // negative fixint
		return Int(int64(int8(tag))), nil
	case tag >= fixmapTag && tag <= 0x8f:
		return d.decodeMap(int(tag & 0x0f))
	case tag >= fixarrayTag && tag <= 0x9f:
		return d.decodeArray(int(tag & 0x0f))
	case tag >= fixstrTag && tag <= 0xbf:
		return d.decodeStr(int(tag & 0x1f))
	}

	switch tag {
	case tagNil:
		return Nil(), nil
	case tagFalse:
		return Bool(false), nil
	case tagTrue:
		return Bool(true), nil
	case tagFloat32:
		b, err := d.readBytes(4)
		if err != nil {
			return Value{}, err
		}
		return Float32(math.Float32frombits(binary.BigEndian.Uint32(b))), nil
	case tagFloat64:
		b, err := d.readBytes(8)
		if err != nil {
			return Value{}, err
		}
		return Float64(math.Float64frombits(binary.BigEndian.Uint64(b))), nil
	case tagUint8, tagUint16, tagUint32, tagUint64:
		u, err := d.readUintPayload(1 << (tag - tagUint8))
		if err != nil {
			return Value{}, err
		}
		return Uint(u), nil
	case tagInt8:
		b, err := d.readBytes(1)
		if err != nil {
			return Value{}, err
		}
		return Int(int64(int8(b[0]))), nil
	case tagInt16:
		b, err := d.readBytes(2)
		if err != nil {
			return Value{}, err
		}
		return Int(int64(int16(binary.BigEndian.Uint16(b)))), nil
	case tagInt32:
		b, err := d.readBytes(4)
		if err != nil {
			return Value{}, err
		}
		return Int(int64(int32(binary.BigEndian.Uint32(b)))), nil
	case tagInt64:
		b, err := d.readBytes(8)
		if err != nil {
			return Value{}, err
		}
		return Int(int64(binary.BigEndian.Uint64(b))), nil
	case tagStr8, tagStr16, tagStr32:
		n, err := d.readLength(1 << (tag - tagStr8))
		if err != nil {
			return Value{}, err
		}
		return d.decodeStr(n)
	case tagBin8, tagBin16, tagBin32:
		n, err := d.readLength(1 << (tag - tagBin8))
		if err != nil {
			return Value{}, err
		}
		b, err := d.readBytes(n)
		if err != nil {
			return Value{}, err
		}
		// copy out so the Value does not alias the input buffer
		bin := make([]byte, n)
		copy(bin, b)
		return Binary(bin), nil
	case tagArray16, tagArray32:
		n, err := d.readLength(2 << (tag - tagArray16))
		if err != nil {
			return Value{}, err
		}
		return d.decodeArray(n)
	case tagMap16, tagMap32:
		n, err := d.readLength(2 << (tag - tagMap16))
		if err != nil {
			return Value{}, err
		}
		return d.decodeMap(n)
	}

	return Value{}, errors.UnknownTag(d.pos-1, tag)
}

func (d *Decoder) decodeStr(n int) (Value, error) {
	start := d.pos
	b, err := d.readBytes(n)
	if err != nil {
		return Value{}, err
	}
	if !utf8.Valid(b) {
		return Value{}, errors.InvalidUTF8(start, b)
	}
	return String(string(b)), nil
}

func (d *Decoder) decodeArray(n int) (Value, error) {
	// an empty buffer cannot satisfy n elements; sizes are checked
	// element by element rather than preallocated from the header so a
	// hostile length cannot force a huge allocation
	elems := make([]Value, 0, min(n, d.Remaining()))
	for i := 0; i < n; i++ {
		elem, err := d.Decode()
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, elem)
	}
	return ArrayOf(elems), nil
}

func (d *Decoder) decodeMap(n int) (Value, error) {
	entries := make([]MapEntry, 0, min(n, d.Remaining()))
	for i := 0; i < n; i++ {
		key, err := d.decodeKey()
		if err != nil {
			return Value{}, err
		}
		val, err := d.Decode()
		if err != nil {
			return Value{}, err
		}
		entries = append(entries, MapEntry{Key: key, Val: val})
	}
	return MapOf(entries), nil
}

// decodeKey reads a map key, which must be a string on this wire
func (d *Decoder) decodeKey() (string, error) {
	start := d.pos
	v, err := d.Decode()
	if err != nil {
		return "", err
	}
	s, ok := v.AsString()
	if !ok {
		return "", errors.New(errors.PhaseDecode, errors.KindMalformedInput).
			Offset(start).
			WireType(v.Kind().String()).
			Detail("map key must be a string").
			Build()
	}
	return s, nil
}

func (d *Decoder) readByte() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, errors.Truncated(d.pos, 1, 0)
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

func (d *Decoder) readBytes(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, errors.Truncated(d.pos, n, d.Remaining())
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// readLength reads a big-endian unsigned length of the given byte width
func (d *Decoder) readLength(width int) (int, error) {
	b, err := d.readBytes(width)
	if err != nil {
		return 0, err
	}
	var n uint64
	for _, c := range b {
		n = n<<8 | uint64(c)
	}
	if n > math.MaxInt32 {
		return 0, errors.New(errors.PhaseDecode, errors.KindMalformedInput).
			Offset(d.pos - width).
			Detail("declared length %d exceeds limit", n).
			Build()
	}
	return int(n), nil
}

// readUintPayload reads a big-endian unsigned integer of the given width
func (d *Decoder) readUintPayload(width int) (uint64, error) {
	b, err := d.readBytes(width)
	if err != nil {
		return 0, err
	}
	var u uint64
	for _, c := range b {
		u = u<<8 | uint64(c)
	}
	return u, nil
}

// Unmarshal decodes exactly one Value from data. Trailing bytes after
// the Value are malformed input: a message payload is one Value.
func Unmarshal(data []byte) (Value, error) {
	d := NewDecoder(data)
	v, err := d.Decode()
	if err != nil {
		return Value{}, err
	}
	if d.Remaining() != 0 {
		return Value{}, errors.New(errors.PhaseDecode, errors.KindMalformedInput).
			Offset(d.Offset()).
			Detail("%d trailing bytes after value", d.Remaining()).
			Build()
	}
	return v, nil
}
