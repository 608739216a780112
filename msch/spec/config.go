package spec

import (
	"errors"
	"fmt"
	"math"
)

// Tag identifies the shape of a tile config payload. The tag byte fully
// determines how many payload bytes follow it.
type Tag uint8

const (
	TagNull       Tag = 0
	TagInt        Tag = 1
	TagLong       Tag = 2
	TagFloat      Tag = 3
	TagString     Tag = 4
	TagContent    Tag = 5
	TagIntArray   Tag = 6
	TagPoint      Tag = 7
	TagPointArray Tag = 8
	TagBool       Tag = 10
	TagDouble     Tag = 11
	TagBuilding   Tag = 12
	TagByteArray  Tag = 14
	TagBoolArray  Tag = 16
	TagUnit       Tag = 17
)

var ErrUnknownConfigTag = errors.New("msch: unknown config tag")

// Config is one tile's typed configuration payload. The dynamic type
// determines the wire tag; DecodeConfig and EncodeConfig are exhaustive
// over the closed set of implementations below.
type Config interface {
	Tag() Tag
}

type Null struct{}
type Int int32
type Long int64
type Float float32

// String is nullable text. Valid=false encodes the explicit null marker,
// which is distinct from an absent config (Null).
type String struct {
	Value string
	Valid bool
}

// Content references a game content entry by category and id.
type Content struct {
	Type uint8
	ID   int16
}

type IntArray []int32
type PointArray []Point
type Bool bool
type Double float64

// Building is the packed position of a referenced structure.
type Building Point

type ByteArray []byte
type BoolArray []bool

// Unit is a unit-type id.
type Unit int32

func (Null) Tag() Tag       { return TagNull }
func (Int) Tag() Tag        { return TagInt }
func (Long) Tag() Tag       { return TagLong }
func (Float) Tag() Tag      { return TagFloat }
func (String) Tag() Tag     { return TagString }
func (Content) Tag() Tag    { return TagContent }
func (IntArray) Tag() Tag   { return TagIntArray }
func (Point) Tag() Tag      { return TagPoint }
func (PointArray) Tag() Tag { return TagPointArray }
func (Bool) Tag() Tag       { return TagBool }
func (Double) Tag() Tag     { return TagDouble }
func (Building) Tag() Tag   { return TagBuilding }
func (ByteArray) Tag() Tag  { return TagByteArray }
func (BoolArray) Tag() Tag  { return TagBoolArray }
func (Unit) Tag() Tag       { return TagUnit }

// DecodeConfig reads one tag byte and the payload it implies. A tag
// outside the known set fails with ErrUnknownConfigTag without consuming
// any payload bytes.
func DecodeConfig(c *Cursor) (Config, error) {
	tag := Tag(c.U8())
	if err := c.Err(); err != nil {
		return nil, err
	}
	cfg, known := readPayload(c, tag)
	if !known {
		return nil, fmt.Errorf("%w: %d", ErrUnknownConfigTag, tag)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readPayload(c *Cursor, tag Tag) (Config, bool) {
	switch tag {
	case TagNull:
		return Null{}, true
	case TagInt:
		return Int(c.I32()), true
	case TagLong:
		return Long(c.I64()), true
	case TagFloat:
		return Float(c.F32()), true
	case TagString:
		if !c.Bool() {
			return String{}, true
		}
		return String{Value: c.UTF(), Valid: true}, true
	case TagContent:
		t := c.U8()
		return Content{Type: t, ID: c.I16()}, true
	case TagIntArray:
		out := make(IntArray, c.U16())
		for i := range out {
			out[i] = c.I32()
		}
		return out, true
	case TagPoint:
		return UnpackPoint(c.I32()), true
	case TagPointArray:
		out := make(PointArray, c.U8())
		for i := range out {
			out[i] = UnpackPoint(c.I32())
		}
		return out, true
	case TagBool:
		return Bool(c.Bool()), true
	case TagDouble:
		return Double(c.F64()), true
	case TagBuilding:
		return Building(UnpackPoint(c.I32())), true
	case TagByteArray:
		return ByteArray(c.Bytes(int(c.U32()))), true
	case TagBoolArray:
		b := c.Bytes(int(c.U32()))
		out := make(BoolArray, len(b))
		for i, v := range b {
			out[i] = v != 0
		}
		return out, true
	case TagUnit:
		return Unit(c.I32()), true
	}
	return nil, false
}

// EncodeConfig writes the tag byte implied by the config's dynamic type,
// then its payload. A nil config encodes as Null.
func EncodeConfig(c *Cursor, cfg Config) error {
	if cfg == nil {
		cfg = Null{}
	}
	c.WriteU8(uint8(cfg.Tag()))
	switch v := cfg.(type) {
	case Null:
	case Int:
		c.WriteI32(int32(v))
	case Long:
		c.WriteI64(int64(v))
	case Float:
		c.WriteF32(float32(v))
	case String:
		c.WriteBool(v.Valid)
		if v.Valid {
			c.WriteUTF(v.Value)
		}
	case Content:
		c.WriteU8(v.Type)
		c.WriteI16(v.ID)
	case IntArray:
		if len(v) > math.MaxUint16 {
			return fmt.Errorf("%w: intarray of %d elements", ErrValueTooLarge, len(v))
		}
		c.WriteU16(uint16(len(v)))
		for _, n := range v {
			c.WriteI32(n)
		}
	case Point:
		c.WriteI32(v.Pack())
	case PointArray:
		if len(v) > math.MaxUint8 {
			return fmt.Errorf("%w: pointarray of %d elements", ErrValueTooLarge, len(v))
		}
		c.WriteU8(uint8(len(v)))
		for _, p := range v {
			c.WriteI32(p.Pack())
		}
	case Bool:
		c.WriteBool(bool(v))
	case Double:
		c.WriteF64(float64(v))
	case Building:
		c.WriteI32(Point(v).Pack())
	case ByteArray:
		if len(v) > math.MaxInt32 {
			return fmt.Errorf("%w: bytearray of %d bytes", ErrValueTooLarge, len(v))
		}
		c.WriteU32(uint32(len(v)))
		c.WriteBytes(v)
	case BoolArray:
		if len(v) > math.MaxInt32 {
			return fmt.Errorf("%w: booleanarray of %d elements", ErrValueTooLarge, len(v))
		}
		c.WriteU32(uint32(len(v)))
		for _, b := range v {
			c.WriteBool(b)
		}
	case Unit:
		c.WriteI32(int32(v))
	default:
		return fmt.Errorf("%w: %T", ErrUnknownConfigTag, cfg)
	}
	return nil
}
