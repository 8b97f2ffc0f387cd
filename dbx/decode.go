package dbx

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/frankelstner/fbassets/encoding"
	"github.com/frankelstner/fbassets/internal/pool"
	"github.com/frankelstner/fbassets/section"
)

const indentUnit = "\t"

// Decode renders a binary dbx file as its XML textual form.
//
// Returns (nil, nil) if data does not start with the dbx magic — this is
// not an error, it means the input is of a different kind. A truncated or
// malformed payload aborts decoding for this file and also returns
// (nil, nil), mirroring the original tool's bare-except policy: a partial
// or corrupted dbx is treated as unconvertible rather than reported.
func Decode(data []byte) ([]byte, error) {
	c := encoding.NewCursor(data)

	hdr, ok, err := section.ReadDBXHeader(c)
	if err != nil || !ok {
		return nil, nil
	}

	strs, cleanup, err := readStringPool(c, int(hdr.NumStrings), int(hdr.RelOffset))
	if err != nil {
		return nil, nil
	}
	defer cleanup()

	out := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(out)
	out.MustWrite([]byte(section.DBXXMLProlog))

	if err := decodePayload(c, strs, out); err != nil {
		return nil, nil
	}

	result := make([]byte, out.Len())
	copy(result, out.Bytes())

	return result, nil
}

// readStringPool reads the string-offset table and the concatenated
// null-terminated strings that follow it. The returned slice is pulled
// from internal/pool's string slice pool; the caller must invoke the
// returned cleanup function (typically via defer) once done with it.
func readStringPool(c *encoding.Cursor, numStrings, relOffset int) ([]string, func(), error) {
	offsets := make([]uint32, numStrings)
	for i := range offsets {
		raw, err := c.Read(4)
		if err != nil {
			return nil, nil, err
		}
		offsets[i] = binary.BigEndian.Uint32(raw)
	}

	lengths := make([]int, numStrings)
	for i := 0; i < numStrings-1; i++ {
		lengths[i] = int(offsets[i+1] - offsets[i])
	}
	if numStrings > 0 {
		lengths[numStrings-1] = relOffset - 4*numStrings - int(offsets[numStrings-1])
	}

	strs, cleanup := pool.GetStringSlice(numStrings)
	for i, l := range lengths {
		if l < 0 {
			cleanup()
			return nil, nil, fmt.Errorf("dbx: negative string length")
		}
		raw, err := c.Read(l)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		if len(raw) > 0 && raw[len(raw)-1] == 0 {
			raw = raw[:len(raw)-1]
		}
		strs[i] = string(raw)
	}

	return strs, cleanup, nil
}

type attrib struct {
	key, val string
}

func decodePayload(c *encoding.Cursor, strs []string, out *pool.ByteBuffer) error {
	level := 0
	var openTags []string

	lookup := func(idx uint64) (string, error) {
		if idx >= uint64(len(strs)) {
			return "", fmt.Errorf("dbx: string index %d out of range", idx)
		}
		return strs[idx], nil
	}

	for {
		prefixIdx, err := c.ReadUvarint()
		if err != nil {
			return err
		}
		if prefixIdx == 0 {
			if len(openTags) == 0 {
				return fmt.Errorf("dbx: unbalanced container close")
			}
			level--
			tag := openTags[len(openTags)-1]
			openTags = openTags[:len(openTags)-1]
			writeIndent(out, level)
			out.MustWrite([]byte("</" + tag + ">\r\n"))
			if level == 0 && len(openTags) == 0 && c.Len() == 0 {
				return nil
			}
			continue
		}

		prefix, err := lookup(prefixIdx)
		if err != nil {
			return err
		}

		typeByte, err := c.ReadByte()
		if err != nil {
			return err
		}
		hi := typeByte >> 4
		numAttrib := int(typeByte & 0x0f)

		attribs := make([]attrib, numAttrib)
		for i := range attribs {
			keyIdx, err := c.ReadUvarint()
			if err != nil {
				return err
			}
			valIdx, err := c.ReadUvarint()
			if err != nil {
				return err
			}
			key, err := lookup(keyIdx)
			if err != nil {
				return err
			}
			val, err := lookup(valIdx)
			if err != nil {
				return err
			}
			attribs[i] = attrib{key, val}
		}

		openTag := buildOpenTag(prefix, attribs)

		switch hi {
		case 0xA:
			if _, err := c.ReadByte(); err != nil {
				return err
			}
			writeIndent(out, level)
			out.MustWrite([]byte(openTag + ">\r\n"))
			openTags = append(openTags, prefix)
			level++

		case 0x2:
			contentIdx, err := c.ReadUvarint()
			if err != nil {
				return err
			}
			content, err := lookup(contentIdx)
			if err != nil {
				return err
			}
			writeIndent(out, level)
			if content == "" {
				out.MustWrite([]byte(openTag + " />\r\n"))
			} else {
				out.MustWrite([]byte(openTag + ">" + content + "</" + prefix + ">\r\n"))
			}

		case 0x7:
			content, err := decodeNumericVector(c, attribs)
			if err != nil {
				return err
			}
			writeIndent(out, level)
			out.MustWrite([]byte(openTag + ">" + content + "</" + prefix + ">\r\n"))

		default:
			if _, err := c.ReadByte(); err != nil {
				return err
			}
			b, err := c.ReadByte()
			if err != nil {
				return err
			}
			var content string
			switch b {
			case 0x01:
				content = "true"
			case 0x00:
				content = "false"
			default:
				content = strconv.Itoa(int(b))
			}
			writeIndent(out, level)
			out.MustWrite([]byte(openTag + ">" + content + "</" + prefix + ">\r\n"))
		}

		if level == 0 && c.Len() == 0 {
			return nil
		}
	}
}

func writeIndent(out *pool.ByteBuffer, level int) {
	for i := 0; i < level; i++ {
		out.MustWrite([]byte(indentUnit))
	}
}

func buildOpenTag(prefix string, attribs []attrib) string {
	if len(attribs) == 0 {
		return "<" + prefix
	}
	s := "<" + prefix + " "
	for i, a := range attribs {
		if i > 0 {
			s += " "
		}
		s += a.key + "=\"" + a.val + "\""
	}

	return s
}

func decodeNumericVector(c *encoding.Cursor, attribs []attrib) (string, error) {
	numOfNums, err := c.ReadUvarint()
	if err != nil {
		return "", err
	}
	numLen, err := c.ReadUvarint()
	if err != nil {
		return "", err
	}

	fieldName := ""
	if len(attribs) > 0 {
		fieldName = attribs[0].val
	}

	switch numLen {
	case 4:
		return decodeWidth4Vector(c, int(numOfNums), fieldName)
	case 8:
		return decodeWidth8Vector(c, int(numOfNums))
	default:
		return decodeWidth2Vector(c, int(numOfNums))
	}
}

func decodeWidth4Vector(c *encoding.Cursor, n int, fieldName string) (string, error) {
	if n == 0 {
		return "", nil
	}

	slots := make([][4]byte, n)
	for i := range slots {
		raw, err := c.Read(4)
		if err != nil {
			return "", err
		}
		copy(slots[i][:], raw)
	}

	tokens := make([]string, n)

	sentinel := encoding.SentinelNone
	if n%4 == 0 {
		sentinel = encoding.DetectStride4(slots)
	}

	hashes := HASHES.has(fieldName)

	for i, s := range slots {
		if sentinel != encoding.SentinelNone && i%4 == 3 {
			if sentinel == encoding.SentinelZero {
				tokens[i] = "*zero*"
			} else {
				tokens[i] = "*nonzero*"
			}
			continue
		}
		if hashes {
			tokens[i] = strconv.FormatInt(int64(int32(binary.BigEndian.Uint32(s[:]))), 10)
			continue
		}
		tokens[i] = formatWidth4Slot(s)
	}

	return joinSlash(tokens), nil
}

func formatWidth4Slot(s [4]byte) string {
	if encoding.ClassifySlot(s) {
		return strconv.FormatInt(int64(int32(binary.BigEndian.Uint32(s[:]))), 10)
	}

	bits := binary.BigEndian.Uint32(s[:])
	f := math.Float32frombits(bits)

	return encoding.FormatFloat(float64(f))
}

func decodeWidth8Vector(c *encoding.Cursor, n int) (string, error) {
	values, putValues := pool.GetFloat64Slice(n)
	defer putValues()

	for i := 0; i < n; i++ {
		raw, err := c.Read(8)
		if err != nil {
			return "", err
		}
		values[i] = math.Float64frombits(binary.BigEndian.Uint64(raw))
	}

	tokens, putTokens := pool.GetStringSlice(n)
	defer putTokens()
	for i, v := range values {
		tokens[i] = encoding.ReprFloat64(v)
	}

	return joinSlash(tokens), nil
}

func decodeWidth2Vector(c *encoding.Cursor, n int) (string, error) {
	values, putValues := pool.GetUint16Slice(n)
	defer putValues()

	for i := 0; i < n; i++ {
		raw, err := c.Read(2)
		if err != nil {
			return "", err
		}
		values[i] = binary.BigEndian.Uint16(raw)
	}

	tokens, putTokens := pool.GetStringSlice(n)
	defer putTokens()
	for i, v := range values {
		tokens[i] = strconv.FormatUint(uint64(v), 10)
	}

	return joinSlash(tokens), nil
}

func joinSlash(tokens []string) string {
	out := ""
	for i, t := range tokens {
		if i > 0 {
			out += "/"
		}
		out += t
	}

	return out
}
