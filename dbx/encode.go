package dbx

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/frankelstner/fbassets/encoding"
	"github.com/frankelstner/fbassets/internal/pool"
	"github.com/frankelstner/fbassets/section"
)

// ErrInvalidNumber is wrapped into the error Encode returns when a
// numeric attribute's text content can't be parsed under its field's
// dispatch rule (HALVES, DOUBLES, HASHES, or the general int32/float32
// heuristic).
var ErrInvalidNumber = errors.New("dbx: invalid numeric content")

// Encode parses dbx's XML textual form back into binary dbx bytes.
//
// Returns (nil, nil) if xmlData does not start with the expected XML
// prolog — this is not an error, it means the input is of a different
// kind. A malformed or unparsable line aborts the encode and returns a
// wrapped error naming the offending field and token.
func Encode(xmlData []byte) ([]byte, error) {
	prolog := []byte(section.DBXXMLProlog)
	if !bytes.HasPrefix(xmlData, prolog) {
		return nil, nil
	}

	d := newDict()
	payload := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(payload)

	body := xmlData[len(prolog):]
	for _, rawLine := range bytes.Split(body, []byte("\n")) {
		line := string(rawLine)
		trimmed := strings.Trim(line, "\r\n\t ")
		if trimmed == "" {
			continue
		}

		towrite, err := readLine(line, d)
		if err != nil {
			return nil, fmt.Errorf("dbx: encode line %q: %w", trimmed, err)
		}
		payload.MustWrite(towrite)
	}

	return assembleDBX(d, payload.Bytes()), nil
}

func assembleDBX(d *dict, payload []byte) []byte {
	strs := d.strings()

	var stringsBlob []byte
	for _, s := range strs {
		stringsBlob = append(stringsBlob, []byte(s)...)
		stringsBlob = append(stringsBlob, 0)
	}

	numStrings := uint32(len(strs))
	relOffset := uint32(4*len(strs)) + uint32(len(stringsBlob))

	hdr := section.DBXHeader{
		TotalOffset: relOffset + 24,
		Zero:        0,
		RelOffset:   relOffset,
		NumStrings:  numStrings,
	}

	out := hdr.Append(nil)

	offset := uint32(0)
	var tmp [4]byte
	for _, s := range strs {
		binary.BigEndian.PutUint32(tmp[:], offset)
		out = append(out, tmp[:]...)
		offset += uint32(len(s)) + 1
	}

	out = append(out, stringsBlob...)
	out = append(out, payload...)

	return out
}

type parsedAttrib struct {
	key, val string
}

// readLine parses one XML line into the bytes it contributes to the dbx
// payload stream. A nil result is always paired with a non-nil error; a
// pure whitespace line has no opening tag and is reported as an error,
// which is why Encode filters those out first.
func readLine(line string, d *dict) ([]byte, error) {
	tagStart := strings.IndexByte(line, '<')
	if tagStart < 0 {
		return nil, fmt.Errorf("no opening tag")
	}
	tagStart++
	tagEnd := strings.IndexByte(line[tagStart:], '>')
	if tagEnd < 0 {
		return nil, fmt.Errorf("no closing angle bracket")
	}
	tagEnd += tagStart

	if line[tagStart] == '/' {
		return []byte{0x00}, nil
	}

	tag := line[tagStart:tagEnd]
	prefixLen := strings.IndexByte(tag, ' ')

	var prefix string
	var attribs []parsedAttrib

	if prefixLen == -1 {
		prefix = strings.Trim(tag, " /")
	} else {
		prefix = tag[:prefixLen]
		attribs = parseAttribs(tag[prefixLen+1:])
	}
	prefixBytes := encoding.PutUvarint(nil, uint64(d.intern(prefix)))

	var attribBytes []byte
	for _, a := range attribs {
		attribBytes = encoding.PutUvarint(attribBytes, uint64(d.intern(a.key)))
		attribBytes = encoding.PutUvarint(attribBytes, uint64(d.intern(a.val)))
	}
	numAttrib := len(attribs)

	if len(tag) > 0 && tag[len(tag)-1] == '/' {
		out := append(prefixBytes, byte(0x20|numAttrib))
		out = append(out, attribBytes...)
		return append(out, 0x00), nil
	}

	contentEnd := strings.LastIndexByte(line[tagEnd+1:], '<')
	if contentEnd == -1 {
		out := append(prefixBytes, byte(0xA0|numAttrib))
		out = append(out, attribBytes...)
		return append(out, 0x00), nil
	}
	contentEnd += tagEnd + 1

	content := line[tagEnd+1 : contentEnd]

	isNamedField := numAttrib == 1 && attribs[0].key == "name" && !TYPE2.has(attribs[0].val)
	if !isNamedField {
		out := append(prefixBytes, byte(0x20|numAttrib))
		out = append(out, attribBytes...)
		out = append(out, encoding.PutUvarint(nil, uint64(d.intern(content)))...)
		return out, nil
	}

	fieldName := attribs[0].val

	switch {
	case content == "true":
		return append(append(prefixBytes, 0x61), append(attribBytes, 0x01, 0x01)...), nil
	case content == "false":
		return append(append(prefixBytes, 0x61), append(attribBytes, 0x01, 0x00)...), nil
	case fieldName == "ChannelCount":
		n, err := strconv.Atoi(content)
		if err != nil {
			return nil, fmt.Errorf("%w: ChannelCount=%q: %v", ErrInvalidNumber, content, err)
		}
		return append(append(prefixBytes, 0x61), append(attribBytes, 0x01, byte(n))...), nil
	}

	if content == "" {
		if EMPTYNUMS.has(fieldName) {
			out := append(prefixBytes, 0x71)
			out = append(out, attribBytes...)
			return append(out, 0x00, 0x04), nil
		}
		out := append(prefixBytes, byte(0x20|numAttrib))
		out = append(out, attribBytes...)
		return append(out, 0x00), nil
	}

	return encodeNumericContent(prefixBytes, attribBytes, numAttrib, fieldName, content, d)
}

func parseAttribs(rest string) []parsedAttrib {
	parts := strings.Split(rest, "\"")
	var attribs []parsedAttrib
	for i := 0; i+1 < len(parts); i += 2 {
		left := strings.TrimSpace(parts[i])
		left = strings.TrimSuffix(left, "=")
		key := strings.TrimSpace(left)
		attribs = append(attribs, parsedAttrib{key: key, val: parts[i+1]})
	}

	return attribs
}

func encodeNumericContent(prefixBytes, attribBytes []byte, numAttrib int, fieldName, content string, d *dict) ([]byte, error) {
	tokens := strings.Split(content, "/")

	var nums []byte
	var numLen byte

	switch {
	case HALVES.has(fieldName):
		numLen = 2
		for _, tok := range tokens {
			v, err := strconv.ParseUint(tok, 10, 16)
			if err != nil {
				return nil, fmt.Errorf("%w: %s=%q: %v", ErrInvalidNumber, fieldName, tok, err)
			}
			var tmp [2]byte
			binary.BigEndian.PutUint16(tmp[:], uint16(v))
			nums = append(nums, tmp[:]...)
		}

	case DOUBLES.has(fieldName):
		numLen = 8
		for _, tok := range tokens {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s=%q: %v", ErrInvalidNumber, fieldName, tok, err)
			}
			var tmp [8]byte
			binary.BigEndian.PutUint64(tmp[:], math.Float64bits(v))
			nums = append(nums, tmp[:]...)
		}

	case HASHES.has(fieldName):
		numLen = 4
		parsed := true
		var buf []byte
		for _, tok := range tokens {
			v, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				parsed = false
				break
			}
			var tmp [4]byte
			binary.BigEndian.PutUint32(tmp[:], uint32(int32(v)))
			buf = append(buf, tmp[:]...)
		}
		if !parsed {
			if fieldName == "Id" {
				out := append(prefixBytes, byte(0x20|numAttrib))
				out = append(out, attribBytes...)
				out = append(out, encoding.PutUvarint(nil, uint64(d.intern(content)))...)
				return out, nil
			}
			return nil, fmt.Errorf("%w: hash field %s=%q", ErrInvalidNumber, fieldName, content)
		}
		nums = buf

	default:
		numLen = 4
		for i, tok := range tokens {
			switch tok {
			case "*zero*":
				nums = append(nums, 0x00, 0x00, 0x00, 0x00)
				continue
			case "*nonzero*":
				nums = append(nums, 0xCD, 0xCD, 0xCD, 0xCD)
				continue
			}

			if v, err := strconv.ParseInt(tok, 10, 32); err == nil {
				iv := int32(v)
				if iv>>24 == 0 || (iv>>23 == 255 || iv>>23 == -1) {
					var tmp [4]byte
					binary.BigEndian.PutUint32(tmp[:], uint32(iv))
					nums = append(nums, tmp[:]...)
					continue
				}
				return nil, fmt.Errorf("%w: %s=%q (token %d out of int32 heuristic range)", ErrInvalidNumber, fieldName, tok, i)
			}

			fv, err := strconv.ParseFloat(tok, 32)
			if err != nil {
				out := append(prefixBytes, byte(0x20|numAttrib))
				out = append(out, attribBytes...)
				out = append(out, encoding.PutUvarint(nil, uint64(d.intern(content)))...)
				return out, nil
			}
			bits := math.Float32bits(float32(fv))
			if bits>>24 == 0 && bits != 0 {
				return nil, fmt.Errorf("%w: %s=%q (float too small)", ErrInvalidNumber, fieldName, tok)
			}
			var tmp [4]byte
			binary.BigEndian.PutUint32(tmp[:], bits)
			nums = append(nums, tmp[:]...)
		}
	}

	count := len(nums) / int(numLen)
	out := append(prefixBytes, 0x71)
	out = append(out, attribBytes...)
	out = encoding.PutUvarint(out, uint64(count))
	out = append(out, numLen)
	out = append(out, nums...)

	return out, nil
}
