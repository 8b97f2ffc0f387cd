package section

// DBXMagic is the fixed 8-byte prefix of every dbx binary file.
var DBXMagic = [8]byte{'{', 'b', 'i', 'n', 'a', 'r', 'y', '}'}

// DBXHeaderSize is the size in bytes of the fixed portion of a dbx header,
// following the magic: total_offset, zero, rel_offset, num_strings.
const DBXHeaderSize = 16

// DBXXMLProlog is the literal bytes every dbx XML rendering begins with.
const DBXXMLProlog = "<?xml version=\"1.0\"?>\r\n"

// FBRBMagic is the fixed 4-byte prefix of every fbrb archive.
var FBRBMagic = [4]byte{'F', 'b', 'R', 'B'}

// FBRBDirectoryMagic is the version tag at the start of the (gunzipped)
// fbrb directory blob.
const FBRBDirectoryMagic uint32 = 2

// FBRBEntrySize is the size in bytes of one fbrb directory entry record.
const FBRBEntrySize = 24

// FBRBFlagEmptyPayload is the delete_flag value stored when an entry's
// payload_len is 0.
var FBRBFlagEmptyPayload = [4]byte{0x00, 0x00, 0x00, 0x00}

// FBRBFlagNonEmptyPayload is the delete_flag value stored when an entry's
// payload_len is non-zero.
var FBRBFlagNonEmptyPayload = [4]byte{0x00, 0x01, 0x00, 0x00}
