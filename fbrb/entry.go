package fbrb

// File is one packed or unpacked archive member.
type File struct {
	// Path is a forward-slash relative path. For Pack input, Path carries
	// the caller's on-disk extension, from which the resource type is
	// derived (via restype) unless Ext overrides it. For Unpack output,
	// Path already carries the reconstructed final extension.
	Path string
	// Ext optionally overrides the lowercase extension Pack derives from
	// Path's own suffix. Leave empty to derive from Path.
	Ext string
	Data []byte
}
