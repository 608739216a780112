package spec

// Wire format framing: ASCII magic, one version byte, then the
// zlib-compressed body.
const (
	Magic   = "msch"
	Version = 1

	HeaderLength = len(Magic) + 1

	// MaxSize bounds schematic width and height.
	MaxSize = 128
)
