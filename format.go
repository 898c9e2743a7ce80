package stash

// Format names a file format handled by this package.
// It is attached to every emitted signal.
type Format string

const (
	// FormatText is UTF-8 text with '\n' line terminators.
	FormatText Format = "text"

	// FormatJSON is a single indented JSON object.
	FormatJSON Format = "json"

	// FormatJSONL is one compact JSON object per line.
	FormatJSONL Format = "jsonl"

	// FormatYAML is a single YAML mapping.
	FormatYAML Format = "yaml"

	// FormatBinary is a codec payload inside the stash envelope.
	FormatBinary Format = "binary"
)
