package msdocs

// Codec compresses entry descriptions for storage. The full corpus is tens
// of megabytes of text; compressed it redistributes with the plugin at a
// fraction of that.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}
