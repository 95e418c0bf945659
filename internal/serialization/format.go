package serialization

import "strings"

// Format constants.
const (
	FormatName     = "neurosym-kb"
	FormatVersion  = "1"
	RelationPrefix = "relation."
	DTypeFloat64   = "F64"
	metadataKey    = "__metadata__"
	float64ByteLen = 8
)

// Metadata keys.
const (
	MetaFormat     = "format"
	MetaVersion    = "version"
	MetaFacts      = "facts"
	MetaSnapshotID = "snapshot_id"
	MetaChecksum   = "checksum"
)

// SafeTensorHeader represents a tensor in the SafeTensors header.
type SafeTensorHeader struct {
	DType       string   `json:"dtype"`
	Shape       []int64  `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"`
}

// Header is the decoded description of a snapshot.
type Header struct {
	SnapshotID string       // Random id assigned when the snapshot was written
	Version    string       // Format version
	Facts      []string     // Vocabulary in index order
	Checksum   string       // Hex SHA-256 of the data section
	Tensors    []TensorMeta // Relation tensors, sorted by name
}

// TensorMeta describes one relation tensor in a snapshot.
type TensorMeta struct {
	Name     string // Tensor name, e.g. "relation.isA"
	Relation string // Relation name, e.g. "isA"
	DType    string // Always "F64"
	Shape    []int  // [n, n]
	Offset   int64  // Offset in the data section
	Size     int64  // Size in bytes
}

func tensorName(relation string) string {
	return RelationPrefix + relation
}

func relationName(tensor string) (string, bool) {
	return strings.CutPrefix(tensor, RelationPrefix)
}
