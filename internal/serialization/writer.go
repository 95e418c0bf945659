package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/google/uuid"

	"github.com/born-ml/neurosym/internal/kb"
)

// Encode writes a snapshot of base to w and returns the snapshot id.
//
// Relations are written in alphabetical order by name (SafeTensors
// requirement).
func Encode(w io.Writer, base *kb.KnowledgeBase) (string, error) {
	if base == nil {
		return "", fmt.Errorf("encode: knowledge base is nil")
	}

	facts, err := json.Marshal(base.Facts())
	if err != nil {
		return "", fmt.Errorf("failed to marshal facts: %w", err)
	}

	n := base.FactCount()
	size := int64(n * n * float64ByteLen)
	names := base.RelationNames()
	data := make([]byte, 0, int64(len(names))*size)

	header := make(map[string]any, len(names)+1)
	var offset int64
	for _, name := range names {
		if err := ValidateTensorName(tensorName(name)); err != nil {
			return "", err
		}
		rel, err := base.Relation(name)
		if err != nil {
			return "", err
		}
		for _, v := range rel.Data() {
			data = binary.LittleEndian.AppendUint64(data, math.Float64bits(v))
		}

		header[tensorName(name)] = SafeTensorHeader{
			DType:       DTypeFloat64,
			Shape:       []int64{int64(n), int64(n)},
			DataOffsets: [2]int64{offset, offset + size},
		}
		offset += size
	}

	id := uuid.NewString()
	header[metadataKey] = map[string]string{
		MetaFormat:     FormatName,
		MetaVersion:    FormatVersion,
		MetaFacts:      string(facts),
		MetaSnapshotID: id,
		MetaChecksum:   ComputeChecksum(data),
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return "", fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return "", fmt.Errorf("failed to write tensor data: %w", err)
	}

	return id, nil
}

// WriteFile writes a snapshot of base to path and returns the snapshot id.
func WriteFile(path string, base *kb.KnowledgeBase) (id string, err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for snapshots
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	return Encode(file, base)
}
