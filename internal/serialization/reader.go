package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/born-ml/neurosym/internal/kb"
	"github.com/born-ml/neurosym/internal/tensor"
)

// Decode reads a snapshot from r and rebuilds the knowledge base.
// opts are passed to kb.New.
func Decode(r io.Reader, opts ...kb.Option) (*kb.KnowledgeBase, *Header, error) {
	header, data, err := readSnapshot(r)
	if err != nil {
		return nil, nil, err
	}

	base, err := kb.New(header.Facts, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: facts: %w", ErrInvalidHeader, err)
	}

	n := len(header.Facts)
	for _, meta := range header.Tensors {
		values := make([]float64, n*n)
		region := data[meta.Offset : meta.Offset+meta.Size]
		for i := range values {
			values[i] = math.Float64frombits(binary.LittleEndian.Uint64(region[i*float64ByteLen:]))
		}

		m, err := tensor.FromSlice(values, tensor.Shape{n, n})
		if err != nil {
			return nil, nil, fmt.Errorf("relation %q: %w", meta.Relation, err)
		}
		if err := base.SetRelation(meta.Relation, m); err != nil {
			return nil, nil, err
		}
	}

	return base, header, nil
}

// ReadFile reads a snapshot file and rebuilds the knowledge base.
func ReadFile(path string, opts ...kb.Option) (*kb.KnowledgeBase, *Header, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for snapshots
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Decode(file, opts...)
}

// ReadHeader reads and validates a snapshot without building the knowledge
// base.
func ReadHeader(r io.Reader) (*Header, error) {
	header, _, err := readSnapshot(r)
	return header, err
}

//nolint:gocognit,gocyclo,cyclop // Header validation is a flat list of checks
func readSnapshot(r io.Reader) (*Header, []byte, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(headerBytes, &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	var meta map[string]string
	if msg, ok := raw[metadataKey]; ok {
		if err := json.Unmarshal(msg, &meta); err != nil {
			return nil, nil, fmt.Errorf("%w: metadata: %w", ErrInvalidHeader, err)
		}
	}
	if meta[MetaFormat] != FormatName {
		return nil, nil, fmt.Errorf("%w: format %q", ErrUnsupportedFormat, meta[MetaFormat])
	}
	if meta[MetaVersion] != FormatVersion {
		return nil, nil, fmt.Errorf("%w: got %q, expected %q", ErrUnsupportedVersion, meta[MetaVersion], FormatVersion)
	}

	header := &Header{
		SnapshotID: meta[MetaSnapshotID],
		Version:    meta[MetaVersion],
		Checksum:   meta[MetaChecksum],
	}
	if err := json.Unmarshal([]byte(meta[MetaFacts]), &header.Facts); err != nil {
		return nil, nil, fmt.Errorf("%w: facts: %w", ErrInvalidHeader, err)
	}

	n := len(header.Facts)
	for name, msg := range raw {
		if name == metadataKey {
			continue
		}
		if err := ValidateTensorName(name); err != nil {
			return nil, nil, err
		}
		relation, ok := relationName(name)
		if !ok {
			return nil, nil, &ValidationError{Err: ErrInvalidTensorName, Tensor: name, Details: "missing relation prefix"}
		}

		var st SafeTensorHeader
		if err := json.Unmarshal(msg, &st); err != nil {
			return nil, nil, fmt.Errorf("%w: tensor %q: %w", ErrInvalidHeader, name, err)
		}
		if st.DType != DTypeFloat64 {
			return nil, nil, &ValidationError{Err: ErrInvalidTensor, Tensor: name,
				Details: fmt.Sprintf("dtype %s, expected %s", st.DType, DTypeFloat64)}
		}
		if len(st.Shape) != 2 || st.Shape[0] != int64(n) || st.Shape[1] != int64(n) {
			return nil, nil, &ValidationError{Err: ErrInvalidTensor, Tensor: name,
				Details: fmt.Sprintf("shape %v, expected [%d %d]", st.Shape, n, n)}
		}
		size := st.DataOffsets[1] - st.DataOffsets[0]
		if size != int64(n*n*float64ByteLen) {
			return nil, nil, &ValidationError{Err: ErrInvalidTensor, Tensor: name,
				Details: fmt.Sprintf("data size %d, expected %d", size, n*n*float64ByteLen)}
		}

		header.Tensors = append(header.Tensors, TensorMeta{
			Name:     name,
			Relation: relation,
			DType:    st.DType,
			Shape:    []int{n, n},
			Offset:   st.DataOffsets[0],
			Size:     size,
		})
	}
	sort.Slice(header.Tensors, func(i, j int) bool {
		return header.Tensors[i].Name < header.Tensors[j].Name
	})

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read tensor data: %w", err)
	}
	if err := ValidateTensorOffsets(header.Tensors, int64(len(data))); err != nil {
		return nil, nil, err
	}
	if header.Checksum != "" {
		if err := ValidateChecksum(data, header.Checksum); err != nil {
			return nil, nil, err
		}
	}

	return header, data, nil
}
