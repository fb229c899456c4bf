package simplevec

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// WriteVectors serializes vs in a little-endian binary format.
//
// The stream starts with the dimension and the number of vectors as uint32
// values, followed by every element as a float64. Integer elements beyond
// 2^53 in magnitude lose precision.
func WriteVectors[T Number, A Array[T]](w io.Writer, vs []Vector[T, A]) error {
	header := []uint32{uint32(Dims[T, A]()), uint32(len(vs))}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return errors.Wrap(err, "write vectors")
	}
	buf := make([]float64, Dims[T, A]())
	for _, v := range vs {
		Transform(SequentialPolicy, v.Slice(), buf, CastInvokeResult[float64](identity[T]))
		if err := binary.Write(w, binary.LittleEndian, buf); err != nil {
			return errors.Wrap(err, "write vectors")
		}
	}
	return nil
}

// ReadVectors reads the output written by WriteVectors.
//
// The stored dimension must match the dimension of A.
func ReadVectors[T Number, A Array[T]](r io.Reader) ([]Vector[T, A], error) {
	var header [2]uint32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(err, "read vectors")
	}
	if dims := Dims[T, A](); int(header[0]) != dims {
		return nil, errors.Errorf("read vectors: expected %d dimensions but got %d",
			dims, header[0])
	}
	res := make([]Vector[T, A], 0, min(int(header[1]), 1<<16))
	buf := make([]float64, header[0])
	for i := 0; i < int(header[1]); i++ {
		if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
			return nil, errors.Wrapf(err, "read vectors: vector %d", i)
		}
		var v Vector[T, A]
		Transform(SequentialPolicy, buf, v.Slice(), CastInvokeResult[T](identity[float64]))
		res = append(res, v)
	}
	return res, nil
}

// Load opens the file at path and decodes it with readFn.
func Load[T any](path string, readFn func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "load")
	}
	defer f.Close()
	return readFn(f)
}

// Save creates the file at path and encodes obj into it with writeFn.
func Save[T any](path string, obj T, writeFn func(io.Writer, T) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save")
	}
	if err := writeFn(f, obj); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "save")
}
