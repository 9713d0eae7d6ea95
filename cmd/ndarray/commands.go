package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/serialization"
)

// runInspect prints the header of an array file and, on request, verifies
// the payload and prints the elements.
func runInspect(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	preview := fs.Bool("preview", false, "print the array elements")
	verify := fs.Bool("verify", false, "stream the payload and check its length and checksum")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: inspect takes exactly one file", errUsage)
	}
	path := fs.Arg(0)
	entry := log.WithField("file", path)

	h, err := inspectHeader(path, *verify)
	if err != nil {
		return err
	}
	entry.WithFields(logrus.Fields{
		"dtype": h.DType,
		"shape": h.Shape(),
		"order": h.ByteOrder(),
	}).Debug("header read")

	printHeader(stdout, path, &h, *verify)
	if !*preview {
		return nil
	}
	text, err := previewArray(path, h.DType)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, text)
	return nil
}

func inspectHeader(path string, verify bool) (serialization.Header, error) {
	//nolint:gosec // G304: File path comes from the command line
	file, err := os.Open(path)
	if err != nil {
		return serialization.Header{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	r := bufio.NewReader(file)
	if verify {
		return serialization.Verify(r)
	}
	return serialization.ReadHeader(r)
}

func printHeader(w io.Writer, path string, h *serialization.Header, verified bool) {
	checksum := "absent"
	if h.HasChecksum() {
		checksum = fmt.Sprintf("%x", h.Checksum[:])
		if verified {
			checksum += " (ok)"
		}
	}
	fmt.Fprintf(w, "file:      %s\n", path)
	fmt.Fprintf(w, "version:   %d\n", h.Version)
	fmt.Fprintf(w, "dtype:     %s (%d bytes)\n", h.DType, h.ElemSize)
	fmt.Fprintf(w, "shape:     %v\n", h.Shape())
	fmt.Fprintf(w, "order:     %s\n", h.ByteOrder())
	fmt.Fprintf(w, "payload:   %d bytes\n", h.PayloadSize())
	fmt.Fprintf(w, "checksum:  %s\n", checksum)
}

// previewArray loads the file with the element type named by dt and renders it.
func previewArray(path string, dt ndarray.DataType) (string, error) {
	switch dt {
	case ndarray.Bool:
		return render[bool](path)
	case ndarray.Int8:
		return render[int8](path)
	case ndarray.Int16:
		return render[int16](path)
	case ndarray.Int32:
		return render[int32](path)
	case ndarray.Int64:
		return render[int64](path)
	case ndarray.Int:
		return render[int](path)
	case ndarray.Uint8:
		return render[uint8](path)
	case ndarray.Uint16:
		return render[uint16](path)
	case ndarray.Uint32:
		return render[uint32](path)
	case ndarray.Uint64:
		return render[uint64](path)
	case ndarray.Uint:
		return render[uint](path)
	case ndarray.Uintptr:
		return render[uintptr](path)
	case ndarray.Float32:
		return render[float32](path)
	case ndarray.Float64:
		return render[float64](path)
	case ndarray.Complex64:
		return render[complex64](path)
	case ndarray.Complex128:
		return render[complex128](path)
	default:
		return "", fmt.Errorf("cannot preview data type %s", dt)
	}
}

func render[T ndarray.Element](path string) (string, error) {
	m, err := serialization.MapFile[T](path)
	if err != nil {
		return "", err
	}
	defer func() { _ = m.Close() }()
	return m.Array().String(), nil
}

// runConvert re-encodes an array file with a new byte order and checksum setting.
func runConvert(args []string, stdout, stderr io.Writer) (err error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	order := fs.String("order", "native", "payload byte order: little, big or native")
	checksum := fs.Bool("checksum", serialization.DefaultOptions().Checksum, "store a SHA-256 checksum")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: convert takes an input and an output file", errUsage)
	}
	byteOrder, err := parseOrder(*order)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	in, out := fs.Arg(0), fs.Arg(1)
	if in == out {
		return fmt.Errorf("%w: input and output must differ", errUsage)
	}

	opts := serialization.Options{ByteOrder: byteOrder, Checksum: *checksum}
	h, err := convertFile(in, out, opts)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"in":       in,
		"out":      out,
		"dtype":    h.DType,
		"shape":    h.Shape(),
		"order":    h.ByteOrder(),
		"checksum": h.HasChecksum(),
	}).Info("converted")
	fmt.Fprintf(stdout, "%s -> %s (%s, %s, %d bytes)\n", in, out, h.ByteOrder(), h.Shape(), h.PayloadSize())
	return nil
}

func convertFile(in, out string, opts serialization.Options) (h serialization.Header, err error) {
	src, err := serialization.Open(in)
	if err != nil {
		return h, err
	}
	defer func() { _ = src.Close() }()

	//nolint:gosec // G304: File path comes from the command line
	dst, err := os.Create(out)
	if err != nil {
		return h, fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", closeErr)
		}
		if err != nil {
			_ = os.Remove(out)
		}
	}()

	bw := bufio.NewWriter(dst)
	h, err = serialization.Reencode(bufio.NewReader(src), bw, opts)
	if err != nil {
		return h, err
	}
	if err := bw.Flush(); err != nil {
		return h, fmt.Errorf("failed to flush output: %w", err)
	}
	return h, nil
}
