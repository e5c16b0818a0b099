package crs

import (
	"archive/zip"
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arzela/groth-sahai/matrix"
	"github.com/arzela/groth-sahai/pairing"
)

// Archive entry names within a CRS zip file.
const (
	entryParams = "params"
	entryG      = "G"
	entryH      = "H"
	entryU1     = "u1"
	entryU2     = "u2"
	entryV1     = "v1"
	entryV2     = "v2"
)

// WriteZip serialises the CRS as a zip archive: a "params" entry holding
// curve_key and u1_size/u2_size/v1_size/v2_size as key=value lines, and one
// entry per generator/commitment-key column, each the field's fixed-width
// encoding.
func (c *CRS) WriteZip(w io.Writer) error {
	zw := zip.NewWriter(w)

	params := encodeParams(c.CurveKey, len(c.u1.Bytes()), len(c.u2.Bytes()), len(c.v1.Bytes()), len(c.v2.Bytes()))
	if err := writeEntry(zw, entryParams, params); err != nil {
		return err
	}
	if err := writeEntry(zw, entryG, c.g.Bytes()); err != nil {
		return err
	}
	if err := writeEntry(zw, entryH, c.h.Bytes()); err != nil {
		return err
	}
	if err := writeEntry(zw, entryU1, c.u1.Bytes()); err != nil {
		return err
	}
	if err := writeEntry(zw, entryU2, c.u2.Bytes()); err != nil {
		return err
	}
	if err := writeEntry(zw, entryV1, c.v1.Bytes()); err != nil {
		return err
	}
	if err := writeEntry(zw, entryV2, c.v2.Bytes()); err != nil {
		return err
	}

	return zw.Close()
}

// params holds the text properties carried in the "params" archive entry.
type params struct {
	curveKey                       string
	u1Size, u2Size, v1Size, v2Size int
}

func encodeParams(curveKey string, u1Size, u2Size, v1Size, v2Size int) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "curve_key=%s\n", curveKey)
	fmt.Fprintf(&buf, "u1_size=%d\n", u1Size)
	fmt.Fprintf(&buf, "u2_size=%d\n", u2Size)
	fmt.Fprintf(&buf, "v1_size=%d\n", v1Size)
	fmt.Fprintf(&buf, "v2_size=%d\n", v2Size)
	return buf.Bytes()
}

func decodeParams(data []byte) (params, error) {
	var p params
	fields := map[string]*string{"curve_key": &p.curveKey}
	sizes := map[string]*int{"u1_size": &p.u1Size, "u2_size": &p.u2Size, "v1_size": &p.v1Size, "v2_size": &p.v2Size}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return params{}, fmt.Errorf("%w: malformed params line %q", ErrArchiveFormat, line)
		}
		if dst, ok := fields[key]; ok {
			*dst = value
			continue
		}
		if dst, ok := sizes[key]; ok {
			n, err := strconv.Atoi(value)
			if err != nil {
				return params{}, fmt.Errorf("%w: params key %q: %v", ErrArchiveFormat, key, err)
			}
			*dst = n
			continue
		}
	}
	if err := sc.Err(); err != nil {
		return params{}, fmt.Errorf("%w: %v", ErrArchiveFormat, err)
	}
	if p.curveKey == "" {
		return params{}, fmt.Errorf("%w: missing curve_key", ErrArchiveFormat)
	}
	return p, nil
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("crs: WriteZip: creating entry %q: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("crs: WriteZip: writing entry %q: %w", name, err)
	}
	return nil
}

// ReadZip decodes a CRS archive produced by WriteZip.
func ReadZip(r io.ReaderAt, size int64) (*CRS, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("crs: ReadZip: %w", err)
	}
	entries := map[string][]byte{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("crs: ReadZip: opening entry %q: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("crs: ReadZip: reading entry %q: %w", f.Name, err)
		}
		entries[f.Name] = data
	}

	rawParams, ok := entries[entryParams]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrArchiveFormat, entryParams)
	}
	p, err := decodeParams(rawParams)
	if err != nil {
		return nil, err
	}
	pr, err := pairing.Lookup(p.curveKey)
	if err != nil {
		return nil, fmt.Errorf("crs: ReadZip: %w", err)
	}

	g := pr.G1().NewElement()
	if err := decodeEntryOrDefault(entries, entryG, g, pr.G1()); err != nil {
		return nil, err
	}
	h := pr.G2().NewElement()
	if err := decodeEntryOrDefault(entries, entryH, h, pr.G2()); err != nil {
		return nil, err
	}

	u1, err := decodeSizedColumn(entries, entryU1, pr.G1(), p.u1Size)
	if err != nil {
		return nil, err
	}
	u2, err := decodeSizedColumn(entries, entryU2, pr.G1(), p.u2Size)
	if err != nil {
		return nil, err
	}
	v1, err := decodeSizedColumn(entries, entryV1, pr.G2(), p.v1Size)
	if err != nil {
		return nil, err
	}
	v2, err := decodeSizedColumn(entries, entryV2, pr.G2(), p.v2Size)
	if err != nil {
		return nil, err
	}

	return &CRS{
		CurveKey: p.curveKey,
		pr:       pr,
		g:        g,
		h:        h,
		u1:       u1,
		u2:       u2,
		v1:       v1,
		v2:       v2,
	}, nil
}

// decodeEntryOrDefault decodes a G/H entry, defaulting to field.One() when
// the entry is absent so archives written before this scheme carried G/H
// remain loadable.
func decodeEntryOrDefault(entries map[string][]byte, name string, into pairing.Element, field pairing.Field) error {
	data, ok := entries[name]
	if !ok {
		one := field.One()
		if err := into.SetBytes(one.Bytes()); err != nil {
			return fmt.Errorf("crs: ReadZip: defaulting %q: %w", name, err)
		}
		return nil
	}
	if err := into.SetBytes(data); err != nil {
		return fmt.Errorf("crs: ReadZip: decoding %q: %w", name, err)
	}
	return nil
}

// decodeSizedColumn decodes a mandatory u1/u2/v1/v2 column, hard-failing if
// the entry is absent or its length disagrees with the params entry's
// recorded size.
func decodeSizedColumn(entries map[string][]byte, name string, field pairing.Field, wantSize int) (*matrix.Matrix, error) {
	data, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrArchiveFormat, name)
	}
	if len(data) != wantSize {
		return nil, fmt.Errorf("%w: %q is %d bytes, params declared %d", ErrArchiveFormat, name, len(data), wantSize)
	}
	m := matrix.New(2, 1, field)
	if err := m.SetFromBytes(data); err != nil {
		return nil, fmt.Errorf("crs: ReadZip: decoding %q: %w", name, err)
	}
	return m, nil
}

// WriteZipFile writes the CRS archive to path, creating or truncating it.
func WriteZipFile(c *CRS, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crs: WriteZipFile: %w", err)
	}
	defer f.Close()
	return c.WriteZip(f)
}

// ReadZipFile reads a CRS archive from path.
func ReadZipFile(path string) (*CRS, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("crs: ReadZipFile: %w", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("crs: ReadZipFile: %w", err)
	}
	return ReadZip(f, info.Size())
}
