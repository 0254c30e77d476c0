// Package masterdata importa proveedores y ubicaciones desde exportaciones CSV de otros sistemas.
package masterdata

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/inventory-entries/pkg/dian"
)

// SupplierRow fila del CSV de proveedores: nit;nombre[;activo].
type SupplierRow struct {
	Line   int
	NIT    string
	Name   string
	Active bool
}

// LocationRow fila del CSV de ubicaciones: nombre[;planta].
type LocationRow struct {
	Line             int
	Name             string
	IsProductionSite bool
}

// DecodeReader envuelve r según el charset del archivo. Las exportaciones de hojas de cálculo
// en Windows suelen venir en ISO-8859-1 o Windows-1252.
func DecodeReader(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.ReplaceAll(charset, "_", "-")) {
	case "", "utf-8", "utf8":
		return r, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	}
	return nil, fmt.Errorf("charset no soportado: %q", charset)
}

// ReadSuppliers lee el CSV de proveedores. El NIT debe traer dígito de verificación válido.
func ReadSuppliers(r io.Reader) ([]SupplierRow, error) {
	records, err := readRecords(r, []string{"nit", "nombre"})
	if err != nil {
		return nil, err
	}
	rows := make([]SupplierRow, 0, len(records))
	for _, rec := range records {
		if err := dian.ValidateNITVerificationDigit(rec.get("nit")); err != nil {
			return nil, fmt.Errorf("línea %d: %w", rec.line, err)
		}
		name := rec.get("nombre")
		if name == "" {
			return nil, fmt.Errorf("línea %d: nombre vacío", rec.line)
		}
		active, err := parseBool(rec.get("activo"), true)
		if err != nil {
			return nil, fmt.Errorf("línea %d: activo: %w", rec.line, err)
		}
		rows = append(rows, SupplierRow{
			Line:   rec.line,
			NIT:    dian.NormalizeNIT(rec.get("nit")),
			Name:   name,
			Active: active,
		})
	}
	return rows, nil
}

// ReadLocations lee el CSV de ubicaciones.
func ReadLocations(r io.Reader) ([]LocationRow, error) {
	records, err := readRecords(r, []string{"nombre"})
	if err != nil {
		return nil, err
	}
	rows := make([]LocationRow, 0, len(records))
	for _, rec := range records {
		name := rec.get("nombre")
		if name == "" {
			return nil, fmt.Errorf("línea %d: nombre vacío", rec.line)
		}
		production, err := parseBool(rec.get("planta"), false)
		if err != nil {
			return nil, fmt.Errorf("línea %d: planta: %w", rec.line, err)
		}
		rows = append(rows, LocationRow{Line: rec.line, Name: name, IsProductionSite: production})
	}
	return rows, nil
}

type record struct {
	line   int
	fields map[string]string
}

func (r record) get(col string) string { return r.fields[col] }

// readRecords detecta el separador (';' o ',') en la cabecera y exige las columnas required.
func readRecords(r io.Reader, required []string) ([]record, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(4096)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, err
	}
	firstLine := head
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		firstLine = head[:i]
	}
	cr := csv.NewReader(br)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	if bytes.Count(firstLine, []byte{';'}) > bytes.Count(firstLine, []byte{','}) {
		cr.Comma = ';'
	}

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("archivo vacío")
		}
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}
	for _, req := range required {
		found := false
		for _, c := range cols {
			if c == req {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("falta la columna %q", req)
		}
	}

	var out []record
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		rec := record{line: line, fields: make(map[string]string, len(cols))}
		empty := true
		for i, v := range fields {
			if i >= len(cols) {
				break
			}
			v = norm.NFC.String(strings.TrimSpace(v))
			if v != "" {
				empty = false
			}
			rec.fields[cols[i]] = v
		}
		if !empty {
			out = append(out, rec)
		}
	}
	return out, nil
}

func parseBool(s string, def bool) (bool, error) {
	switch strings.ToLower(s) {
	case "":
		return def, nil
	case "si", "sí", "s", "x":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return strconv.ParseBool(s)
}
