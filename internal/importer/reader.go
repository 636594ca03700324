package importer

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// Format of a document batch
type Format string

const (
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatCSV    Format = "csv"
)

// ParseFormat accepts json, ndjson (or jsonl) and csv
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "ndjson", "jsonl":
		return FormatNDJSON, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

// FormatFromPath picks the format by file extension, defaulting to json
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".ndjson", ".jsonl":
		return FormatNDJSON
	}
	return FormatJSON
}

// Read decodes every document in r. A json input may hold one object or an
// array of objects. Empty csv cells are left out of the document.
func Read(r io.Reader, format Format) ([]map[string]interface{}, error) {
	switch format {
	case FormatJSON:
		return readJSON(r)
	case FormatNDJSON:
		return readNDJSON(r)
	case FormatCSV:
		return readCSV(r)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

func readJSON(r io.Reader) ([]map[string]interface{}, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read json")
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	switch data[0] {
	case '[':
		var docs []map[string]interface{}
		if err := dec.Decode(&docs); err != nil {
			return nil, errors.Wrap(err, "decode json array")
		}
		for i, doc := range docs {
			if doc == nil {
				return nil, fmt.Errorf("decode json array: element %d is not an object", i)
			}
		}
		if err := expectEOF(dec); err != nil {
			return nil, errors.Wrap(err, "decode json array")
		}
		return docs, nil
	case '{':
		var doc map[string]interface{}
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "decode json object")
		}
		if err := expectEOF(dec); err != nil {
			return nil, errors.Wrap(err, "decode json object")
		}
		return []map[string]interface{}{doc}, nil
	}
	return nil, errors.New("json input must be an object or an array of objects")
}

// expectEOF fails when dec holds anything but whitespace after the value
// just decoded
func expectEOF(dec *json.Decoder) error {
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("trailing data after json value")
	}
	return nil
}

func readNDJSON(r io.Reader) ([]map[string]interface{}, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	var docs []map[string]interface{}
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(text))
		dec.UseNumber()
		var doc map[string]interface{}
		err := dec.Decode(&doc)
		if err == nil && doc == nil {
			err = errors.New("not an object")
		}
		if err == nil {
			err = expectEOF(dec)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "decode ndjson line %d", line)
		}
		docs = append(docs, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read ndjson")
	}
	return docs, nil
}

func readCSV(r io.Reader) ([]map[string]interface{}, error) {
	rows, err := gocsv.CSVToMaps(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode csv")
	}
	docs := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		doc := make(map[string]interface{}, len(row))
		for k, v := range row {
			if v == "" {
				continue
			}
			doc[strings.TrimSpace(k)] = v
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
