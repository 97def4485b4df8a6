package cakes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	errMissingKey = errors.New("missing key")
	errNotString  = errors.New("not a string")
	errNotObject  = errors.New("element is not an object")
	errNotArray   = errors.New("document is not an array")
)

// Parse decodes a catalogue body into records, preserving input order.
// An empty array yields an empty, non-nil slice.
func Parse(text string) ([]Record, error) {
	dec := json.NewDecoder(strings.NewReader(text))

	var elems []json.RawMessage
	if err := dec.Decode(&elems); err != nil {
		return nil, &DecodeError{Index: -1, Err: err}
	}
	if elems == nil {
		// "null" decodes cleanly into a nil slice.
		return nil, &DecodeError{Index: -1, Err: errNotArray}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &DecodeError{Index: -1, Err: fmt.Errorf("trailing data after array")}
	}

	records := make([]Record, 0, len(elems))
	for i, elem := range elems {
		rec, err := parseRecord(i, elem)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRecord(index int, elem json.RawMessage) (Record, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(elem, &obj); err != nil {
		return Record{}, &DecodeError{Index: index, Err: errNotObject}
	}
	if obj == nil {
		return Record{}, &DecodeError{Index: index, Err: errNotObject}
	}

	title, err := stringField(index, obj, keyTitle)
	if err != nil {
		return Record{}, err
	}
	desc, err := stringField(index, obj, keyDescription)
	if err != nil {
		return Record{}, err
	}
	image, err := stringField(index, obj, keyImage)
	if err != nil {
		return Record{}, err
	}
	return Record{Title: title, Description: desc, ImageURL: image}, nil
}

func stringField(index int, obj map[string]json.RawMessage, key string) (string, error) {
	raw, ok := obj[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", &DecodeError{Index: index, Key: key, Err: errMissingKey}
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", &DecodeError{Index: index, Key: key, Err: errNotString}
	}
	return value, nil
}
