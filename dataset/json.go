package dataset

import (
	"encoding/json"
	"io"
	"math/big"
)

// decodeJSON reads a single JSON value, keeping the key order of objects.
func decodeJSON(r io.Reader) (value any, err error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err == io.EOF {
		err = ErrEmpty
		return
	}
	if err != nil {
		return
	}

	value, err = jsonFrom(dec, tok)
	if err != nil {
		return
	}

	_, err = dec.Token()
	switch {
	case err == io.EOF:
		err = nil
	case err == nil:
		err = ErrTrailing
	}

	return
}

func jsonValue(dec *json.Decoder) (value any, err error) {
	tok, err := dec.Token()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return
	}

	return jsonFrom(dec, tok)
}

// jsonFrom completes the value that starts with tok.
func jsonFrom(dec *json.Decoder, tok json.Token) (value any, err error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := object{}
			for dec.More() {
				var tok json.Token
				tok, err = dec.Token()
				if err != nil {
					return
				}
				key, ok := tok.(string)
				if !ok {
					err = ErrKeyType
					return
				}
				var elem any
				elem, err = jsonValue(dec)
				if err != nil {
					return
				}
				obj.set(key, elem)
			}
			value = obj
		case '[':
			arr := []any{}
			for dec.More() {
				var elem any
				elem, err = jsonValue(dec)
				if err != nil {
					return
				}
				arr = append(arr, elem)
			}
			value = arr
		}
		// Closing delimiter.
		_, err = dec.Token()
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
	case json.Number:
		value, err = jsonNumber(t)
	default:
		// string, bool or nil
		value = t
	}

	return
}

// jsonNumber converts a number to int64, *big.Int or float64.
func jsonNumber(num json.Number) (value any, err error) {
	if i64, ierr := num.Int64(); ierr == nil {
		value = i64
		return
	}

	if bi, ok := new(big.Int).SetString(num.String(), 10); ok {
		value = bi
		return
	}

	value, err = num.Float64()
	return
}
