// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package couchutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Object is a JSON object, represented as an ordered list of members. It
// exists to distinguish objects from arrays: EncodeJSON renders an Object as
// a JSON object, and DecodeJSON returns every JSON object as an Object, with
// its members in document order.
type Object []Pair

var (
	_ json.Marshaler   = Object(nil)
	_ json.Unmarshaler = (*Object)(nil)
)

// MarshalJSON satisfies the json.Marshaler interface.
func (o Object) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, member := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(member.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(member.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON satisfies the json.Unmarshaler interface.
func (o *Object) UnmarshalJSON(data []byte) error {
	v, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	obj, ok := v.(Object)
	if !ok {
		return fmt.Errorf("couchutil: cannot unmarshal %T into Object", v)
	}
	*o = obj
	return nil
}

// Get returns the value of the first member named key.
func (o Object) Get(key string) (interface{}, bool) {
	return Proplist(o).Get(key)
}

// InvalidJSONError is returned when input cannot be decoded as JSON.
type InvalidJSONError struct {
	// Data is the offending input.
	Data []byte
	Err  error
}

func (e *InvalidJSONError) Error() string {
	return "couchutil: invalid json: " + e.Err.Error()
}

// HTTPStatus returns http.StatusBadRequest.
func (e *InvalidJSONError) HTTPStatus() int {
	return http.StatusBadRequest
}

// StatusCode is an alias of HTTPStatus.
func (e *InvalidJSONError) StatusCode() int {
	return http.StatusBadRequest
}

func (e *InvalidJSONError) Unwrap() error {
	return e.Err
}

// EncodeJSON marshals v to JSON. Objects are rendered as JSON objects, and a
// byte slice is rendered as a JSON string of its contents.
func EncodeJSON(v interface{}) ([]byte, error) {
	switch t := v.(type) {
	case json.RawMessage:
		return t, nil
	case []byte:
		v = string(t)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &statusError{status: http.StatusBadRequest, error: err}
	}
	return data, nil
}

// DecodeJSON decodes a single JSON value. Objects are returned as Object,
// arrays as []interface{}, numbers as json.Number, and strings, booleans and
// null as string, bool and nil respectively.
func DecodeJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, &InvalidJSONError{Data: data, Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected data after top-level value")
		}
		return nil, &InvalidJSONError{Data: data, Err: err}
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		obj := Object{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj = append(obj, Pair{Key: key, Value: value})
		}
		return obj, closeDelim(dec)
	case '[':
		arr := []interface{}{}
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		return arr, closeDelim(dec)
	}
	return nil, fmt.Errorf("unexpected delimiter %s", delim)
}

// closeDelim consumes the closing delimiter of an object or array.
func closeDelim(dec *json.Decoder) error {
	_, err := dec.Token()
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
