// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"bytes"
	"encoding/gob"
	"encoding/json"

	"cloudeng.io/errors"
)

// GobEncode implements gob.GobEncoder.
func (h *T[V]) GobEncode() ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := gob.NewEncoder(buf)
	errs := errors.M{}
	errs.Append(enc.Encode(h.order))
	errs.Append(enc.Encode(h.values))
	return buf.Bytes(), errs.Err()
}

// GobDecode implements gob.GobDecoder. The heap property is re-established
// over the decoded values so that a decoded heap is always valid.
func (h *T[V]) GobDecode(buf []byte) error {
	dec := gob.NewDecoder(bytes.NewBuffer(buf))
	errs := errors.M{}
	errs.Append(dec.Decode(&h.order))
	errs.Append(dec.Decode(&h.values))
	if err := errs.Err(); err != nil {
		return err
	}
	h.heapify()
	return nil
}

type jsonHeap[V Ordered] struct {
	Order  Order `json:"order"`
	Values []V   `json:"values"`
}

// MarshalJSON implements json.Marshaler.
func (h *T[V]) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	errs := errors.M{}
	errs.Append(enc.Encode(jsonHeap[V]{
		Order:  h.order,
		Values: h.values,
	}))
	return buf.Bytes(), errs.Err()
}

// UnmarshalJSON implements json.Unmarshaler. The heap property is
// re-established over the decoded values so that a decoded heap is always
// valid, even if the encoding was edited by hand.
func (h *T[V]) UnmarshalJSON(buf []byte) error {
	dec := json.NewDecoder(bytes.NewBuffer(buf))
	state := jsonHeap[V]{}
	errs := errors.M{}
	errs.Append(dec.Decode(&state))
	if err := errs.Err(); err != nil {
		return err
	}
	h.order = state.Order
	h.values = state.Values
	h.heapify()
	return nil
}
