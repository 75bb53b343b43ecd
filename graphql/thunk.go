/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"fmt"
	"sync"
)

// FieldMapThunk computes fields for an Object or an Interface. It is called when the fields are
// first requested which allows field types to refer to the type that owns them.
type FieldMapThunk func() (FieldMap, error)

// InterfacesThunk computes the interfaces implemented by an Object.
type InterfacesThunk func() ([]Interface, error)

// InputFieldMapThunk computes fields for an InputObject.
type InputFieldMapThunk func() (InputFieldMap, error)

// thunkState tracks the progress of a lazyValue.
type thunkState uint8

// Enumeration of thunkState
const (
	thunkIdle thunkState = iota
	thunkRunning
	thunkDone
)

// lazyValue memoizes the result of a thunk. The thunk is invoked at most once. Its result, including
// an error, is fixed after that. Requesting the value while the thunk is running (i.e., the thunk
// requests its own value) is an error instead of an infinite recursion.
//
// Concurrent first access from multiple goroutines is not supported: the goroutine that loses the
// race observes the same error as a reentrant call.
type lazyValue struct {
	mutex sync.Mutex
	state thunkState
	value interface{}
	err   error
}

// get returns the memoized value or calls compute to produce one. what names the value in the error
// message for reentrant evaluation.
func (v *lazyValue) get(what func() string, compute func() (interface{}, error)) (interface{}, error) {
	v.mutex.Lock()
	switch v.state {
	case thunkDone:
		value, err := v.value, v.err
		v.mutex.Unlock()
		return value, err

	case thunkRunning:
		v.mutex.Unlock()
		return nil, NewError(fmt.Sprintf("Cyclic evaluation of %s.", what()), ErrKindInternal)
	}
	v.state = thunkRunning
	v.mutex.Unlock()

	value, err := compute()

	v.mutex.Lock()
	v.value, v.err, v.state = value, err, thunkDone
	v.mutex.Unlock()

	return value, err
}
