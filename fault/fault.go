// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type EmptyContainerError GenericError
type InvalidError GenericError
type InvalidIteratorError GenericError
type NotFoundError GenericError
type OutOfBoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised          = InvalidError("already initialised")
	ErrConfigurationNotTable       = InvalidError("configuration did not return a table")
	ErrEmptyContainer              = EmptyContainerError("container is empty")
	ErrInvalidIterator             = InvalidIteratorError("invalid iterator")
	ErrInvalidLoggerChannel        = InvalidError("invalid logger channel")
	ErrInvalidSoakConfiguration    = InvalidError("invalid soak configuration")
	ErrInvalidStructPointer        = InvalidError("invalid struct pointer")
	ErrIteratorFromAnotherMap      = InvalidIteratorError("iterator belongs to another map")
	ErrIteratorNotReachable        = InvalidIteratorError("iterator not reachable")
	ErrIteratorPastTheEnd          = InvalidIteratorError("iterator is past the end")
	ErrIteratorAtBegin             = InvalidIteratorError("iterator is at the beginning")
	ErrNoOracles                   = InvalidError("no oracles configured")
	ErrNotFoundConfigFile          = NotFoundError("configuration file is not found")
	ErrOracleMismatch              = ProcessError("oracle mismatch")
	ErrOutOfBound                  = OutOfBoundError("index out of bound")
	ErrStaleIterator               = InvalidIteratorError("iterator refers to an erased element")
	ErrTreeCorrupt                 = ProcessError("tree structure is corrupt")
	ErrUnknownOracle               = NotFoundError("unknown oracle")
	ErrZeroOperationWeights        = InvalidError("all operation weights are zero")
	ErrZeroKeySpace                = InvalidError("key space is zero")
	ErrZeroRoundsOrOperations      = InvalidError("rounds and operations must be positive")
	ErrConfigurationVariableExists = InvalidError("configuration variable already defined")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyContainerError) Error() string  { return string(e) }
func (e InvalidError) Error() string         { return string(e) }
func (e InvalidIteratorError) Error() string { return string(e) }
func (e NotFoundError) Error() string        { return string(e) }
func (e OutOfBoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string         { return string(e) }

// determine the class of an error
func IsErrEmptyContainer(e error) bool  { _, ok := e.(EmptyContainerError); return ok }
func IsErrInvalid(e error) bool         { _, ok := e.(InvalidError); return ok }
func IsErrInvalidIterator(e error) bool { _, ok := e.(InvalidIteratorError); return ok }
func IsErrNotFound(e error) bool        { _, ok := e.(NotFoundError); return ok }
func IsErrOutOfBound(e error) bool      { _, ok := e.(OutOfBoundError); return ok }
func IsErrProcess(e error) bool         { _, ok := e.(ProcessError); return ok }
