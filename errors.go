package opencc

import "errors"

// Errors reported by this package. Failures coming out of the native library
// carry its diagnostic message and wrap one of these sentinels, so callers
// can match with errors.Is.
var (
	// ErrInvalidConfigPath flags a config file path that contains a NUL
	// byte or is not valid UTF-8.
	ErrInvalidConfigPath = errors.New("opencc: config file path contains invalid characters")

	// ErrNewInstanceFailed flags a failed opencc_open, usually a wrong
	// path or malformed config file contents.
	ErrNewInstanceFailed = errors.New("opencc: failed to create converter instance")

	// ErrInputContainsNull flags conversion input with an embedded NUL byte.
	ErrInputContainsNull = errors.New("opencc: input string contains a NUL character")

	// ErrConversionFailed flags an error reported by the native library
	// during conversion.
	ErrConversionFailed = errors.New("opencc: conversion failed")

	// ErrInvalidUTF8 flags an illegal UTF-8 byte sequence returned by the
	// native library.
	ErrInvalidUTF8 = errors.New("opencc: library returned an invalid UTF-8 sequence")
)
