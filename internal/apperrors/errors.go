// Package apperrors holds the error kinds shared by the loader components.
// Wrap a cause with one of the sentinels so callers can match it with errors.Is.
package apperrors

import "errors"

// ErrConfiguration indicates a required setting (such as the API key) is missing or invalid.
var ErrConfiguration = errors.New("configuration error")

// ErrAuthentication indicates the upstream API rejected the credential.
var ErrAuthentication = errors.New("authentication error")

// ErrRemote indicates an upstream call failed on the network or with a non-success status.
var ErrRemote = errors.New("remote error")

// ErrDataShape indicates an upstream payload was malformed or carried no data.
var ErrDataShape = errors.New("data shape error")

// ErrReconciliation indicates rows that could not be mapped to dimension keys.
var ErrReconciliation = errors.New("reconciliation error")

// ErrPersistence indicates a failure reading from or writing to the warehouse.
var ErrPersistence = errors.New("persistence error")
