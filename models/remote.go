// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds carried by [RemoteCallResult.Err]. Callers match them with
// [errors.Is].
var (
	// ErrTransport marks connection failures and timeouts. No HTTP status is
	// available for such results.
	ErrTransport = errors.New("provider unreachable")

	// ErrProvider marks calls that reached the provider but were rejected,
	// either by HTTP status or by the status code embedded in the body.
	ErrProvider = errors.New("provider reported a failure")

	// ErrUnknownOperation marks calls to operations absent from the
	// registry. No request is sent for them.
	ErrUnknownOperation = errors.New("operation not configured")
)

// ProviderError describes a logical failure reported by the provider.
// It unwraps to [ErrProvider].
type ProviderError struct {
	HTTPStatus int
	Code       string
	Message    string
}

func (e *ProviderError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "provider error (http %d", e.HTTPStatus)
	if e.Code != "" {
		fmt.Fprintf(&b, ", code %s", e.Code)
	}
	b.WriteString(")")
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (e *ProviderError) Unwrap() error {
	return ErrProvider
}

// RawPayload is the undecoded body of a response that was not valid JSON.
type RawPayload string

// RemoteCallResult is the normalized outcome of one provider call.
//
// HTTPStatus is nil when the request never produced a response. Payload is
// the decoded JSON body, or a [RawPayload] when decoding failed. Err is nil
// exactly when Success is true.
type RemoteCallResult struct {
	Success    bool
	HTTPStatus *int
	Payload    any
	Err        error
}

// Status returns the HTTP status and whether one was received.
func (r RemoteCallResult) Status() (int, bool) {
	if r.HTTPStatus == nil {
		return 0, false
	}
	return *r.HTTPStatus, true
}

// FailedResult builds a result for a call that did not reach the provider.
func FailedResult(err error) RemoteCallResult {
	return RemoteCallResult{Err: err}
}
