// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Report is a collection of diagnostics.
//
// Diagnostics are kept in the order they were pushed, which is not
// necessarily source order.
type Report struct {
	// The diagnostics in this report.
	Diagnostics []Diagnostic

	// If set, every pushed diagnostic records the location in the front end
	// that created it as debugging information.
	Tracing bool
}

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) *Diagnostic {
	d := r.push(1, err, Error)
	err.Diagnose(d)
	return d
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err Diagnose) *Diagnostic {
	d := r.push(1, err, Warning)
	err.Diagnose(d)
	return d
}

// Remark pushes a remark diagnostic onto this report.
func (r *Report) Remark(err Diagnose) *Diagnostic {
	d := r.push(1, err, Remark)
	err.Diagnose(d)
	return d
}

// Errorf creates a new error diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...), Error)
}

// Warnf creates a new warning diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...), Warning)
}

// Last returns the most recently pushed diagnostic, or nil if the report is
// empty.
//
// The returned pointer is only valid until the next push.
func (r *Report) Last() *Diagnostic {
	if len(r.Diagnostics) == 0 {
		return nil
	}
	return &r.Diagnostics[len(r.Diagnostics)-1]
}

// Len returns the number of diagnostics in this report.
func (r *Report) Len() int {
	return len(r.Diagnostics)
}

// Count returns the number of diagnostics at the given level.
func (r *Report) Count(level Level) int {
	var n int
	for i := range r.Diagnostics {
		if r.Diagnostics[i].Level == level {
			n++
		}
	}
	return n
}

// Reset clears this report, retaining its storage.
func (r *Report) Reset() {
	clear(r.Diagnostics)
	r.Diagnostics = r.Diagnostics[:0]
}

// push is the core "make me a diagnostic" function.
func (r *Report) push(skip int, err error, level Level) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Err: err, Level: level})
	d := &r.Diagnostics[len(r.Diagnostics)-1]

	if r.Tracing {
		// Skip push and its exported caller.
		if _, file, line, ok := runtime.Caller(skip + 1); ok {
			d.debug = append(d.debug, fmt.Sprintf("pushed at %s:%d", filepath.Base(file), line))
		}
	}
	return d
}
