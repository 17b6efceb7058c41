// Plotcore: high-performance 2D scientific plotting engine

// Copyright (C) 2024 The plotcore authors.

// This program is free software: you can redistribute it and/or modify it under
// the terms of the GNU General Public License version 2 as published by the
// Free Software Foundation.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU General Public License for more
// details.

// You should have received a copy of the GNU General Public License along with
// this program. If not, see <http://www.gnu.org/licenses/>.

package plotcore

import "github.com/cparo/plotcore/internal/ploterr"

// ErrorKind classifies the closed set of failure modes a render can surface.
// Re-exported from internal/ploterr, the leaf package every internal
// package depends on, so this package's own dependents (internal/plots,
// internal/render, internal/encode, ...) can report errors without
// importing back up to the root package.
type ErrorKind = ploterr.Kind

const (
	KindEmptyDataSet           = ploterr.KindEmptyDataSet
	KindInvalidParameter       = ploterr.KindInvalidParameter
	KindInvalidData            = ploterr.KindInvalidData
	KindRenderError            = ploterr.KindRenderError
	KindIoError                = ploterr.KindIoError
	KindResourceBudgetExceeded = ploterr.KindResourceBudgetExceeded
	KindFontUnavailable        = ploterr.KindFontUnavailable
)

// Error is the single structured error type returned by every public
// operation in plotcore. It carries a Kind for programmatic dispatch, a
// human-readable Message, an optional Position for structural data errors,
// and an optional wrapped Cause.
type Error = ploterr.Error

// EmptyDataSet constructs a KindEmptyDataSet error.
func EmptyDataSet(msg string) *Error { return ploterr.EmptyDataSet(msg) }

// InvalidParameter constructs a KindInvalidParameter error.
func InvalidParameter(msg string) *Error { return ploterr.InvalidParameter(msg) }

// InvalidData constructs a KindInvalidData error, optionally noting the
// offending index.
func InvalidData(msg string, position *int) *Error { return ploterr.InvalidData(msg, position) }

// RenderError wraps a downstream rasterizer/text failure.
func RenderError(msg string, cause error) *Error { return ploterr.RenderError(msg, cause) }

// IoError wraps an encoder sink I/O failure.
func IoError(msg string, cause error) *Error { return ploterr.IoError(msg, cause) }

// ResourceBudgetExceeded constructs a KindResourceBudgetExceeded error.
func ResourceBudgetExceeded(msg string) *Error { return ploterr.ResourceBudgetExceeded(msg) }

// FontUnavailable constructs a KindFontUnavailable error.
func FontUnavailable(msg string) *Error { return ploterr.FontUnavailable(msg) }
