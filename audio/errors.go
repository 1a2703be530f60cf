// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnsupportedFormat is returned for bit depths other than 8, 16, 24 and 32.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrChannelOutOfRange is returned when a selected channel does not exist in the stream.
	ErrChannelOutOfRange = errors.New("channel index out of range")
)
