// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Button is an inline keyboard button carrying a callback tag.
type Button struct {
	Text string
	Data string
}

// Reply is one outgoing chat message. Code, when set, is shown below Text
// as a preformatted block. Keyboard rows are rendered as an inline
// keyboard; a nil Keyboard sends no markup.
type Reply struct {
	Text     string
	Code     string
	Keyboard [][]Button
}

// HasButton reports whether any keyboard row carries the given tag.
func (r Reply) HasButton(data string) bool {
	for _, row := range r.Keyboard {
		for _, b := range row {
			if b.Data == data {
				return true
			}
		}
	}
	return false
}
