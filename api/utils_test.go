// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import "testing"

func TestNormalizeSerialNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already normalized",
			input:    "1a:2b:3c:4d",
			expected: "1a:2b:3c:4d",
		},
		{
			name:     "no separators",
			input:    "1a2b3c4d",
			expected: "1a:2b:3c:4d",
		},
		{
			name:     "with spaces",
			input:    "1a 2b 3c 4d",
			expected: "1a:2b:3c:4d",
		},
		{
			name:     "uppercase input",
			input:    "1A:2B:3C:4D",
			expected: "1a:2b:3c:4d",
		},
		{
			name:     "odd length - needs padding",
			input:    "1a2b3",
			expected: "01:a2:b3",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeSerialNumber(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeSerialNumber(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
