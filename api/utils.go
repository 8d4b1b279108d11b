// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import "strings"

// NormalizeSerialNumber renders a certificate serial number as
// lowercase hex pairs joined by colons, the form used in every API
// view. Odd-length input gains a leading zero so each pair is complete.
func NormalizeSerialNumber(serial string) string {
	hexDigits := strings.ToLower(strings.NewReplacer(":", "", " ", "").Replace(serial))
	if len(hexDigits)%2 != 0 {
		hexDigits = "0" + hexDigits
	}

	pairs := make([]string, 0, len(hexDigits)/2)
	for i := 0; i < len(hexDigits); i += 2 {
		pairs = append(pairs, hexDigits[i:i+2])
	}

	return strings.Join(pairs, ":")
}
