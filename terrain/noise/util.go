// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

func clampToByte(h int) byte {
	if h < 0 {
		return 0
	}
	if h > 255 {
		return 255
	}
	return byte(h)
}
