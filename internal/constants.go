/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent         = "swimseed/0.4.0 (+https://github.com/mikeb26/swimseed)"
	AppName           = "swimseed"
	DefaultConfigFile = "heatsheet.yaml"
)
