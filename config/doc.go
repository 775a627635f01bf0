// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads pattern libraries from TOML or YAML files.
//
// A library file lists patterns by key and type with their parameters:
//
//	prefix = "brand"
//
//	[[pattern]]
//	key = "sunset sky"
//	type = "linear"
//	angle = 90
//	spread = "reflect"
//	stops = ["#ff0000", { offset = 0.5, color = "#00ff00" }, "#0000ff"]
//
//	[[pattern]]
//	key = "logo"
//	type = "image"
//	file = "logo.png"
//
// Image files are resolved relative to the library file and embedded
// with package imagefill. The YAML form uses the same keys.
package config
