// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/io"

// Category classifies load cases
type Category string

// load case categories
const (
	Dead    Category = "dead"
	Live    Category = "live"
	Wind    Category = "wind"
	Snow    Category = "snow"
	Seismic Category = "seismic"
	Other   Category = "other"
)

// LoadCase identifies an independent set of loads. Two load cases are equal if
// their labels and categories are equal; thus LoadCase can be used as map key
type LoadCase struct {
	Label    string
	Category Category
}

// NewLoadCase returns a new load case
func NewLoadCase(label string, category Category) LoadCase {
	return LoadCase{Label: label, Category: category}
}

// String returns "label(category)"
func (o LoadCase) String() string {
	return io.Sf("%s(%s)", o.Label, o.Category)
}

// ParseCategory converts a string to a category. Unknown strings map to Other
func ParseCategory(s string) Category {
	switch Category(s) {
	case Dead, Live, Wind, Snow, Seismic:
		return Category(s)
	}
	switch s {
	case "D":
		return Dead
	case "L":
		return Live
	case "W":
		return Wind
	case "S":
		return Snow
	case "E":
		return Seismic
	}
	return Other
}
