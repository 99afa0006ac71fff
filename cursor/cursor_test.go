// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForEdgeCompassPoints(t *testing.T) {
	cases := []struct {
		h, v int
		want Shape
	}{
		{0, -1, North}, {0, 1, South}, {1, 0, East}, {-1, 0, West},
		{1, -1, NorthEast}, {-1, -1, NorthWest},
		{1, 1, SouthEast}, {-1, 1, SouthWest},
		{0, 0, Default},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ForEdge(c.h, c.v))
	}
}
