// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira-cms/pkg/pointer"
)

func TestToAndVal(t *testing.T) {
	p := pointer.To(2020)
	assert.Equal(t, 2020, *p)
	assert.Equal(t, 2020, pointer.Val(p))

	var missing *string
	assert.Equal(t, "", pointer.Val(missing))
}
