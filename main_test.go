package main

import (
	"bytes"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckVec(t *testing.T) {
	for _, n := range []int{0, 1, 2, 1000} {
		r := checkVec(n)
		assert.True(t, r.OK, "n=%d: %+v", n, r)
		assert.Equal(t, n/2, r.Drained)
	}
}

func TestCheckArc(t *testing.T) {
	r := checkArc(4, 100)
	assert.True(t, r.OK)
	assert.Equal(t, int32(1), r.Drops)
	assert.Equal(t, 400, r.Clones)
}

func TestCheckRing(t *testing.T) {
	for _, n := range []int{1, 2, 4, 33} {
		r := checkRing(n)
		assert.True(t, r.OK, "n=%d: %+v", n, r)
	}
}

func TestReport_Write(t *testing.T) {
	rep := Report{
		Vec:  checkVec(10),
		Arc:  checkArc(2, 10),
		Ring: checkRing(4),
	}
	var buf bytes.Buffer
	require.NoError(t, rep.Write(&buf))

	var out struct {
		OK  bool `json:"ok"`
		Vec struct {
			Pushed int `json:"pushed"`
		} `json:"vec"`
		Ring struct {
			Size int `json:"size"`
		} `json:"ring"`
	}
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &out))
	assert.True(t, out.OK)
	assert.Equal(t, 10, out.Vec.Pushed)
	assert.Equal(t, 4, out.Ring.Size)
}
