package util

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	a := assert.New(t)

	random = rand.New(rand.NewSource(0)) // nolint:gosec
	first := GetRandomName()
	parts := strings.Split(first, " ")
	if a.Equal(2, len(parts)) {
		a.Contains(moods, parts[0])
		a.Contains(tableWords, parts[1])
	}

	random = rand.New(rand.NewSource(0)) // nolint:gosec
	a.Equal(first, GetRandomName(), "the same seed picks the same name")
}
