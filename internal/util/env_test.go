package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	a := assert.New(t)

	a.Equal("config.yaml", Getenv("POKERVM_TEST_UNSET", "config.yaml"))

	restore := SetEnv("POKERVM_TEST_UNSET", "other.yaml")
	a.Equal("other.yaml", Getenv("POKERVM_TEST_UNSET", "config.yaml"))
	restore()

	restore = SetEnv("POKERVM_TEST_UNSET", "")
	a.Equal("config.yaml", Getenv("POKERVM_TEST_UNSET", "config.yaml"), "empty values use the default")
	restore()
}

func TestSetEnv(t *testing.T) {
	a := assert.New(t)
	_, found := os.LookupEnv("POKERVM_TEST_ADDR")
	a.False(found)

	restoreOuter := SetEnv("POKERVM_TEST_ADDR", ":5000")
	restoreInner := SetEnv("POKERVM_TEST_ADDR", ":5001")
	a.Equal(":5001", os.Getenv("POKERVM_TEST_ADDR"))

	restoreInner()
	a.Equal(":5000", os.Getenv("POKERVM_TEST_ADDR"))

	restoreOuter()
	_, found = os.LookupEnv("POKERVM_TEST_ADDR")
	a.False(found)
}
