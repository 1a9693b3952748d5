package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	for _, env := range []string{envLocal, envDev, envProd, "staging", ""} {
		assert.NotNil(t, setupLogger(env), "env %q", env)
	}
}
