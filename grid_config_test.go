package main

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGridFlags_Defaults(t *testing.T) {
	cfg, err := parseGridFlags("gridcal", nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, DefaultGridConfig(), cfg)
	assert.Equal(t, COLOR_BLACK, cfg.Ink)
	assert.Equal(t, COLOR_WHITE, cfg.Paper)
	assert.Equal(t, DEFAULT_REFRESH_RATE, cfg.Rate)
}

func TestParseGridFlags_ScriptForcesHeadless(t *testing.T) {
	cfg, err := parseGridFlags("gridcal", []string{"-backend", "terminal", "-script", "walk.lua"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "headless", cfg.Backend)
	assert.Equal(t, "walk.lua", cfg.Script)
}

func TestParseGridFlags_Help(t *testing.T) {
	var usage bytes.Buffer
	_, err := parseGridFlags("gridcal", []string{"-h"}, &usage)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, usage.String(), "-backend")
}

func TestParseGridFlags_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{"-backend", "vulkan"},
		{"-layout", "planar"},
		{"-rate", "0"},
		{"-ink", "16"},
		{"-paper", "-1"},
		{"-nosuchflag"},
	} {
		_, err := parseGridFlags("gridcal", args, &bytes.Buffer{})
		assert.Error(t, err, "%v", args)
	}
}

func TestParseDisplayBackend(t *testing.T) {
	b, err := ParseDisplayBackend("terminal")
	require.NoError(t, err)
	assert.Equal(t, DISPLAY_BACKEND_TERMINAL, b)

	_, err = ParseDisplayBackend("sdl")
	var gerr *GridError
	require.ErrorAs(t, err, &gerr)
	assert.Contains(t, gerr.Error(), `unknown display backend "sdl"`)
}

func TestGridError_Unwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := &GridError{Operation: "snapshot", Details: "grid.bmp", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "snapshot failed: grid.bmp: disk full", err.Error())
}
