package main

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pennyflow/internal/common"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "whole number", input: "100", want: "100"},
		{name: "two decimal places", input: "45.50", want: "45.50"},
		{name: "many decimal places", input: "0.001", want: "0.001"},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-5.00", wantErr: true},
		{name: "not a number", input: "ten dollars", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"parseAmount(%q) = %s, want %s", tt.input, got, tt.want)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "45.5", want: "$45.50"},
		{input: "2500", want: "$2500.00"},
		{input: "0", want: "$0.00"},
		{input: "-60.5", want: "$-60.50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMoney(decimal.RequireFromString(tt.input)))
	}
}

func TestRootCommandWiring(t *testing.T) {
	want := []string{"add", "list", "summary", "chart", "delete", "export", "trend", "version"}
	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range want {
		assert.True(t, registered[name], "command %q not registered", name)
	}
}
