package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRequiresAllFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		missing string
	}{
		{
			name:    "missing description",
			args:    []string{"-a", "9.99", "-c", "food", "-t", "expense"},
			missing: "description",
		},
		{
			name:    "missing amount",
			args:    []string{"-d", "lunch", "-c", "food", "-t", "expense"},
			missing: "amount",
		},
		{
			name:    "missing category",
			args:    []string{"-a", "9.99", "-d", "lunch", "-t", "expense"},
			missing: "category",
		},
		{
			name:    "missing type",
			args:    []string{"-a", "9.99", "-d", "lunch", "-c", "food"},
			missing: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Required-flag checks run before RunE, so no database is touched.
			cmd := addCmd()
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}
