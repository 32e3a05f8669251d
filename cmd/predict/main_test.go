package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	tests := []struct {
		name         string
		store        string
		month        string
		expectedCode int
		expectedJSON string
		errorPrefix  string
	}{
		{
			name:         "armazenamento vazio imprime lista vazia",
			store:        "memory",
			month:        "2025-07",
			expectedCode: 0,
			expectedJSON: `[]`,
		},
		{
			name:         "armazenamento inválido imprime apenas o erro",
			store:        "invalid",
			month:        "2025-07",
			expectedCode: 1,
			errorPrefix:  "config: PROFILE_STORE",
		},
		{
			name:         "mês inválido imprime apenas o erro",
			store:        "memory",
			month:        "2025-13",
			expectedCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PROFILE_STORE", tt.store)
			var stdout bytes.Buffer

			code := execute(tt.month, &stdout)

			assert.Equal(t, tt.expectedCode, code)

			lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
			require.Len(t, lines, 1)

			if tt.expectedCode == 0 {
				assert.JSONEq(t, tt.expectedJSON, lines[0])
				return
			}

			var payload map[string]string
			require.NoError(t, json.Unmarshal([]byte(lines[0]), &payload))
			require.Len(t, payload, 1)
			assert.NotEmpty(t, payload["error"])
			if tt.errorPrefix != "" {
				assert.True(t, strings.HasPrefix(payload["error"], tt.errorPrefix), payload["error"])
			}
		})
	}
}
