package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/rocket-sim/internal/service"
)

func TestRun_Study(t *testing.T) {
	tests := []struct {
		name     string
		locale   string
		input    string
		expected []string
		absent   []string
	}{
		{
			name:   "on track",
			locale: "en",
			input:  "10\n10\n5\n8\n10\nyes\n",
			expected: []string{
				"Your success score is: 1.0\n",
				"You're on track to do well in your class!\n",
			},
			absent: []string{"Below are suggestions"},
		},
		{
			name:   "poor habits list every suggestion",
			locale: "en",
			input:  "2\n4\n2\n5\n0\nno\n",
			expected: []string{
				"Your success score is: 0.15\n",
				"Your success score is low. Below are suggestions to improve score:\n" +
					"    * Consider improving your sleep and focus habits:\n" +
					"        + try sleeping for more than 6 hours\n" +
					"        + make sure to get at least 3 hours of deep focus without any distractions.\n" +
					"    * Consider attending more classes.\n" +
					"    * Consider practicing coding more.\n" +
					"    * Consider asking for help when stuck.\n",
			},
		},
		{
			name:   "localized yes",
			locale: "pt",
			input:  "10\n10\n5\n8\n10\nsim\n",
			expected: []string{
				"Sua pontuação de sucesso é: 1.0\n",
				"Você está no caminho certo para ir bem na disciplina!\n",
			},
		},
		{
			name:     "yes must match exactly",
			locale:   "en",
			input:    "10\n10\n5\n8\n10\nYes\n",
			expected: []string{"Your success score is: 0.8\n"},
		},
		{
			name:     "english yes is not an answer in dutch",
			locale:   "nl",
			input:    "10\n10\n5\n8\n10\nyes\n",
			expected: []string{"Uw successcore is: 0.8\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Run(context.Background(), testConfig(tt.locale), ModeStudy, strings.NewReader(tt.input), &out)
			require.NoError(t, err)

			for _, want := range tt.expected {
				assert.Contains(t, out.String(), want)
			}
			for _, unwanted := range tt.absent {
				assert.NotContains(t, out.String(), unwanted)
			}
		})
	}
}

func TestRun_StudyMalformedAttendance(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), testConfig("en"), ModeStudy, strings.NewReader("4.5\n"), &out)

	assert.ErrorIs(t, err, service.ErrMalformedInput)
}
