package main

import (
	"strings"
	"testing"
)

func TestPromptStartParams(t *testing.T) {
	categories := []string{"Absolute Beginners", "Elementary"}

	tests := []struct {
		name         string
		input        string
		wantOK       bool
		wantCategory string
		wantPage     int
	}{
		{
			name:         "numbered pick with page",
			input:        "1\n3\ny\n",
			wantOK:       true,
			wantCategory: "Absolute Beginners",
			wantPage:     3,
		},
		{
			name:         "default page on empty input",
			input:        "2\n\nyes\n",
			wantOK:       true,
			wantCategory: "Elementary",
			wantPage:     1,
		},
		{
			name:         "custom category",
			input:        "3\nShort Stories\n1\ny\n",
			wantOK:       true,
			wantCategory: "Short Stories",
			wantPage:     1,
		},
		{
			name:         "free text category",
			input:        "idiom-shorts\n\ny\n",
			wantOK:       true,
			wantCategory: "idiom-shorts",
			wantPage:     1,
		},
		{
			name:         "page below minimum falls back to 1",
			input:        "1\n0\ny\n",
			wantOK:       true,
			wantCategory: "Absolute Beginners",
			wantPage:     1,
		},
		{
			name:   "declined confirmation cancels",
			input:  "1\n1\nn\n",
			wantOK: false,
		},
		{
			name:   "empty confirmation cancels",
			input:  "1\n1\n\n",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			params, ok := promptStartParams(strings.NewReader(tt.input), &out, categories)

			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if params.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", params.Category, tt.wantCategory)
			}
			if params.StartPage != tt.wantPage {
				t.Errorf("StartPage = %d, want %d", params.StartPage, tt.wantPage)
			}
		})
	}
}

func TestPromptStartParamsEOF(t *testing.T) {
	var out strings.Builder
	_, ok := promptStartParams(strings.NewReader(""), &out, []string{"Elementary"})
	if ok {
		t.Error("ok = true on exhausted input, want false")
	}
}
