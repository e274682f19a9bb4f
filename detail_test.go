package main

import "testing"

func TestParseLessonDetailTitle(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		expected string
	}{
		{
			name:     "category prefix stripped",
			markup:   `<div class="lesson_title">Absolute Beginners: Taxi Mandarin</div>`,
			expected: "Taxi Mandarin",
		},
		{
			name:     "no separator keeps full text",
			markup:   `<div class="lesson_title">Taxi Mandarin</div>`,
			expected: "Taxi Mandarin",
		},
		{
			name:     "only first separator splits",
			markup:   `<div class="lesson_title">Sinica: Science: Xenophobia</div>`,
			expected: "Science: Xenophobia",
		},
		{
			name:     "missing element is not an error",
			markup:   `<div class="content"></div>`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, _ := parseLessonDetail(mustDoc(t, tt.markup), "http://a.test/lessons/taxi-mandarin")
			if title != tt.expected {
				t.Errorf("title = %q, want %q", title, tt.expected)
			}
		})
	}
}

func TestParseLessonDetailAudio(t *testing.T) {
	detailURL := "http://a.test/lessons/taxi-mandarin"

	tests := []struct {
		name     string
		markup   string
		expected string
	}{
		{
			name:     "audio element with nested source",
			markup:   `<audio controls><source src="http://cdn.test/taxi.mp3" type="audio/mpeg"></audio>`,
			expected: "http://cdn.test/taxi.mp3",
		},
		{
			name:     "audio element with direct src",
			markup:   `<audio src="/media/taxi.mp3"></audio>`,
			expected: "http://a.test/media/taxi.mp3",
		},
		{
			name:     "flashvars embed",
			markup:   `<embed src="player.swf" flashvars="quality=high&mp3url=http://x.test/a.mp3&autostart=0">`,
			expected: "http://x.test/a.mp3",
		},
		{
			name:     "flashvars param child",
			markup:   `<object><param name="flashvars" value="mp3url=/media/taxi.mp3&loop=0"></object>`,
			expected: "http://a.test/media/taxi.mp3",
		},
		{
			name:     "audio extension link case-insensitive",
			markup:   `<a href="/about">About</a><a href="/media/Taxi.MP3">Download</a>`,
			expected: "http://a.test/media/Taxi.MP3",
		},
		{
			name:     "audio element beats flashvars",
			markup:   `<audio><source src="/media/real.mp3"></audio><embed flashvars="mp3url=/media/old.mp3">`,
			expected: "http://a.test/media/real.mp3",
		},
		{
			name:     "no audio markup",
			markup:   `<div class="content"><a href="/lessons/other">Other lesson</a></div>`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, audioURL := parseLessonDetail(mustDoc(t, tt.markup), detailURL)
			if audioURL != tt.expected {
				t.Errorf("audioURL = %q, want %q", audioURL, tt.expected)
			}
		})
	}
}
