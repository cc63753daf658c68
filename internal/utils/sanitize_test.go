package utils

import (
	"strings"
	"testing"
)

func TestSanitizer(t *testing.T) {
	s := NewSanitizer()

	tests := []struct {
		name    string
		in      string
		keep    []string
		dropped []string
	}{
		{
			name:    "script removed with its body",
			in:      `<p>hi</p><script>alert(1)</script>`,
			keep:    []string{"<p>hi</p>"},
			dropped: []string{"<script", "alert(1)"},
		},
		{
			name:    "event handler stripped",
			in:      `<p onclick="steal()">x</p>`,
			keep:    []string{"<p>x</p>"},
			dropped: []string{"onclick"},
		},
		{
			name:    "javascript url dropped",
			in:      `<a href="javascript:alert(1)">x</a>`,
			dropped: []string{"javascript:"},
		},
		{
			name: "allowed link kept",
			in:   `<a href="https://example.com">x</a>`,
			keep: []string{`href="https://example.com"`},
		},
		{
			name:    "style allow-list",
			in:      `<p style="text-align: center; position: fixed">x</p>`,
			keep:    []string{"text-align: center"},
			dropped: []string{"position"},
		},
		{
			name: "editor embeds kept",
			in:   `<figure class="media"><oembed url="https://youtu.be/x"></oembed></figure>`,
			keep: []string{`<figure class="media">`, `<oembed url="https://youtu.be/x">`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Sanitize(tt.in)
			for _, k := range tt.keep {
				if !strings.Contains(got, k) {
					t.Errorf("Sanitize(%q) = %q, missing %q", tt.in, got, k)
				}
			}
			for _, d := range tt.dropped {
				if strings.Contains(got, d) {
					t.Errorf("Sanitize(%q) = %q, still contains %q", tt.in, got, d)
				}
			}
		})
	}
}
