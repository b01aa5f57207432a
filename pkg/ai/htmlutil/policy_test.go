package htmlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "allowed subset passes through",
			in:   "<p>Hello <strong>world</strong></p><ul><li>a</li></ul>",
			want: "<p>Hello <strong>world</strong></p><ul><li>a</li></ul>",
		},
		{
			name: "scripts are removed entirely",
			in:   "<p>ok</p><script>alert(1)</script>",
			want: "<p>ok</p>",
		},
		{
			name: "attributes are stripped",
			in:   `<p style="color:red" onclick="x()">text</p>`,
			want: "<p>text</p>",
		},
		{
			name: "unknown tags are unwrapped",
			in:   "<div><p>kept</p></div>",
			want: "<p>kept</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}
