package wiki

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "bare template",
			text: "{{ουσιαστικό|el}}",
			want: []string{"ουσιαστικό"},
		},
		{
			name: "no arguments",
			text: "{{el-κλίση-ος}}",
			want: []string{"el-κλίση-ος"},
		},
		{
			name: "encounter order",
			text: "{{ουσιαστικό|el}}\nsome text\n{{el-κλίση-ος|a=1}}",
			want: []string{"ουσιαστικό", "el-κλίση-ος"},
		},
		{
			name: "nested outer first",
			text: "{{outer|{{inner}}}}",
			want: []string{"outer", "inner"},
		},
		{
			name: "whitespace trimmed",
			text: "{{ el-κλίση-ος }}",
			want: []string{"el-κλίση-ος"},
		},
		{
			name: "name broken by newline is skipped",
			text: "{{\nweird}} {{ok}}",
			want: []string{"ok"},
		},
		{
			name: "no templates",
			text: "plain text with } and { braces",
			want: nil,
		},
		{
			name: "unterminated",
			text: "text {{dangling",
			want: []string{"dangling"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Templates(tc.text))
		})
	}
}

func TestHasTemplate(t *testing.T) {
	text := "{{ουσιαστικό|el}}\n{{el-κλίση-ος}}"
	require.True(t, HasTemplate(text, "el-κλίση-ος"))
	require.False(t, HasTemplate(text, "el-κλίση-η"))
}
