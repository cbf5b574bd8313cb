package pathcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{
			name: "plain path passes through",
			raw:  "/tmp/a.txt",
			want: "/tmp/a.txt",
		},
		{
			name: "relative path stays relative",
			raw:  "dir/a.txt",
			want: "dir/a.txt",
		},
		{
			name: "surrounding whitespace is trimmed",
			raw:  "  /tmp/a.txt\t\n",
			want: "/tmp/a.txt",
		},
		{
			name: "double quotes are stripped",
			raw:  `"/tmp/a.txt"`,
			want: "/tmp/a.txt",
		},
		{
			name: "single quotes are stripped",
			raw:  "'/tmp/a.txt'",
			want: "/tmp/a.txt",
		},
		{
			name: "stacked quotes are stripped entirely",
			raw:  `"'/tmp/a.txt'"`,
			want: "/tmp/a.txt",
		},
		{
			name: "whitespace outside quotes is trimmed first",
			raw:  `  "/tmp/a.txt"  `,
			want: "/tmp/a.txt",
		},
		{
			name: "whitespace inside quotes is preserved",
			raw:  `"/tmp/with space.txt"`,
			want: "/tmp/with space.txt",
		},
		{
			name: "interior quotes are preserved",
			raw:  `/tmp/it's.txt`,
			want: "/tmp/it's.txt",
		},
		{
			name:    "empty input is rejected",
			raw:     "",
			wantErr: ErrEmptyPath,
		},
		{
			name:    "whitespace-only input is rejected",
			raw:     " \t ",
			wantErr: ErrEmptyPath,
		},
		{
			name:    "quotes-only input is rejected",
			raw:     `"''"`,
			wantErr: ErrEmptyPath,
		},
		{
			name:    "embedded NUL is rejected",
			raw:     "/tmp/a\x00b",
			wantErr: ErrNULByte,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
