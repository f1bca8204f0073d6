package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "watch URL",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "watch URL with extra params",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "short URL",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "short URL with query",
			url:  "https://youtu.be/dQw4w9WgXcQ?si=abc",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "embed URL",
			url:  "https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "fragment terminates ID",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ#t=1m",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "empty URL",
			url:  "",
			want: "",
		},
		{
			name: "non-video URL",
			url:  "https://example.com/demo",
			want: "",
		},
		{
			name: "channel URL has no ID",
			url:  "https://www.youtube.com/@somechannel",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YouTubeID(tt.url))
		})
	}
}

func TestHasVideo(t *testing.T) {
	assert.True(t, Project{YouTube: "https://youtu.be/abc123"}.HasVideo())
	assert.False(t, Project{YouTube: ""}.HasVideo())
	assert.False(t, Project{YouTube: "https://vimeo.com/12345"}.HasVideo())
	// A demo link is not a video link
	assert.False(t, Project{Demo: "https://youtu.be/abc123"}.HasVideo())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "like", Like.String())
	assert.Equal(t, "pass", Pass.String())
}
