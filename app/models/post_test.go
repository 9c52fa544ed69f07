package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostIsPublishedByDefault(t *testing.T) {
	p := NewPost("Hello World", "Some *markdown*")

	assert.True(t, p.IsPublished)
	assert.True(t, p.IsNew())
	assert.Equal(t, uint(0), p.UserID)
}

func TestPostValidate(t *testing.T) {
	tests := []struct {
		name    string
		post    Post
		wantErr bool
	}{
		{
			name: "valid",
			post: Post{Title: "Title", Body: "Body", UserID: 1},
		},
		{
			name:    "missing title",
			post:    Post{Body: "Body", UserID: 1},
			wantErr: true,
		},
		{
			name:    "missing body",
			post:    Post{Title: "Title", UserID: 1},
			wantErr: true,
		},
		{
			name:    "missing author",
			post:    Post{Title: "Title", Body: "Body"},
			wantErr: true,
		},
		{
			name:    "title too long",
			post:    Post{Title: strings.Repeat("a", 201), Body: "Body", UserID: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPostValidateIgnoresUnloadedAuthor(t *testing.T) {
	p := Post{Title: "Title", Body: "Body", UserID: 3}

	require.NoError(t, p.Validate())
	assert.Equal(t, "", p.AuthorName())
}
