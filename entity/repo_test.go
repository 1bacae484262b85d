package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPullRequestURL(t *testing.T) {
	tests := []struct {
		server string
		want   string
	}{
		{server: "", want: "https://github.com/foo/bar/pull/42"},
		{server: "https://github.com", want: "https://github.com/foo/bar/pull/42"},
		{server: "https://github.example.com/", want: "https://github.example.com/foo/bar/pull/42"},
	}

	for _, tt := range tests {
		t.Run(tt.server, func(t *testing.T) {
			r := Repo{Owner: "foo", Name: "bar"}
			assert.Equal(t, tt.want, r.PullRequestURL(tt.server, 42))
		})
	}
}
