package cli

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/abhinav/approval-gate/entity"
	"github.com/abhinav/approval-gate/gateway"
	"github.com/abhinav/approval-gate/gateway/gatewaytest"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearRunnerEnv makes the test look like it is running outside of a
// workflow.
func clearRunnerEnv(t *testing.T) {
	for _, name := range []string{
		"GITHUB_REPOSITORY", "GITHUB_EVENT_NAME", "GITHUB_EVENT_PATH",
		"GITHUB_API_URL", "GITHUB_SERVER_URL", "GITHUB_WORKSPACE",
		"RUNNER_DEBUG",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func noRemote(string) (string, error) {
	return "", errors.New("fatal: not a git repository")
}

func TestGlobalConfigBuildWithoutRepository(t *testing.T) {
	clearRunnerEnv(t)
	t.Setenv("RUNNER_DEBUG", "yes")

	g := globalConfig{remoteURL: noRemote}
	cfg, err := g.Build()
	require.NoError(t, err, "building the config must not need a repository")

	_, err = cfg.Repo()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not determine the repository")

	// The first request reports the same failure without contacting GitHub.
	_, err = cfg.GitHub().ListPullRequestReviews(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not determine the repository")
}

func TestGlobalConfigRepo(t *testing.T) {
	clearRunnerEnv(t)
	t.Setenv("GITHUB_REPOSITORY", "foo/bar")

	t.Run("runner", func(t *testing.T) {
		g := globalConfig{remoteURL: noRemote}
		cfg, err := g.Build()
		require.NoError(t, err)

		r, err := cfg.Repo()
		require.NoError(t, err)
		assert.Equal(t, &entity.Repo{Owner: "foo", Name: "bar"}, r)
	})

	t.Run("flag wins", func(t *testing.T) {
		g := globalConfig{RepoName: "baz/qux", remoteURL: noRemote}
		cfg, err := g.Build()
		require.NoError(t, err)

		r, err := cfg.Repo()
		require.NoError(t, err)
		assert.Equal(t, &entity.Repo{Owner: "baz", Name: "qux"}, r)
	})
}

func TestLazyGitHub(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	gh := gatewaytest.NewMockGitHub(mockCtrl)
	gh.EXPECT().ListPullRequestReviews(gomock.Any(), 1).Return(nil, nil)
	gh.EXPECT().ListPullRequestReviews(gomock.Any(), 2).Return(nil, nil)

	var connects int
	lazy := &lazyGitHub{connect: func() (gateway.GitHub, error) {
		connects++
		return gh, nil
	}}

	_, err := lazy.ListPullRequestReviews(context.Background(), 1)
	require.NoError(t, err)
	_, err = lazy.ListPullRequestReviews(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, connects, "should connect only once")
}

func TestLazyGitHubConnectError(t *testing.T) {
	var connects int
	lazy := &lazyGitHub{connect: func() (gateway.GitHub, error) {
		connects++
		return nil, errors.New("great sadness")
	}}

	for i := 0; i < 2; i++ {
		_, err := lazy.ListPullRequestReviews(context.Background(), 1)
		assert.EqualError(t, err, "great sadness")
	}
	assert.Equal(t, 1, connects)
}
