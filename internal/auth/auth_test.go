package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCredentials(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileProvider(t *testing.T) {
	path := writeCredentials(t, `{"userId":"user-1","accessToken":"tok"}`)

	p := &FileProvider{Path: path}
	creds, err := p.GetCredentials()
	require.NoError(t, err)
	assert.Equal(t, "user-1", creds.UserID)
	assert.Equal(t, "tok", creds.AccessToken)
}

func TestFileProviderMissingFile(t *testing.T) {
	p := &FileProvider{Path: filepath.Join(t.TempDir(), "nope.json")}
	_, err := p.GetCredentials()
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestFileProviderIncompleteCredentials(t *testing.T) {
	path := writeCredentials(t, `{"userId":"user-1"}`)

	p := &FileProvider{Path: path}
	_, err := p.GetCredentials()
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestFileProviderMalformedJSON(t *testing.T) {
	path := writeCredentials(t, `{broken`)

	p := &FileProvider{Path: path}
	_, err := p.GetCredentials()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoIdentity)
}

func TestEnvProvider(t *testing.T) {
	t.Setenv("HACKSWIPE_USER_ID", "env-user")
	t.Setenv("HACKSWIPE_ACCESS_TOKEN", "env-tok")

	p := &EnvProvider{}
	creds, err := p.GetCredentials()
	require.NoError(t, err)
	assert.Equal(t, "env-user", creds.UserID)
	assert.Equal(t, "env-tok", creds.AccessToken)
}

func TestEnvProviderUnset(t *testing.T) {
	t.Setenv("HACKSWIPE_USER_ID", "")
	t.Setenv("HACKSWIPE_ACCESS_TOKEN", "")

	p := &EnvProvider{}
	_, err := p.GetCredentials()
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestGetCredentialsFallsBackToEnv(t *testing.T) {
	t.Setenv("HACKSWIPE_USER_ID", "env-user")
	t.Setenv("HACKSWIPE_ACCESS_TOKEN", "env-tok")

	creds, err := GetCredentials(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, "env-user", creds.UserID)
}

func TestGetCredentialsPrefersFile(t *testing.T) {
	t.Setenv("HACKSWIPE_USER_ID", "env-user")
	t.Setenv("HACKSWIPE_ACCESS_TOKEN", "env-tok")
	path := writeCredentials(t, `{"userId":"file-user","accessToken":"file-tok"}`)

	creds, err := GetCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "file-user", creds.UserID)
}

func TestGetCredentialsAnonymous(t *testing.T) {
	t.Setenv("HACKSWIPE_USER_ID", "")
	t.Setenv("HACKSWIPE_ACCESS_TOKEN", "")

	_, err := GetCredentials(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, ErrNoIdentity)
}
