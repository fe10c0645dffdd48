package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingsFile(t *testing.T, content string) *Settings {
	t.Helper()
	logger, _ := logtest.NewNullLogger()

	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := &Settings{logger: logger, path: path, values: map[string]json.RawMessage{}}
	require.NoError(t, s.Reload())
	return s
}

func TestSettingsGetters(t *testing.T) {
	s := settingsFile(t, `{
		"editor.log_level": "debug",
		"editor.favourite_schedulers": ["karras", "vp"],
		"editor.api_address": "127.0.0.1:9000",
		"editor.row_height": 24
	}`)

	assert.Equal(t, "debug", s.String(KeyLogLevel, "info"))
	assert.Equal(t, []string{"karras", "vp"}, s.Strings(KeyFavouriteSchedulers, nil))
	assert.Equal(t, "127.0.0.1:9000", s.String(KeyAPIAddress, "127.0.0.1:8188"))
	assert.Equal(t, 24.0, s.Float("editor.row_height", 20))
}

func TestSettingsDefaults(t *testing.T) {
	s := settingsFile(t, `{}`)

	assert.Equal(t, "info", s.String(KeyLogLevel, "info"))
	assert.Nil(t, s.Strings(KeyFavouriteSchedulers, nil))
	assert.Equal(t, 20.0, s.Float("editor.row_height", 20))
}

func TestSettingsWrongTypeFallsBack(t *testing.T) {
	s := settingsFile(t, `{"editor.log_level": 12}`)
	assert.Equal(t, "info", s.String(KeyLogLevel, "info"))
}

func TestSettingsBadJSONKeepsOldValues(t *testing.T) {
	s := settingsFile(t, `{"editor.log_level": "warning"}`)
	require.NoError(t, os.WriteFile(s.path, []byte("{broken"), 0o644))

	assert.Error(t, s.Reload())
	assert.Equal(t, "warning", s.String(KeyLogLevel, "info"))
}

func TestLogLevel(t *testing.T) {
	s := settingsFile(t, `{"editor.log_level": "debug"}`)
	assert.Equal(t, logrus.DebugLevel, s.LogLevel())

	s = settingsFile(t, `{"editor.log_level": "not_a_level"}`)
	assert.Equal(t, logrus.InfoLevel, s.LogLevel())
}

func TestLoadWithoutFileWarns(t *testing.T) {
	logger, hook := logtest.NewNullLogger()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	s := Load(logger)
	assert.Equal(t, "", s.Path())
	assert.Equal(t, "info", s.String(KeyLogLevel, "info"))
	assert.NotEmpty(t, hook.Entries)
}
