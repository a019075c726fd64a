package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		wantErr           bool
		want              *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `database:
  path: custom/words.db
translation:
  timeout_seconds: 5
  retry_attempts: 1
practice:
  word_count: 20
`,
			want: &Config{
				Database: DatabaseConfig{
					Path: "custom/words.db",
				},
				Translation: TranslationConfig{
					MyMemoryURL:   "https://api.mymemory.translated.net",
					LibreURL:      "https://libretranslate.de",
					DictionaryURL: "https://api.dictionaryapi.dev",
					TimeoutSec:    5,
					RetryAttempts: 1,
				},
				Practice: PracticeConfig{
					WordCount: 20,
				},
			},
		},
		{
			name:          "defaults applied when config file is empty",
			configContent: "",
			want: &Config{
				Database: DatabaseConfig{
					Path: filepath.Join("data", "remword.db"),
				},
				Translation: TranslationConfig{
					MyMemoryURL:   "https://api.mymemory.translated.net",
					LibreURL:      "https://libretranslate.de",
					DictionaryURL: "https://api.dictionaryapi.dev",
					TimeoutSec:    15,
					RetryAttempts: 2,
				},
				Practice: PracticeConfig{
					WordCount: 10,
				},
			},
		},
		{
			name: "invalid YAML format",
			configContent: `database:
  path: custom/words.db
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.yml")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))

			got, err := Load(configPath)
			if tt.wantErr {
				require.Error(t, err)
				for _, want := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), want)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("REMWORD_MYMEMORY_URL", "http://localhost:9090")
	t.Setenv("REMWORD_LIBRE_URL", "http://localhost:9091")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(""), 0644))

	got, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9090", got.Translation.MyMemoryURL)
	assert.Equal(t, "http://localhost:9091", got.Translation.LibreURL)
	assert.Equal(t, "https://api.dictionaryapi.dev", got.Translation.DictionaryURL)
}
