package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/ptree/internal/utils"
)

type configTestCase struct {
	name                string
	globalContent       string
	localContent        string
	explicitPath        string
	explicitContent     string
	expectIgnore        []string
	expectDefaultIgnore bool
	expectCopy          bool
}

func boolPointer(value bool) *bool {
	pointer := value
	return &pointer
}

func TestLoadApplicationConfigurationMergesSources(t *testing.T) {
	testCases := []configTestCase{
		{
			name:                "no_files",
			expectIgnore:        []string{},
			expectDefaultIgnore: true,
			expectCopy:          false,
		},
		{
			name:                "local_overrides_global",
			globalContent:       "ignore:\n  - dist\ncopy: true\nuse_default_ignore: false\n",
			localContent:        "ignore:\n  - vendor\n  - vendor\n  - build\ncopy: false\n",
			expectIgnore:        []string{"vendor", "build"},
			expectDefaultIgnore: false,
			expectCopy:          false,
		},
		{
			name:                "global_kept_when_local_silent",
			globalContent:       "ignore:\n  - dist\n",
			localContent:        "copy: true\n",
			expectIgnore:        []string{"dist"},
			expectDefaultIgnore: true,
			expectCopy:          true,
		},
		{
			name:                "explicit_path_replaces_local",
			localContent:        "ignore:\n  - local\n",
			explicitPath:        "custom.yaml",
			explicitContent:     "ignore:\n  - explicit\n",
			expectIgnore:        []string{"explicit"},
			expectDefaultIgnore: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			homeDir := t.TempDir()
			workingDir := t.TempDir()
			configDir := filepath.Join(homeDir, utils.GlobalConfigDirectoryName)
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				t.Fatalf("create config dir: %v", err)
			}
			if testCase.globalContent != "" {
				globalPath := filepath.Join(configDir, utils.ConfigFileName)
				if err := os.WriteFile(globalPath, []byte(testCase.globalContent), 0o600); err != nil {
					t.Fatalf("write global config: %v", err)
				}
			}
			if testCase.localContent != "" {
				localPath := filepath.Join(workingDir, utils.LocalConfigFileName)
				if err := os.WriteFile(localPath, []byte(testCase.localContent), 0o600); err != nil {
					t.Fatalf("write local config: %v", err)
				}
			}
			if testCase.explicitPath != "" {
				target := filepath.Join(workingDir, testCase.explicitPath)
				if err := os.WriteFile(target, []byte(testCase.explicitContent), 0o600); err != nil {
					t.Fatalf("write explicit config: %v", err)
				}
			}

			t.Setenv("HOME", homeDir)
			t.Setenv("USERPROFILE", homeDir)

			loadedConfig, err := LoadApplicationConfiguration(LoadOptions{
				WorkingDirectory: workingDir,
				ExplicitFilePath: testCase.explicitPath,
			})
			if err != nil {
				t.Fatalf("LoadApplicationConfiguration error: %v", err)
			}
			if !reflect.DeepEqual(loadedConfig.Ignore, testCase.expectIgnore) {
				t.Fatalf("expected ignore %v, got %v", testCase.expectIgnore, loadedConfig.Ignore)
			}
			if loadedConfig.DefaultIgnoreEnabled() != testCase.expectDefaultIgnore {
				t.Fatalf("expected default ignore %v, got %v", testCase.expectDefaultIgnore, loadedConfig.DefaultIgnoreEnabled())
			}
			if loadedConfig.CopyEnabled() != testCase.expectCopy {
				t.Fatalf("expected copy %v, got %v", testCase.expectCopy, loadedConfig.CopyEnabled())
			}
		})
	}
}

func TestLoadApplicationConfigurationRejectsDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", t.TempDir())
	workingDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(workingDir, utils.LocalConfigFileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir}); err == nil {
		t.Fatalf("expected error when configuration path is a directory")
	}
}

func TestLoadApplicationConfigurationRejectsMalformedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", t.TempDir())
	workingDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(workingDir, utils.LocalConfigFileName), []byte("ignore: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir}); err == nil {
		t.Fatalf("expected error for malformed configuration")
	}
}

func TestMergeDoesNotAliasOverride(t *testing.T) {
	override := ApplicationConfiguration{Ignore: []string{"dist"}, Copy: boolPointer(true)}
	merged := ApplicationConfiguration{}.Merge(override)
	merged.Ignore[0] = "changed"
	*merged.Copy = false
	if override.Ignore[0] != "dist" || !*override.Copy {
		t.Fatalf("merge aliased override values: %+v", override)
	}
}

func TestLoadApplicationConfigurationIgnoresForeignConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", t.TempDir())
	workingDir := t.TempDir()
	foreignContent := "port: {{ .Values.port }}\ncopy: \"src/ -> dist/\"\nignore:\n  - a.txt\n"
	if err := os.WriteFile(filepath.Join(workingDir, "config.yaml"), []byte(foreignContent), 0o600); err != nil {
		t.Fatalf("write foreign config: %v", err)
	}
	loadedConfig, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir})
	if err != nil {
		t.Fatalf("LoadApplicationConfiguration error: %v", err)
	}
	if len(loadedConfig.Ignore) != 0 || loadedConfig.CopyEnabled() || !loadedConfig.DefaultIgnoreEnabled() {
		t.Fatalf("foreign config.yaml leaked into configuration: %+v", loadedConfig)
	}
}
