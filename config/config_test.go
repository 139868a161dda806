package config

import (
	"path"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

// Test_Initialize_Empty tests the case where neither the config file nor its
// directory exist.
func Test_Initialize_Empty(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := Initialize(fs, "/home/user/.config/"+ProgramName)
	if err != nil {
		t.Fatalf("error == %#v, want nil", err)
	}

	if diff := cmp.Diff(*newConfigStruct(), *Config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if ConfigFilePath != "/home/user/.config/"+ProgramName+"/"+ConfigFileName {
		t.Errorf("ConfigFilePath = %q", ConfigFilePath)
	}
}

func Test_Initialize(t *testing.T) {
	testCases := []struct {
		yamlText     string
		env          map[string]string
		expected     configStruct
		errorMatcher func(error) bool
	}{
		{
			yamlText: "kubectl: /opt/bin/kubectl\nverbose: true\n",
			expected: configStruct{Kubectl: "/opt/bin/kubectl", Verbose: true},
		},
		{
			yamlText: "disable_colors: true\n",
			env:      map[string]string{EnvKubectl: "oc", EnvVerbose: "1"},
			expected: configStruct{Kubectl: "oc", Verbose: true, DisableColors: true},
		},
		{
			yamlText: "verbose: true\n",
			env:      map[string]string{EnvVerbose: "false"},
			expected: configStruct{},
		},
		{
			env:          map[string]string{EnvDisableColors: "sometimes"},
			errorMatcher: IsInvalidEnvironmentError,
		},
		{
			yamlText:     "verbose: [\n",
			errorMatcher: IsInvalidConfigFileError,
		},
		{
			yamlText:     "kubeconfig: /tmp/kc\n",
			errorMatcher: IsInvalidConfigFileError,
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			fs := afero.NewMemMapFs()
			dir := "/config"
			if tc.yamlText != "" {
				err := afero.WriteFile(fs, path.Join(dir, ConfigFileName), []byte(tc.yamlText), 0600)
				if err != nil {
					t.Fatal(err)
				}
			}

			err := Initialize(fs, dir)

			switch {
			case err == nil && tc.errorMatcher == nil:
				// correct; carry on
			case err != nil && tc.errorMatcher == nil:
				t.Fatalf("error == %#v, want nil", err)
			case err == nil && tc.errorMatcher != nil:
				t.Fatalf("error == nil, want non-nil")
			case !tc.errorMatcher(err):
				t.Fatalf("error == %#v, want matching", err)
			}

			if tc.errorMatcher != nil {
				return
			}

			if diff := cmp.Diff(tc.expected, *Config); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_Initialize_DirFromEnvironment(t *testing.T) {
	t.Setenv(EnvConfigDir, "/from/env")

	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "/from/env/"+ConfigFileName, []byte("kubectl: /env/kubectl\n"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	err = Initialize(fs, "")
	if err != nil {
		t.Fatalf("error == %#v, want nil", err)
	}

	if ConfigDirPath != "/from/env" {
		t.Errorf("ConfigDirPath = %q, want %q", ConfigDirPath, "/from/env")
	}
	if Config.Kubectl != "/env/kubectl" {
		t.Errorf("Config.Kubectl = %q, want %q", Config.Kubectl, "/env/kubectl")
	}
}

// Test_Initialize_InvalidEnvironmentOrder checks that the first invalid
// variable is reported, every time.
func Test_Initialize_InvalidEnvironmentOrder(t *testing.T) {
	t.Setenv(EnvVerbose, "loud")
	t.Setenv(EnvDisableColors, "sometimes")

	for i := 0; i < 20; i++ {
		err := Initialize(afero.NewMemMapFs(), "/config")
		if !IsInvalidEnvironmentError(err) {
			t.Fatalf("error == %#v, want InvalidEnvironmentError", err)
		}
		if !strings.Contains(err.Error(), EnvVerbose) || strings.Contains(err.Error(), EnvDisableColors) {
			t.Fatalf("error = %q, want it to name %s only", err.Error(), EnvVerbose)
		}
	}
}
