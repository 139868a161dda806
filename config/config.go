// Package config reads the optional kubectl-scalex configuration file and
// applies overrides from environment variables. The configuration is never
// written back.
package config

import (
	"os"
	"path"
	"strconv"

	"github.com/giantswarm/microerror"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v2"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yaml"

	// ProgramName is the name of this program.
	ProgramName = "kubectl-scalex"

	// EnvConfigDir overrides the configuration directory.
	EnvConfigDir = "KUBECTL_SCALEX_CONFIG_DIR"

	// EnvKubectl overrides the kubectl binary.
	EnvKubectl = "KUBECTL_SCALEX_KUBECTL"

	// EnvVerbose enables debug logging when set to a true value.
	EnvVerbose = "KUBECTL_SCALEX_VERBOSE"

	// EnvDisableColors disables colored output when set to a true value.
	EnvDisableColors = "KUBECTL_SCALEX_DISABLE_COLORS"
)

var (
	// Config holds the configuration in effect after Initialize.
	Config = newConfigStruct()

	// FileSystem is the afero filesystem the config file is read from.
	FileSystem afero.Fs

	// DefaultConfigDirPath is the default config dir path to use.
	DefaultConfigDirPath string

	// ConfigDirPath is the actual path of the config dir.
	ConfigDirPath string

	// ConfigFilePath is the path of the configuration file.
	ConfigFilePath string
)

// configStruct is the data structure of the YAML configuration file.
type configStruct struct {
	// Kubectl is the kubectl executable to run. Empty means "kubectl" from PATH.
	Kubectl string `yaml:"kubectl"`

	// Verbose enables debug logging to stderr.
	Verbose bool `yaml:"verbose"`

	// DisableColors disables colored output.
	DisableColors bool `yaml:"disable_colors"`
}

func newConfigStruct() *configStruct {
	return &configStruct{}
}

func init() {
	home, err := homedir.Dir()
	if err == nil {
		DefaultConfigDirPath = path.Join(home, ".config", ProgramName)
	}
}

// Initialize sets up the configuration from the config file in
// configDirPath, read from fs, and from environment variables.
// An empty configDirPath selects the directory given by EnvConfigDir or
// DefaultConfigDirPath. A missing config file is not an error.
func Initialize(fs afero.Fs, configDirPath string) error {
	FileSystem = fs

	if configDirPath == "" {
		configDirPath = os.Getenv(EnvConfigDir)
	}
	if configDirPath == "" {
		configDirPath = DefaultConfigDirPath
	}

	ConfigDirPath = configDirPath
	ConfigFilePath = path.Join(ConfigDirPath, ConfigFileName)

	c, err := readFromFile(fs, ConfigFilePath)
	if err != nil {
		return microerror.Mask(err)
	}

	err = c.applyEnvironment()
	if err != nil {
		return microerror.Mask(err)
	}

	Config = c

	return nil
}

// readFromFile reads configuration from the YAML config file.
func readFromFile(fs afero.Fs, filePath string) (*configStruct, error) {
	config := newConfigStruct()

	doesExist, err := afero.Exists(fs, filePath)
	if err != nil {
		return config, microerror.Mask(err)
	}
	if !doesExist {
		return config, nil
	}

	data, err := afero.ReadFile(fs, filePath)
	if err != nil {
		return config, microerror.Mask(err)
	}

	err = yaml.UnmarshalStrict(data, config)
	if err != nil {
		return config, microerror.Maskf(invalidConfigFileError, "%s", err.Error())
	}

	return config, nil
}

// applyEnvironment overrides fields with values from environment variables.
func (c *configStruct) applyEnvironment() error {
	if v := os.Getenv(EnvKubectl); v != "" {
		c.Kubectl = v
	}

	boolVars := []struct {
		name  string
		field *bool
	}{
		{name: EnvVerbose, field: &c.Verbose},
		{name: EnvDisableColors, field: &c.DisableColors},
	}
	for _, bv := range boolVars {
		v := os.Getenv(bv.name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return microerror.Maskf(invalidEnvironmentError, "%s=%q is not a boolean", bv.name, v)
		}
		*bv.field = b
	}

	return nil
}
