package testutils

import (
	"bytes"
	"io"
	"os"
	"path"

	"github.com/spf13/afero"

	"github.com/giantswarm/kubectl-scalex/config"
)

// CaptureOutput runs a function and returns its STDOUT output as a string.
func CaptureOutput(f func()) (printed string) {
	return capture(&os.Stdout, f)
}

// CaptureStderr runs a function and returns its STDERR output as a string.
func CaptureStderr(f func()) (printed string) {
	return capture(&os.Stderr, f)
}

func capture(target **os.File, f func()) string {
	orig := *target
	r, w, _ := os.Pipe()
	*target = w

	outC := make(chan string)
	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outC <- buf.String()
	}()

	defer func() {
		*target = orig
	}()

	f()

	w.Close()
	return <-outC
}

// TempConfig writes configYAML (if not empty) as config file into a
// config directory on fs and initializes the configuration from it.
// The directory path is returned.
func TempConfig(fs afero.Fs, configYAML string) (string, error) {
	dir := "/tmp/" + config.ProgramName

	if configYAML != "" {
		err := afero.WriteFile(fs, path.Join(dir, config.ConfigFileName), []byte(configYAML), 0600)
		if err != nil {
			return dir, err
		}
	}

	err := config.Initialize(fs, dir)
	if err != nil {
		return dir, err
	}

	return dir, nil
}
