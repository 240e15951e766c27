package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/coregx/esm/cmd"
)

func main() {
	logrus.SetLevel(logrus.WarnLevel)

	if err := cmd.NewRootCommand().Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "esm: %s\n", msg)
		}

		var exit *cmd.ExitError
		if errors.As(err, &exit) {
			os.Exit(int(exit.Code))
		}

		os.Exit(int(cmd.ExFail))
	}
}
