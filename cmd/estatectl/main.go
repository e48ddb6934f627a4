package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/estate-admin-api/internal/cli"
)

func main() {
	logrus.SetLevel(logrus.WarnLevel)

	if err := cli.NewRootCmd(cli.DefaultEnv()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
