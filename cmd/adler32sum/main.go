// adler32sum prints the Adler-32 checksum of one or more files.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/zflate"
)

type CLI struct {
	Files []string `kong:"arg,help='Files to checksum',type='existingfile'"`

	Initial uint32 `kong:"help='Initial checksum value (zlib streams start at 1)',short='i',default='1'"`
}

func main() {
	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("adler32sum"),
		kong.Description("Calculate the Adler-32 checksum of files"),
		kong.UsageOnError(),
	)

	failed := false
	for _, file := range cli.Files {
		if err := printChecksum(file, cli.Initial); err != nil {
			logrus.Errorf("%s", err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

func printChecksum(file string, initial uint32) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrapf(err, "error reading %s", file)
	}

	fmt.Printf("%08x  %s\n", zflate.Adler32(data, initial), file)

	return nil
}
