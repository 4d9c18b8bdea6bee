// zdecompress decompresses a zlib or raw DEFLATE compressed file.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/zflate"
)

const maxOutputSize = 1 << 30

type CLI struct {
	Source string `kong:"arg,help='Compressed input file',type='existingfile'"`
	Target string `kong:"arg,optional,help='Output file (default: source with .raw suffix)'"`

	Size    int  `kong:"help='Expected decompressed size in bytes; 0 grows the buffer as needed',short='s'"`
	Raw     bool `kong:"help='Input is a raw DEFLATE stream without zlib framing',short='r'"`
	Lenient bool `kong:"help='Ignore a mismatching Adler-32 trailer',short='l'"`
	Debug   bool `kong:"help='Enable debug output',short='d'"`
}

func main() {
	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("zdecompress"),
		kong.Description("Decompress zlib (RFC 1950) or raw DEFLATE (RFC 1951) data"),
		kong.UsageOnError(),
	)

	if cli.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := run(cli); err != nil {
		logrus.Errorf("unable to decompress %s: %s", cli.Source, err)
		os.Exit(1)
	}
}

func run(cli *CLI) error {
	compressed, err := os.ReadFile(cli.Source)
	if err != nil {
		return errors.Wrap(err, "error reading source file")
	}

	logrus.Debugf("read %d compressed bytes from %s", len(compressed), cli.Source)

	decoded, err := decompress(cli, compressed)
	if err != nil {
		return err
	}

	target := cli.Target
	if target == "" {
		target = cli.Source + ".raw"
	}

	if err := os.WriteFile(target, decoded, 0o644); err != nil {
		return errors.Wrap(err, "error writing target file")
	}

	logrus.Infof("decompressed %d bytes to %s", len(decoded), target)

	return nil
}

func decompress(cli *CLI, compressed []byte) ([]byte, error) {
	opts := zflate.DefaultOptions()
	if cli.Lenient {
		opts = zflate.LenientOptions()
	}

	outLen := cli.Size
	grow := outLen == 0
	if grow {
		outLen = 4 * len(compressed)
		if outLen < 4096 {
			outLen = 4096
		}
	}

	for {
		var decoded []byte
		var err error

		if cli.Raw {
			decoded, err = zflate.DecompressRaw(compressed, outLen)
		} else {
			decoded, err = zflate.Decompress(compressed, outLen, opts)
		}

		if grow && errors.Is(err, zflate.ErrInsufficientSpace) && outLen < maxOutputSize {
			outLen *= 2
			logrus.Debugf("output buffer too small, retrying with %d bytes", outLen)

			continue
		}

		return decoded, err
	}
}
