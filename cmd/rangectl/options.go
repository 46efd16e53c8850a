package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cc7"
	"cc7/codec"
)

const (
	formatText   = "text"
	formatHex    = "hex"
	formatBase64 = "base64"
)

type globalOptions struct {
	inputFormat string
	json        bool
	verbose     bool
	logJSON     bool
	cache       bool

	logger    *logrus.Logger
	encCache  *codec.Cache
	prevCodec codec.Encoder
}

func (o *globalOptions) setup(cmd *cobra.Command) error {
	switch o.inputFormat {
	case formatText, formatHex, formatBase64:
	default:
		return fmt.Errorf("unknown input format %q", o.inputFormat)
	}

	o.logger = logrus.New()
	o.logger.SetOutput(cmd.ErrOrStderr())
	o.logger.SetLevel(logrus.WarnLevel)
	if o.verbose {
		o.logger.SetLevel(logrus.DebugLevel)
	}
	if o.logJSON {
		o.logger.SetFormatter(&logrus.JSONFormatter{})
	}
	cc7.SetLogger(o.logger)

	if o.cache {
		o.encCache = codec.NewCache()
		o.prevCodec = cc7.SetEncoder(o.encCache)
	}
	return nil
}

func (o *globalOptions) teardown() {
	if o.encCache == nil {
		return
	}
	cc7.SetEncoder(o.prevCodec)
	o.logger.WithFields(logrus.Fields(o.encCache.Stats())).Debug("encoder cache stats")
	o.encCache.Close()
	o.encCache = nil
}

// readInput returns the range named by arg, reading stdin when arg is "-".
func (o *globalOptions) readInput(cmd *cobra.Command, arg string) (cc7.ByteRange, error) {
	raw := arg
	if arg == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return cc7.ByteRange{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = string(b)
	}
	o.logger.Debugf("read %d input bytes as %s", len(raw), o.inputFormat)

	switch o.inputFormat {
	case formatHex:
		return cc7.ParseHexString(strings.TrimSpace(raw))
	case formatBase64:
		return cc7.ParseBase64String(strings.TrimSpace(raw))
	default:
		return cc7.MakeRange(raw), nil
	}
}

// inputArg picks the positional input at index i, defaulting to stdin.
func inputArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return "-"
}

// print writes v as JSON, or text when --json is off.
func (o *globalOptions) print(cmd *cobra.Command, v interface{}, text string) error {
	out := cmd.OutOrStdout()
	if o.json {
		return json.NewEncoder(out).Encode(v)
	}
	_, err := fmt.Fprintln(out, text)
	return err
}
