package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newInfoCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info [input]",
		Short: "Print size, emptiness and hex form of the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.readInput(cmd, inputArg(args, 0))
			if err != nil {
				return err
			}
			hex := r.HexString(false)
			return opts.print(cmd, map[string]interface{}{
				"size":  r.Size(),
				"empty": r.Empty(),
				"hex":   hex,
			}, fmt.Sprintf("size=%d empty=%t hex=%s", r.Size(), r.Empty(), hex))
		},
	}
}

func newHexCmd(opts *globalOptions) *cobra.Command {
	var lower bool
	cmd := &cobra.Command{
		Use:   "hex [input]",
		Short: "Encode the input as hex",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.readInput(cmd, inputArg(args, 0))
			if err != nil {
				return err
			}
			s := r.HexString(lower)
			return opts.print(cmd, map[string]string{"hex": s}, s)
		},
	}
	cmd.Flags().BoolVarP(&lower, "lower", "l", false, "Use lower-case digits")
	return cmd
}

func newBase64Cmd(opts *globalOptions) *cobra.Command {
	var wrap int
	cmd := &cobra.Command{
		Use:   "base64 [input]",
		Short: "Encode the input as base64",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.readInput(cmd, inputArg(args, 0))
			if err != nil {
				return err
			}
			s := r.Base64String(wrap)
			return opts.print(cmd, map[string]string{"base64": s}, s)
		},
	}
	cmd.Flags().IntVarP(&wrap, "wrap", "w", 0, "Break lines after this many characters (0 = single line)")
	return cmd
}

func newSliceCmd(opts *globalOptions) *cobra.Command {
	var from, count, to, prefix, suffix int
	cmd := &cobra.Command{
		Use:   "slice [input]",
		Short: "Trim and slice the input, printing the result as hex",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.readInput(cmd, inputArg(args, 0))
			if err != nil {
				return err
			}
			if err := r.RemovePrefix(prefix); err != nil {
				return err
			}
			if err := r.RemoveSuffix(suffix); err != nil {
				return err
			}

			switch {
			case cmd.Flags().Changed("count"):
				r, err = r.SubRange(from, count)
			case cmd.Flags().Changed("to"):
				if r, err = r.SubRangeTo(to); err == nil {
					r, err = r.SubRangeFrom(from)
				}
			default:
				r, err = r.SubRangeFrom(from)
			}
			if err != nil {
				return err
			}

			hex := r.HexString(false)
			return opts.print(cmd, map[string]interface{}{
				"size": r.Size(),
				"hex":  hex,
			}, hex)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&from, "from", 0, "Offset of the first byte to keep")
	flags.IntVar(&count, "count", 0, "Number of bytes to keep from --from")
	flags.IntVar(&to, "to", 0, "Offset one past the last byte to keep")
	flags.IntVar(&prefix, "prefix", 0, "Bytes to drop from the front before slicing")
	flags.IntVar(&suffix, "suffix", 0, "Bytes to drop from the back before slicing")
	cmd.MarkFlagsMutuallyExclusive("count", "to")
	return cmd
}

func newCompareCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare a b",
		Short: "Compare two inputs byte-wise, printing -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.readInput(cmd, args[0])
			if err != nil {
				return err
			}
			b, err := opts.readInput(cmd, args[1])
			if err != nil {
				return err
			}
			res := a.Compare(b)
			return opts.print(cmd, map[string]interface{}{
				"result": res,
				"equal":  a.Equal(b),
			}, strconv.Itoa(res))
		},
	}
}

func newAtCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "at index [input]",
		Short: "Print the byte at index",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}
			r, err := opts.readInput(cmd, inputArg(args, 1))
			if err != nil {
				return err
			}
			b, err := r.At(index)
			if err != nil {
				return err
			}
			return opts.print(cmd, map[string]interface{}{
				"index": index,
				"value": b,
			}, fmt.Sprintf("0x%02X", b))
		},
	}
}
