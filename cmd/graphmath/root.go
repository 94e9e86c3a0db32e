// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/TypedLambda/graphmath"
	"github.com/TypedLambda/graphmath/mat"
	"github.com/TypedLambda/graphmath/scalar"
	"github.com/TypedLambda/graphmath/vec"
)

type rootFlags struct {
	digits  int
	verbose bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:           "graphmath",
		Short:         "Evaluate vector and matrix operations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVar(&f.digits, "digits", 0, "round results to this many fractional digits (negative rounds to tens, hundreds, ...)")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "log debug diagnostics to stderr")

	root.AddCommand(
		operandCmd(f, "dot X1 Y1 Z1 X2 Y2 Z2", "Dot product of two 3D vectors", 6, func(xs []float64) (any, error) {
			return vec.New3(xs[0], xs[1], xs[2]).Dot(vec.New3(xs[3], xs[4], xs[5])), nil
		}),
		operandCmd(f, "cross X1 Y1 Z1 X2 Y2 Z2", "Cross product of two 3D vectors", 6, func(xs []float64) (any, error) {
			return vec.New3(xs[0], xs[1], xs[2]).Cross(vec.New3(xs[3], xs[4], xs[5])), nil
		}),
		operandCmd(f, "length X Y Z", "Euclidean length of a 3D vector", 3, func(xs []float64) (any, error) {
			return vec.New3(xs[0], xs[1], xs[2]).Length(), nil
		}),
		operandCmd(f, "normalize X Y Z", "Unit vector in the direction of a 3D vector", 3, func(xs []float64) (any, error) {
			return vec.New3(xs[0], xs[1], xs[2]).Normalize()
		}),
		operandCmd(f, "rotate THETA X Y Z", "Rotate a row vector about Z by THETA radians", 4, func(xs []float64) (any, error) {
			return mat.Rotate33(xs[0]).ApplyLeft(vec.New3(xs[1], xs[2], xs[3])), nil
		}),
		operandCmd(f, "translate TX TY X Y", "Translate a 2D point by (TX, TY)", 4, func(xs []float64) (any, error) {
			return mat.Translate33(xs[0], xs[1]).TransformPoint(vec.New2(xs[2], xs[3])), nil
		}),
	)

	return root
}

// operandCmd builds a leaf command taking exactly n numeric operands.
//
// Flag parsing is done by splitOperands instead of cobra, so operands such
// as -2 are never read as shorthand flags.
func operandCmd(f *rootFlags, use, short string, n int, op func([]float64) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := splitOperands(cmd, args)
			if err != nil {
				return err
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			if len(operands) != n {
				return fmt.Errorf("accepts %d arg(s), received %d", n, len(operands))
			}
			if f.verbose {
				graphmath.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			xs, err := parseFloats(operands)
			if err != nil {
				return err
			}
			res, err := op(xs)
			if err != nil {
				return err
			}

			return printResult(cmd, f, res)
		},
	}
}

// splitOperands parses the flags in args and returns the remaining operands.
// Anything that parses as a number is an operand unless it is the value of a
// preceding flag; everything after "--" is an operand.
func splitOperands(cmd *cobra.Command, args []string) ([]string, error) {
	fs := cmd.Flags()
	cmd.InheritedFlags() // merges the persistent flags into fs

	var operands, flags []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			operands = append(operands, args[i+1:]...)
			break
		}
		if _, err := strconv.ParseFloat(a, 64); err == nil || !strings.HasPrefix(a, "-") {
			operands = append(operands, a)
			continue
		}
		flags = append(flags, a)
		if strings.Contains(a, "=") || i+1 == len(args) {
			continue
		}
		var fl *pflag.Flag
		if name, ok := strings.CutPrefix(a, "--"); ok {
			fl = fs.Lookup(name)
		} else if len(a) == 2 {
			fl = fs.ShorthandLookup(a[1:])
		}
		if fl != nil && fl.NoOptDefVal == "" {
			i++
			flags = append(flags, args[i])
		}
	}
	if err := fs.Parse(flags); err != nil {
		return nil, err
	}

	return operands, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = x
	}

	return out, nil
}

// printResult writes res, rounded when --digits is set.
func printResult(cmd *cobra.Command, f *rootFlags, res any) error {
	if cmd.Flags().Changed("digits") {
		var err error
		switch r := res.(type) {
		case float64:
			res, err = scalar.Round(r, f.digits)
		case vec.Vec2:
			res, err = r.Round(f.digits)
		case vec.Vec3:
			res, err = r.Round(f.digits)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), res)

	return err
}
