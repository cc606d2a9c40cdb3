// Package main contains the cli implementation of latticectl. It uses the
// cobra package for cli tool implementation, the same way the tool this
// one was adapted from does.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lattice/internal/core"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "latticectl",
		Short: "Inspect the abstract value lattice from the command line",
	}

	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(joinCmd())
	rootCmd.AddCommand(restrictCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <token>...",
		Short: "Build a value from literal tokens and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := parseLiteral(args)
			if err != nil {
				return err
			}
			fmt.Println(v)
			return nil
		},
	}
}

func joinCmd() *cobra.Command {
	var widen bool
	cmd := &cobra.Command{
		Use:   "join <a-tokens> <b-tokens>",
		Short: "Join two values, each given as a comma-separated token list",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := parseLiteral(strings.Split(args[0], ","))
			if err != nil {
				return fmt.Errorf("parsing first operand: %w", err)
			}
			b, err := parseLiteral(strings.Split(args[1], ","))
			if err != nil {
				return fmt.Errorf("parsing second operand: %w", err)
			}
			fmt.Println(core.Join(a, b, widen))
			return nil
		},
	}
	cmd.Flags().BoolVar(&widen, "widen", false, "apply widening during the join")
	return cmd
}

var restrictOps = map[string]func(*core.Value) *core.Value{
	"not-absent":           core.RestrictToNotAbsent,
	"not-null-not-undef":   core.RestrictToNotNullNotUndef,
	"bool":                 core.RestrictToBool,
	"truthy":               core.RestrictToTruthy,
	"falsy":                core.RestrictToFalsy,
	"num":                  core.RestrictToNum,
	"str":                  core.RestrictToStr,
	"str-numeric":          core.RestrictToStrNumeric,
	"str-not-numeric":      core.RestrictToStrNotNumeric,
	"not-str-uint":         core.RestrictToNotStrUInt,
	"not-str-other-num":    core.RestrictToNotStrOtherNum,
	"not-str-ident-parts":  core.RestrictToNotStrIdentifierParts,
	"not-str-prefix":       core.RestrictToNotStrPrefix,
	"getter":               core.RestrictToGetter,
	"setter":               core.RestrictToSetter,
	"getter-setter":        core.RestrictToGetterSetter,
	"not-getter-setter":    core.RestrictToNotGetterSetter,
	"non-symbol-object":    core.RestrictToNonSymbolObject,
	"symbol":               core.RestrictToSymbol,
	"function":             core.RestrictToFunction,
	"not-function":         core.RestrictToNotFunction,
	"typeof-object":        core.RestrictToTypeofObject,
	"not-typeof-object":    core.RestrictToNotTypeofObject,
}

func restrictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restrict <op> <token>...",
		Short: "Apply a named restriction operator to a value",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			op, ok := restrictOps[args[0]]
			if !ok {
				names := make([]string, 0, len(restrictOps))
				for name := range restrictOps {
					names = append(names, name)
				}
				return fmt.Errorf("unknown operator %q; known operators: %s", args[0], strings.Join(names, ", "))
			}
			v, err := parseLiteral(args[1:])
			if err != nil {
				return err
			}
			fmt.Println(op(v))
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	var optionsPath string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load an options file, apply it, and report the effective settings",
		RunE: func(_ *cobra.Command, _ []string) error {
			opts := core.DefaultOptions()
			if optionsPath != "" {
				loaded, err := core.LoadOptions(optionsPath)
				if err != nil {
					return err
				}
				opts = loaded
			}
			core.Apply(opts)
			fmt.Printf("%+v\n", opts)
			return nil
		},
	}
	cmd.Flags().StringVarP(&optionsPath, "options", "o", "", "path to a TOML options file")
	return cmd
}
