package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/corekit/core/textrange"
)

var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Work with location/length text ranges",
}

var (
	ofIgnoreCase       bool
	ofBackwards        bool
	ofIgnoreDiacritics bool

	rangeOfCmd = &cobra.Command{
		Use:   "of <substring> <text>",
		Short: "Find the rune range of a substring",
		Args:  cobra.ExactArgs(2),
		RunE:  runRangeOf,
	}
)

var rangeIntersectCmd = &cobra.Command{
	Use:   "intersect <a> <b>",
	Short: "Intersect two ranges given as \"{location, length}\"",
	Args:  cobra.ExactArgs(2),
	RunE:  runRangeIntersect,
}

var rangeUnionCmd = &cobra.Command{
	Use:   "union <a> <b>",
	Short: "Union of two ranges given as \"{location, length}\"",
	Args:  cobra.ExactArgs(2),
	RunE:  runRangeUnion,
}

var rangeSliceCmd = &cobra.Command{
	Use:   "slice <range> <text>",
	Short: "Extract the substring a range addresses",
	Args:  cobra.ExactArgs(2),
	RunE:  runRangeSlice,
}

func init() {
	rangeOfCmd.Flags().BoolVar(&ofIgnoreCase, "ignore-case", false, "Match without regard to letter case")
	rangeOfCmd.Flags().BoolVar(&ofBackwards, "backwards", false, "Report the last match instead of the first")
	rangeOfCmd.Flags().BoolVar(&ofIgnoreDiacritics, "ignore-diacritics", false, "Match base characters regardless of combining marks")

	rangeCmd.AddCommand(rangeOfCmd)
	rangeCmd.AddCommand(rangeIntersectCmd)
	rangeCmd.AddCommand(rangeUnionCmd)
	rangeCmd.AddCommand(rangeSliceCmd)
}

func runRangeOf(cmd *cobra.Command, args []string) error {
	var opts []textrange.SearchOption
	if ofIgnoreCase {
		opts = append(opts, textrange.IgnoreCase())
	}
	if ofBackwards {
		opts = append(opts, textrange.Backwards())
	}
	if ofIgnoreDiacritics {
		opts = append(opts, textrange.IgnoreDiacritics())
	}

	r := textrange.Of(args[1], args[0], opts...)
	if r.IsNotFound() {
		return fmt.Errorf("substring %q not found", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), r)
	return nil
}

func runRangeIntersect(cmd *cobra.Command, args []string) error {
	a, b, err := parseRangePair(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Intersection(b))
	return nil
}

func runRangeUnion(cmd *cobra.Command, args []string) error {
	a, b, err := parseRangePair(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Union(b))
	return nil
}

func runRangeSlice(cmd *cobra.Command, args []string) error {
	r, err := textrange.Parse(args[0])
	if err != nil {
		return err
	}
	s, err := textrange.Slice(args[1], r)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}

func parseRangePair(args []string) (a, b textrange.Range, err error) {
	if a, err = textrange.Parse(args[0]); err != nil {
		return a, b, err
	}
	b, err = textrange.Parse(args[1])
	return a, b, err
}
