package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gsa/internal/core/filter"
	perr "gsa/internal/platform/errors"
	"gsa/internal/services/api/filters/domain"

	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "normalize <filter>",
		Short: "Print the canonical form of a filter.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := filter.Parse(args[0])
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), f.FilterString())
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(domain.Normalize(f))
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print every part of the filter as JSON")
	return cmd
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <keyword> <value> [relation]",
		Short: "Build a single filter term the way the list views do.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			relation := ""
			if len(args) == 3 {
				relation = args[2]
			}
			value := filter.Str(args[1])
			if n, err := strconv.Atoi(args[1]); err == nil {
				value = filter.Int(n)
			}
			fmt.Fprintln(cmd.OutOrStdout(), filter.Convert(args[0], value, relation).String())
			return nil
		},
	}
}

func newComposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compose <and|or|not> <left> [right]",
		Short: "Combine filters with and, or or not.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			left := filter.Parse(args[1])
			right := filter.New()
			if len(args) == 3 {
				right = filter.Parse(args[2])
			}

			if args[0] == filter.Not && len(args) == 3 {
				return perr.InvalidArgf("not takes a single filter")
			}
			out, err := filter.Compose(args[0], left, right)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.FilterString())
			return nil
		},
	}
}

func newPageCmd() *cobra.Command {
	var total int
	cmd := &cobra.Command{
		Use:   "page <first|next|previous|last> <filter>",
		Short: "Move a filter's view window.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := filter.Parse(args[1])
			switch args[0] {
			case "first":
				f = f.First()
			case "next":
				f = f.Next()
			case "previous":
				f = f.Previous()
			case "last":
				if total <= 0 {
					return perr.InvalidArgf("last needs --total")
				}
				f = f.Last(total)
			default:
				return perr.InvalidArgf("unknown direction %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.FilterString())
			return nil
		},
	}
	cmd.Flags().IntVar(&total, "total", 0, "number of matching entities, required by last")
	return cmd
}
