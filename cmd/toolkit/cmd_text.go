package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shoptoolkit/toolkit/pkg/textutil"
)

// textCmd builds a command that joins its arguments with spaces and prints fn of the result.
func textCmd(use, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " TEXT...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), fn(strings.Join(args, " ")))
			return err
		},
	}
}

func initialsCmd() *cobra.Command {
	return textCmd("initials", "Print the first letter of each word", textutil.ExtractInitials)
}

func titleCmd() *cobra.Command {
	return textCmd("title", "Capitalize the first letter of each word", textutil.CapitalizeFirstLetterOfEachWord)
}

func spacedCmd() *cobra.Command {
	return textCmd("spaced", "Separate each letter with spaces", textutil.SeparateEachLetterWithSpaces)
}

func capitalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capitalize TEXT",
		Short: "Capitalize the first letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := textutil.CapitalizeFirstLetter(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
}

func passwordCmd() *cobra.Command {
	var (
		minLength int
		asBool    bool
	)
	m := textutil.PasswordMessages{
		Strong:   "Your password is strong",
		Weak:     "Please add at least one special character",
		TooShort: "Your password is shorter than the minimum length",
		Empty:    "Your password is empty",
	}

	cmd := &cobra.Command{
		Use:   "password PASSWORD",
		Short: "Check password strength",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out string
			if asBool {
				out = strconv.FormatBool(textutil.IsStrongPassword(args[0], minLength))
			} else {
				out = textutil.VerifyPasswordStrength(args[0], minLength, m)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&minLength, "min", 8, "Minimum number of characters")
	f.BoolVar(&asBool, "bool", false, "Print true or false instead of a message")
	f.StringVar(&m.Strong, "strong", m.Strong, "Message for a strong password")
	f.StringVar(&m.Weak, "weak", m.Weak, "Message for a weak password")
	f.StringVar(&m.TooShort, "short", m.TooShort, "Message for a short password")
	f.StringVar(&m.Empty, "empty", m.Empty, "Message for an empty password")

	return cmd
}

func copyrightCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copyright START_YEAR",
		Short: "Print a copyright notice up to the current year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid start year %q: %w", args[0], err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), textutil.CopyrightsAt(year, a.now()))
			return err
		},
	}
}
