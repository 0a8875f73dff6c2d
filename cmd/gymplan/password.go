package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/gymplan/pkg"

	"github.com/spf13/cobra"
)

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for a users file entry",
		Long: `Read a password from stdin and print its bcrypt hash, ready to be put in
the password_hash field of a [[users]] entry of the service users file.

EXAMPLE:

  $ echo -n 's3cret' | gymplan hash-password`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoDB: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errors.New("no password on stdin")
			}
			password := strings.TrimRight(line, "\r\n")
			if password == "" {
				return errors.New("empty password")
			}

			hash, err := pkg.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
