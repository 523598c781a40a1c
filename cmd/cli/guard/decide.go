package guard

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/myrjola/tutorials/internal/identity"
	"github.com/myrjola/tutorials/internal/routeguard"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "guard",
	Title: "Route guard",
}

func init() {
	Decide.Flags().String("path", "/", "request path")
	Decide.Flags().String("marker", "", "value of the user_type cookie, empty when absent")
}

var Decide = &cobra.Command{
	Use:     "decide",
	GroupID: "guard",
	Short:   "Print the route guard decision",
	Long:    `Prints what the route guard does with a request for path carrying the given identity marker.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := cmd.Flags().GetString("path")
		if err != nil {
			return err
		}
		marker, err := cmd.Flags().GetString("marker")
		if err != nil {
			return err
		}
		return writeDecision(cmd.OutOrStdout(), path, identity.Marker(marker))
	},
}

func writeDecision(w io.Writer, path string, marker identity.Marker) error {
	guard := routeguard.New(slog.New(slog.NewTextHandler(io.Discard, nil)), identity.CookieOptions{Secure: true})
	decision := guard.Evaluate(path, marker)
	if location := decision.Location(); location != "" {
		_, err := fmt.Fprintf(w, "%s %s\n", decision, location)
		return err
	}
	_, err := fmt.Fprintln(w, decision)
	return err
}
