package cli

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the HTTP routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var router chi.Router
			app := fx.New(appOptions(
				fx.NopLogger,
				fx.Replace(slog.New(slog.NewTextHandler(io.Discard, nil))),
				fx.Populate(&router),
			)...)
			if err := app.Err(); err != nil {
				return err
			}
			return printRoutes(cmd.OutOrStdout(), router)
		},
	}
}

type route struct {
	method, pattern string
}

func printRoutes(out io.Writer, r chi.Routes) error {
	var routes []route
	err := chi.Walk(r, func(method, pattern string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, route{method: method, pattern: strings.ReplaceAll(pattern, "/*/", "/")})
		return nil
	})
	if err != nil {
		return err
	}

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].pattern != routes[j].pattern {
			return routes[i].pattern < routes[j].pattern
		}
		return routes[i].method < routes[j].method
	})

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tPATH")
	for _, rt := range routes {
		fmt.Fprintf(w, "%s\t%s\n", rt.method, rt.pattern)
	}
	return w.Flush()
}
