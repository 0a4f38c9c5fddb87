package main

import (
	"strings"

	"github.com/spf13/cobra"

	"dogbreed-service/internal/breeds/service"
	"dogbreed-service/internal/render"
)

var searchCmd = &cobra.Command{
	Use:   "search NAME",
	Short: "Look up a breed by Korean or English name or nickname",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	cat := e.catalogs.Current()
	res := service.Resolve(cat, e.aliases, strings.Join(args, " "))

	md := render.Search(res)
	if cat.Len() == 0 {
		md = render.MsgEmptyCatalog
	}
	return emit(cmd, res, md)
}
