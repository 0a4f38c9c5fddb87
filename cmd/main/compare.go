package main

import (
	"github.com/spf13/cobra"

	"dogbreed-service/internal/breeds/service"
	"dogbreed-service/internal/render"
)

var compareCmd = &cobra.Command{
	Use:   "compare A B",
	Short: "Compare two breeds side by side",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	c, ok := service.Compare(e.catalogs.Current(), e.aliases, args[0], args[1])
	if !ok {
		return emit(cmd, map[string]string{"kind": "not_found", "a": args[0], "b": args[1]}, render.MsgCompareNotFound)
	}
	return emit(cmd, c, render.Comparison(c))
}
