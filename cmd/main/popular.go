package main

import (
	"github.com/spf13/cobra"

	"dogbreed-service/internal/breeds/service"
	"dogbreed-service/internal/render"
)

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List the most popular breeds",
	Args:  cobra.NoArgs,
	RunE:  runPopular,
}

var popularN int

func init() {
	popularCmd.Flags().IntVarP(&popularN, "count", "n", service.DefaultPopularCount, "how many breeds to list")
	rootCmd.AddCommand(popularCmd)
}

func runPopular(cmd *cobra.Command, _ []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	top := service.TopPopularity(e.catalogs.Current(), popularN)
	return emit(cmd, top, render.Popularity(popularN, top))
}
