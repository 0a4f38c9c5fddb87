package main

import (
	"time"

	"github.com/spf13/cobra"

	"dogbreed-service/internal/breeds/model"
	"dogbreed-service/internal/breeds/service"
	"dogbreed-service/internal/render"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend breeds for a living environment",
	Long:  "Scores every breed against the given environment and prints the best matches. With --variety the picks are sampled from a wider pool; --seed makes the sample reproducible.",
	Args:  cobra.NoArgs,
	RunE:  runRecommend,
}

var (
	recSpace    string
	recActivity string
	recShedding bool
	recBarking  bool
	recBeginner bool
	recK        int
	recVariety  bool
	recPool     int
	recSeed     int64
)

func init() {
	d := model.DefaultProfile()
	recommendCmd.Flags().StringVar(&recSpace, "space", d.LivingSpace, "living space (apartment, house, 아파트, ...)")
	recommendCmd.Flags().StringVar(&recActivity, "activity", d.ActivityLevel, "activity level: low, moderate or high")
	recommendCmd.Flags().BoolVar(&recShedding, "shedding", false, "shedding is a concern")
	recommendCmd.Flags().BoolVar(&recBarking, "barking", false, "barking is a concern")
	recommendCmd.Flags().BoolVar(&recBeginner, "beginner", false, "first-time owner")
	recommendCmd.Flags().IntVarP(&recK, "k", "k", service.DefaultRecommendK, "number of recommendations")
	recommendCmd.Flags().BoolVar(&recVariety, "variety", false, "sample from the top candidates instead of taking the best")
	recommendCmd.Flags().IntVar(&recPool, "pool", service.DefaultVarietyPool, "candidate pool size for --variety")
	recommendCmd.Flags().Int64Var(&recSeed, "seed", 0, "random seed for --variety (0 picks one)")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	p := model.Profile{
		LivingSpace:     recSpace,
		ActivityLevel:   recActivity,
		ConcernShedding: recShedding,
		ConcernBarking:  recBarking,
		IsBeginner:      recBeginner,
	}
	cat := e.catalogs.Current()

	var picks []model.ScoredRecord
	if recVariety {
		seed := recSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.logger.Debug().Int64("seed", seed).Msg("variety sampling")
		picks = service.RecommendVaried(cat, p, recK, recPool, seed)
	} else {
		picks = service.Recommend(cat, p, recK)
	}

	md := render.Recommendations(p, picks)
	if cat.Len() == 0 {
		md = render.MsgEmptyCatalog
	}
	return emit(cmd, picks, md)
}
