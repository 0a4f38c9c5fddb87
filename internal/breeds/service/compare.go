package service

import (
	"strconv"

	"dogbreed-service/internal/breeds/catalog"
	"dogbreed-service/internal/breeds/model"
)

// Compare resolves both names without the similarity fallback and compares them.
// It reports false when either name does not resolve.
func Compare(cat *catalog.Catalog, aliases catalog.AliasTable, name1, name2 string) (model.Comparison, bool) {
	r1, ok := ResolveDirect(cat, aliases, name1)
	if !ok {
		return model.Comparison{}, false
	}
	r2, ok := ResolveDirect(cat, aliases, name2)
	if !ok {
		return model.Comparison{}, false
	}

	c := model.Comparison{
		Record1:            r1,
		Record2:            r2,
		BetterTrainability: r2,
		BetterGrooming:     r2,
		Axes: []model.AxisValue{
			{Axis: "size", Value1: r1.SizeType, Value2: r2.SizeType},
			axis("trainability", r1.EffectiveTrainability(), r2.EffectiveTrainability()),
			axis("energy", r1.EnergyLevel, r2.EnergyLevel),
			axis("shedding", r1.SheddingLevel, r2.SheddingLevel),
			axis("barking", r1.BarkingLevel, r2.BarkingLevel),
		},
	}
	// ties go to the first name
	if r1.EffectiveTrainability() >= r2.EffectiveTrainability() {
		c.BetterTrainability = r1
	}
	if r1.SheddingLevel <= r2.SheddingLevel {
		c.BetterGrooming = r1
	}
	return c, true
}

func axis(name string, v1, v2 int) model.AxisValue {
	return model.AxisValue{Axis: name, Value1: strconv.Itoa(v1), Value2: strconv.Itoa(v2)}
}
