package service

import (
	"dogbreed-service/internal/breeds/catalog"
	"dogbreed-service/internal/breeds/model"
)

func ip(v int) *int { return &v }

func testRecords() []model.BreedRecord {
	return []model.BreedRecord{
		{NameKo: "말티즈", NameEn: "Maltese", SizeType: "소형", EnergyLevel: 3, SheddingLevel: 1, BarkingLevel: 3, Trainability: ip(4), PopularityScore: 90},
		{NameKo: "푸들", NameEn: "Poodle", SizeType: "소형", EnergyLevel: 4, SheddingLevel: 1, BarkingLevel: 2, Trainability: ip(5), PopularityScore: 95},
		{NameKo: "골든 리트리버", NameEn: "Golden Retriever", SizeType: "대형", EnergyLevel: 4, SheddingLevel: 5, BarkingLevel: 2, Trainability: ip(5), PopularityScore: 93},
		{NameKo: "비글", NameEn: "Beagle", SizeType: "중형", EnergyLevel: 4, SheddingLevel: 3, BarkingLevel: 4, Trainability: ip(2), PopularityScore: 80},
		{NameKo: "진돗개", NameEn: "Jindo", SizeType: "중형", EnergyLevel: 4, SheddingLevel: 4, BarkingLevel: 2, PopularityScore: 70},
		{NameKo: "닥스훈트", NameEn: "Dachshund", SizeType: "소형", EnergyLevel: 3, SheddingLevel: 2, BarkingLevel: 4, Trainability: ip(2), PopularityScore: 85},
		{NameKo: "차우차우", NameEn: "Chow Chow", SizeType: "중형", EnergyLevel: 2, SheddingLevel: 4, BarkingLevel: 1, Trainability: ip(2), PopularityScore: 50},
	}
}

func testCatalog() *catalog.Catalog { return catalog.New(testRecords()) }

func testAliases() catalog.AliasTable { return catalog.NewAliasTable(catalog.DefaultAliases()) }
