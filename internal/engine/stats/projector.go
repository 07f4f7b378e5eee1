package stats

import (
	"math"

	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
)

// Project converts distributed stats into level-1 stats. Each axis becomes a
// coefficient stat*initialValue/100 which feeds the fixed balance formula.
// Products are converted explicitly so the compiler cannot fuse them into
// multiply-adds; the floors depend on exact IEEE rounding.
func Project(s pet.StatVector, initialValue float64) pet.BaseStatVector {
	vit := float64(s.Vitality) * initialValue / 100
	str := float64(s.Attack) * initialValue / 100
	tgh := float64(s.Toughness) * initialValue / 100
	dex := float64(s.Agility) * initialValue / 100

	return pet.BaseStatVector{
		HP:      int(math.Floor(float64(vit*4) + str + tgh + dex)),
		Attack:  int(math.Floor(float64(vit*0.1) + str + float64(tgh*0.1) + float64(dex*0.05))),
		Defense: int(math.Floor(float64(vit*0.1) + float64(str*0.1) + tgh + float64(dex*0.05))),
		Speed:   int(math.Floor(dex)),
	}
}
