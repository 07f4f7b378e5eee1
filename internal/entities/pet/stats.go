package pet

// StatVector is the distributed stat budget across the four axes
type StatVector struct {
	Vitality  int `json:"vitality"`
	Attack    int `json:"attack"`
	Toughness int `json:"toughness"`
	Agility   int `json:"agility"`
}

// Array returns the stats in axis order (vitality, attack, toughness, agility)
func (v StatVector) Array() [4]int {
	return [4]int{v.Vitality, v.Attack, v.Toughness, v.Agility}
}

// Total sums the four axes
func (v StatVector) Total() int {
	return v.Vitality + v.Attack + v.Toughness + v.Agility
}

// StatVectorFromArray builds a vector from axis-ordered values
func StatVectorFromArray(a [4]int) StatVector {
	return StatVector{Vitality: a[0], Attack: a[1], Toughness: a[2], Agility: a[3]}
}

// BaseStatVector holds the projected level-1 stats
type BaseStatVector struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

// Array returns the projected stats in order (hp, attack, defense, speed)
func (v BaseStatVector) Array() [4]int {
	return [4]int{v.HP, v.Attack, v.Defense, v.Speed}
}
