// Package enemybase renders generated pets as enemybase import lines
package enemybase

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
)

// FieldCount is the number of comma-separated fields in one enemybase line
const FieldCount = 58

// Fixed record values
const (
	GrowthRate   = "5.0"
	LevelCap     = "19"
	ReservedFlag = "1"
	DropRate     = "500"
)

// MaterialTokens are the game-internal material identifiers every line carries
var MaterialTokens = [5]string{"컁", "記", "秊", "므", "制皐"}

const (
	reservedZeroCount  = 9
	reservedBlankCount = 5
	dropSlotCount      = 5
)

// Record is one enemybase row
type Record struct {
	Name              string
	TempID            string
	InitialValue      string
	Stats             pet.StatVector
	CaptureDifficulty int
	Elements          [4]int
	Rarity            int
	ImageID           string
}

// NewRecord builds a record from a request and its derived values. Empty
// name and temp id fall back to their placeholders.
func NewRecord(req pet.GenerationRequest, s pet.StatVector, elements [4]int) Record {
	return Record{
		Name:              req.DisplayName(),
		TempID:            req.ExportID(),
		InitialValue:      req.InitialValue.String(),
		Stats:             s,
		CaptureDifficulty: req.CaptureDifficulty,
		Elements:          elements,
		Rarity:            req.Rarity,
		ImageID:           req.ImageID,
	}
}

// Fields returns the record in column order
func (r Record) Fields() []string {
	fields := make([]string, 0, FieldCount)

	fields = append(fields, r.Name)
	fields = append(fields, MaterialTokens[:]...)
	fields = append(fields, r.TempID, r.InitialValue, GrowthRate)
	for _, v := range r.Stats.Array() {
		fields = append(fields, strconv.Itoa(v))
	}
	fields = append(fields, LevelCap, strconv.Itoa(r.CaptureDifficulty))
	for _, v := range r.Elements {
		fields = append(fields, strconv.Itoa(v))
	}
	for i := 0; i < reservedZeroCount; i++ {
		fields = append(fields, "0")
	}
	fields = append(fields, ReservedFlag)
	for i := 0; i < reservedBlankCount; i++ {
		fields = append(fields, "")
	}
	fields = append(fields, strconv.Itoa(r.Rarity))
	fields = append(fields, "1", "1", "5", r.ImageID, "1", "1")
	for i := 0; i < dropSlotCount; i++ {
		fields = append(fields, "", "0", DropRate)
	}
	fields = append(fields, "", "0")

	return fields
}

// String joins the fields into one line
func (r Record) String() string {
	return strings.Join(r.Fields(), ",")
}

// Format renders the enemybase line for a request and its derived values
func Format(req pet.GenerationRequest, s pet.StatVector, elements [4]int) string {
	return NewRecord(req, s, elements).String()
}
