package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
)

// AffinityText renders an affinity as "earth(지) 0 · water(수) 3 · ..."
func AffinityText(a pet.ElementAffinity) string {
	parts := make([]string, len(pet.ElementOrder))
	for i, e := range pet.ElementOrder {
		parts[i] = fmt.Sprintf("%s(%s) %d", e, e.Label(), a.Get(e))
	}
	return strings.Join(parts, " · ")
}

// WriteResult prints a generation result. The enemybase line is written
// unstyled so it can be pasted as is.
func WriteResult(w io.Writer, r *pet.GenerationResult) {
	st := r.Stats
	bs := r.BaseStats

	fmt.Fprintln(w, Title.Render(IconPet+" "+r.Request.DisplayName()))
	fmt.Fprintln(w, LabelValue("stats", fmt.Sprintf("vit %d · atk %d · tgh %d · agi %d",
		st.Vitality, st.Attack, st.Toughness, st.Agility)))
	fmt.Fprintln(w, LabelValue("level 1", fmt.Sprintf("hp %d · atk %d · def %d · spd %d",
		bs.HP, bs.Attack, bs.Defense, bs.Speed)))
	fmt.Fprintln(w, LabelValue("elements", AffinityText(pet.AffinityFromTuple(r.Elements))))
	fmt.Fprintln(w, Key.Render("enemybase:"))
	fmt.Fprintln(w, r.EnemybaseLine)
}

// WriteRequest prints the current form values
func WriteRequest(w io.Writer, req pet.GenerationRequest) {
	fmt.Fprintln(w, H2.Render("Form"))
	fmt.Fprintln(w, LabelValue("name", req.DisplayName()))
	fmt.Fprintln(w, LabelValue("temp id", req.ExportID()))
	fmt.Fprintln(w, LabelValue("image id", req.ImageID))
	fmt.Fprintln(w, LabelValue("total", req.Total.Raw))
	fmt.Fprintln(w, LabelValue("initial", req.InitialValue.Raw))
	fmt.Fprintln(w, LabelValue("concept", fmt.Sprintf("%s (%s)", req.Concept, req.Concept.Label())))
	fmt.Fprintln(w, LabelValue("elements", AffinityText(req.Elements)))
	fmt.Fprintln(w, LabelValue("capture", req.CaptureDifficulty))
	fmt.Fprintln(w, LabelValue("rarity", req.Rarity))
}

// WritePresets lists presets in order
func WritePresets(w io.Writer, presets []pet.Preset) {
	fmt.Fprintln(w, H2.Render("Presets"))
	for _, p := range presets {
		fmt.Fprintf(w, "- %s %s %s\n", Key.Render(p.Name), p.Label, Muted.Render(AffinityText(p.Elements)))
	}
}

// WriteConcepts lists the known concepts
func WriteConcepts(w io.Writer) {
	fmt.Fprintln(w, H2.Render("Concepts"))
	for _, c := range pet.Concepts {
		fmt.Fprintf(w, "- %s %s\n", Key.Render(string(c)), c.Label())
	}
}
