package diet

import "github.com/eupern/ai-cancer-chatbot/labs"

// Advisory is the deterministic dietary guidance derived from the active risk
// flags. The shape is invariant: the sample menu and closing caution are always
// present, so the presentation layer never special-cases an empty advisory.
type Advisory struct {
	TriggeredFlags []labs.RiskFlag `json:"triggered_flags"`
	GuidanceBlocks []string        `json:"guidance_blocks"`
	SampleMenu     []string        `json:"sample_menu"`
}

// kindOrder fixes the emission order of per-flag guidance so the advisory is
// reproducible regardless of the order the classifier returned the flags in.
var kindOrder = []labs.FlagKind{
	labs.Neutropenia,
	labs.Anemia,
	labs.Thrombocytopenia,
	labs.Hyperglycemia,
	labs.Hypoglycemia,
	labs.Hypertension,
	labs.Hypotension,
}

var guidanceByKind = map[labs.FlagKind]string{
	labs.Neutropenia: "Neutropenia precautions: follow strict food safety. Eat only thoroughly " +
		"cooked proteins (well-done meat, fully cooked eggs), avoid raw or undercooked fish, " +
		"unpasteurized dairy, raw sprouts and unwashed produce. Peel fruits, reheat leftovers " +
		"to steaming hot, and avoid buffets and street food while counts are low.",
	labs.Anemia: "Low hemoglobin: build meals around iron-rich foods (lean red meat, lentils, " +
		"beans, spinach, fortified cereals) and pair them with vitamin-C sources such as citrus, " +
		"tomato or bell pepper to improve absorption. Keep tea and coffee away from iron-rich " +
		"meals by at least an hour.",
	labs.Thrombocytopenia: "Low platelets: prefer soft-textured foods and avoid hard, sharp or " +
		"very crunchy items that can injure the mouth or gut lining. Limit alcohol entirely and " +
		"discuss any fish-oil or vitamin-E supplements with the care team, as they can add to " +
		"bleeding risk.",
	labs.Hyperglycemia: "Elevated glucose: cut refined sugar and sugary drinks, choose whole " +
		"grains over white flour, and spread carbohydrates evenly across meals. Favor " +
		"high-fiber vegetables and lean protein to blunt glucose spikes.",
	labs.Hypoglycemia: "Low glucose reading: do not skip meals. Keep regular meal timing with a " +
		"complex-carbohydrate snack between meals and before sleep, and carry a quick " +
		"carbohydrate source in case of symptoms.",
	labs.Hypertension: "Elevated blood pressure: reduce sodium by limiting processed, canned " +
		"and restaurant foods; season with herbs instead of salt. Emphasize vegetables, fruit " +
		"and low-fat dairy, and keep caffeine moderate.",
	labs.Hypotension: "Low blood pressure: maintain steady fluid intake through the day and eat " +
		"smaller, more frequent meals. Discuss salt intake with the care team before increasing " +
		"it on your own.",
}

const genericBaseline = "General nutrition during treatment: aim for regular balanced meals " +
	"with adequate protein at each one, a variety of vegetables and fruit, whole grains, and " +
	"steady hydration. Small frequent meals help when appetite is poor."

const cautionBlock = "Caution: this guidance is educational and generated from extracted lab " +
	"values; it does not replace advice from your oncology team or a registered dietitian. " +
	"Confirm any diet change, supplement or major restriction with your clinicians."

// sampleMenu is the fixed-shape one-day menu attached to every advisory.
var sampleMenu = []string{
	"Breakfast: vegetable omelette with fully cooked eggs, whole-grain toast, and a peeled orange.",
	"Lunch: well-cooked lentil and spinach stew with brown rice, plus a glass of pasteurized yogurt drink.",
	"Dinner: baked well-done chicken breast, steamed broccoli and carrots, and mashed sweet potato.",
	"Snacks: banana with a small handful of roasted (not raw) nuts; crackers with hard pasteurized cheese.",
}

// Advise maps the active flags onto ordered guidance blocks plus the invariant
// sample menu and caution. With zero flags it falls back to the generic
// baseline, so the caller always receives a fully populated advisory.
func Advise(flags []labs.RiskFlag) Advisory {
	byKind := make(map[labs.FlagKind]labs.RiskFlag, len(flags))
	for _, f := range flags {
		if _, dup := byKind[f.Kind]; !dup {
			byKind[f.Kind] = f
		}
	}

	triggered := make([]labs.RiskFlag, 0, len(byKind))
	blocks := make([]string, 0, len(byKind)+2)
	for _, kind := range kindOrder {
		f, ok := byKind[kind]
		if !ok {
			continue
		}
		triggered = append(triggered, f)
		blocks = append(blocks, guidanceByKind[kind])
	}

	if len(blocks) == 0 {
		blocks = append(blocks, genericBaseline)
	}
	blocks = append(blocks, cautionBlock)

	return Advisory{
		TriggeredFlags: triggered,
		GuidanceBlocks: blocks,
		SampleMenu:     append([]string(nil), sampleMenu...),
	}
}
