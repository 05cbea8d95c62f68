package lexicon

// Built-in tables. Canonical terms use the official spellings; variants are
// the misspellings, historical names, and synonyms that show up in listings
// and queries. New never mutates these, so sharing them across Default calls
// is safe.

var defaultLocations = map[string][]string{
	// Counties.
	"bomi":             {"bomi county", "bomi hills"},
	"bong":             {"bong county"},
	"grand bassa":      {"grand basa", "bassa"},
	"grand cape mount": {"cape mount"},
	"grand gedeh":      {"grand geddeh"},
	"lofa":             {"lofa county"},
	"margibi":          {"margibbi"},
	"maryland":         {"maryland county"},
	"montserrado":      {"montserado", "monsterrado"},
	"nimba":            {"nimba county"},
	"sinoe":            {"sinoe county"},

	// Cities and towns.
	"buchanan":     {"buchannan", "buchanan city"},
	"ganta":        {"gompa", "gompa city"},
	"gbarnga":      {"gbanga", "gbarnga city"},
	"greenville":   {"greeneville", "sinoe town"},
	"harper":       {"harper city", "cape palmas"},
	"kakata":       {"kakata city", "kakatta"},
	"monrovia":     {"monrovia city"},
	"paynesville":  {"paynesville city", "painesville", "paynsville"},
	"robertsport":  {"roberts port", "robertsports"},
	"sanniquellie": {"saniquellie", "sanoquelleh"},
	"tubmanburg":   {"tubman burg", "tubman-burg", "tubmanberg", "tubman berg", "tubmanbourg"},
	"voinjama":     {"vonjama", "voinjama city"},
	"zwedru":       {"zwedru city", "tchien"},

	// Monrovia-area communities.
	"congo town":   {"congotown"},
	"duala":        {"dualla", "duala market"},
	"elwa":         {"elwa junction"},
	"new kru town": {"new krutown", "kru town"},
	"red light":    {"redlight", "red light market"},
	"sinkor":       {"sinkor monrovia"},
	"west point":   {"westpoint"},
}

var defaultCategories = map[string][]string{
	"clinic":         {"hospital", "health center", "health centre", "doctor"},
	"electronics":    {"phone", "phones", "computer", "computers", "phone repair"},
	"hotel":          {"guest house", "guesthouse", "lodge", "lodging", "motel"},
	"market":         {"shop", "store", "provision shop", "grocery"},
	"mechanic":       {"garage", "auto repair", "car repair", "workshop"},
	"money transfer": {"mobile money", "momo", "orange money"},
	"pharmacy":       {"drug store", "drugstore", "medicine store", "chemist"},
	"restaurant":     {"food", "eatery", "cook shop", "cookshop", "chop bar", "dining"},
	"room":           {"apartment", "house", "flat", "rent", "bedroom"},
	"salon":          {"barber", "barbershop", "hair", "braiding", "beauty shop"},
	"school":         {"academy", "institute", "learning center"},
	"tailor":         {"tailoring", "sewing", "fashion house", "seamstress"},
	"taxi":           {"cab", "transport", "keke", "pehn-pehn", "pen pen"},
}

// Default returns a Lexicon built from the built-in tables.
func Default() *Lexicon {
	return New(defaultLocations, defaultCategories)
}
