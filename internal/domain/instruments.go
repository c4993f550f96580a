package domain

// instrumentNames maps backend instrument codes to display names.
var instrumentNames = map[string]string{
	// Strings
	"violin":     "Violin",
	"viola":      "Viola",
	"cello":      "Cello",
	"doubleBass": "Double Bass",
	"harp":       "Harp",

	// Woodwinds
	"piccolo":        "Piccolo",
	"flute":          "Flute",
	"oboe":           "Oboe",
	"englishHorn":    "English Horn",
	"clarinetEb":     "E♭ Clarinet",
	"clarinetBb":     "B♭ Clarinet",
	"bassClarinet":   "Bass Clarinet",
	"contraClarinet": "Contrabass Clarinet",
	"bassoon":        "Bassoon",
	"contrabassoon":  "Contrabassoon",

	// Saxophones
	"sopranoSax":  "Soprano Saxophone",
	"altoSax":     "Alto Saxophone",
	"tenorSax":    "Tenor Saxophone",
	"baritoneSax": "Baritone Saxophone",
	"bassSax":     "Bass Saxophone",

	// Brass
	"trumpet":      "Trumpet",
	"cornet":       "Cornet",
	"flugelhorn":   "Flugelhorn",
	"frenchHorn":   "French Horn",
	"trombone":     "Trombone",
	"bassTrombone": "Bass Trombone",
	"euphonium":    "Euphonium",
	"baritoneHorn": "Baritone Horn",
	"tuba":         "Tuba",

	// Percussion
	"snareDrum":           "Snare Drum",
	"bassDrum":            "Bass Drum",
	"cymbals":             "Cymbals",
	"timpani":             "Timpani",
	"xylophone":           "Xylophone",
	"marimba":             "Marimba",
	"vibraphone":          "Vibraphone",
	"glockenspiel":        "Glockenspiel",
	"drumSet":             "Drum Set",
	"multiPercussion":     "Multi-Percussion Setup",
	"accessoryPercussion": "Accessory Percussion",
	"percussionOther":     "Other / Unlisted Percussion",

	// Other
	"piano":          "Piano",
	"organ":          "Organ",
	"celesta":        "Celesta",
	"guitar":         "Guitar",
	"electricGuitar": "Electric Guitar",
	"bassGuitar":     "Bass Guitar",
	"ukulele":        "Ukulele",
	"voice":          "Voice",
	"other":          "Other",
}

// InstrumentName returns the display name for an instrument code, or the
// code itself when it is not a known instrument.
func InstrumentName(code string) string {
	if name, ok := instrumentNames[code]; ok {
		return name
	}
	return code
}

// InstrumentCodes lists every known instrument code, ordered for select
// controls: strings, winds, brass, percussion, then the rest.
var InstrumentCodes = []string{
	"violin", "viola", "cello", "doubleBass", "harp",
	"piccolo", "flute", "oboe", "englishHorn",
	"clarinetEb", "clarinetBb", "bassClarinet", "contraClarinet",
	"bassoon", "contrabassoon",
	"sopranoSax", "altoSax", "tenorSax", "baritoneSax", "bassSax",
	"trumpet", "cornet", "flugelhorn", "frenchHorn",
	"trombone", "bassTrombone", "euphonium", "baritoneHorn", "tuba",
	"snareDrum", "bassDrum", "cymbals", "timpani",
	"xylophone", "marimba", "vibraphone", "glockenspiel",
	"drumSet", "multiPercussion", "accessoryPercussion", "percussionOther",
	"piano", "organ", "celesta",
	"guitar", "electricGuitar", "bassGuitar", "ukulele",
	"voice", "other",
}
